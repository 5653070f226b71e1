package model

import (
	"time"
)

// AuditColumns are shared by every catalog table. Timestamps are set by the domain,
// so gorm's autoCreateTime/autoUpdateTime is turned off.
type AuditColumns struct {
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false"`
	CreatedBy string     `gorm:"type:varchar(100)"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime:false"`
	UpdatedBy string     `gorm:"type:varchar(100)"`
	IsDeleted bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`
	DeletedBy string     `gorm:"type:varchar(100)"`
}

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID             string   `gorm:"type:varchar(20);primaryKey"`
	OwnerID        string   `gorm:"type:varchar(100);not null;index:idx_restaurants_owner_name,priority:1"`
	OwnerName      string   `gorm:"type:varchar(100)"`
	RestaurantName string   `gorm:"type:varchar(200);not null;index:idx_restaurants_owner_name,priority:2"`
	Status         string   `gorm:"type:varchar(30);not null;index"`
	Province       *string  `gorm:"type:varchar(50)"`
	City           *string  `gorm:"type:varchar(50)"`
	District       *string  `gorm:"type:varchar(50)"`
	DetailAddress  *string  `gorm:"type:varchar(255)"`
	Latitude       *float64 `gorm:"index:idx_restaurants_lat_lng,priority:1"`
	Longitude      *float64 `gorm:"index:idx_restaurants_lat_lng,priority:2"`
	ContactNumber  string   `gorm:"type:varchar(30)"`
	Tags           []string `gorm:"serializer:json;type:text"`
	IsActive       bool     `gorm:"not null;default:true"`
	ViewCount      int64    `gorm:"not null;default:0"`
	WishlistCount  int64    `gorm:"not null;default:0"`
	ReviewCount    int64    `gorm:"not null;default:0"`
	ReviewRating   float64  `gorm:"not null;default:0"`
	PurchaseCount  int64    `gorm:"not null;default:0"`
	AuditColumns

	Menus             []*MenuModel                       `gorm:"foreignKey:RestaurantID"`
	MenuCategories    []*MenuCategoryModel               `gorm:"foreignKey:RestaurantID"`
	OperatingDays     []*OperatingDayModel               `gorm:"foreignKey:RestaurantID"`
	CategoryRelations []*RestaurantCategoryRelationModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// MenuModel is the GORM-specific struct for the 'menus' table.
type MenuModel struct {
	ID            string  `gorm:"type:varchar(20);primaryKey"`
	RestaurantID  string  `gorm:"type:varchar(20);not null;index"`
	MenuName      string  `gorm:"type:varchar(200);not null"`
	Description   string  `gorm:"type:text"`
	Ingredients   *string `gorm:"type:text"`
	Price         int64   `gorm:"not null;check:chk_menus_price,price >= 0"`
	Calorie       *int
	IsAvailable   bool    `gorm:"not null;default:true"`
	IsMain        bool    `gorm:"not null;default:false"`
	IsPopular     bool    `gorm:"not null;default:false"`
	IsNew         bool    `gorm:"not null;default:false"`
	PurchaseCount int64   `gorm:"not null;default:0"`
	WishlistCount int64   `gorm:"not null;default:0"`
	ReviewCount   int64   `gorm:"not null;default:0"`
	ReviewRating  float64 `gorm:"not null;default:0"`
	AuditColumns

	OptionGroups      []*MenuOptionGroupModel      `gorm:"foreignKey:MenuID"`
	CategoryRelations []*MenuCategoryRelationModel `gorm:"foreignKey:MenuID"`
}

// TableName explicitly sets the table name for GORM.
func (MenuModel) TableName() string {
	return "menus"
}

// MenuOptionGroupModel is the GORM-specific struct for the 'menu_option_groups' table.
type MenuOptionGroupModel struct {
	ID           string `gorm:"type:varchar(20);primaryKey"`
	MenuID       string `gorm:"type:varchar(20);not null;index"`
	RestaurantID string `gorm:"type:varchar(20);not null;index"`
	GroupName    string `gorm:"type:varchar(100);not null"`
	Description  string `gorm:"type:text"`
	MinSelection int    `gorm:"not null;default:0"`
	MaxSelection int    `gorm:"not null;default:1"`
	IsRequired   bool   `gorm:"not null;default:false"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null;default:true"`
	AuditColumns

	Options []*MenuOptionModel `gorm:"foreignKey:OptionGroupID"`
}

// TableName explicitly sets the table name for GORM.
func (MenuOptionGroupModel) TableName() string {
	return "menu_option_groups"
}

// MenuOptionModel is the GORM-specific struct for the 'menu_options' table.
type MenuOptionModel struct {
	ID              string `gorm:"type:varchar(20);primaryKey"`
	OptionGroupID   string `gorm:"type:varchar(20);not null;index"`
	MenuID          string `gorm:"type:varchar(20);not null;index"`
	RestaurantID    string `gorm:"type:varchar(20);not null"`
	OptionName      string `gorm:"type:varchar(100);not null"`
	Description     string `gorm:"type:text"`
	AdditionalPrice int64  `gorm:"not null;default:0;check:chk_menu_options_price,additional_price >= 0"`
	IsAvailable     bool   `gorm:"not null;default:true"`
	IsDefault       bool   `gorm:"not null;default:false"`
	DisplayOrder    int    `gorm:"not null;default:0"`
	PurchaseCount   int64  `gorm:"not null;default:0"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (MenuOptionModel) TableName() string {
	return "menu_options"
}

// MenuCategoryModel is the GORM-specific struct for the 'menu_categories' table.
type MenuCategoryModel struct {
	ID               string   `gorm:"type:varchar(20);primaryKey"`
	RestaurantID     string   `gorm:"type:varchar(20);not null;index"`
	CategoryName     string   `gorm:"type:varchar(100);not null"`
	Description      string   `gorm:"type:text"`
	ParentCategoryID *string  `gorm:"type:varchar(20);index"`
	Depth            int      `gorm:"not null;default:1;check:chk_menu_categories_depth,depth BETWEEN 1 AND 3"`
	DisplayOrder     int      `gorm:"not null;default:0"`
	IsActive         bool     `gorm:"not null;default:true"`
	MenuIDs          []string `gorm:"serializer:json;type:text"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (MenuCategoryModel) TableName() string {
	return "menu_categories"
}

// MenuCategoryRelationModel is the GORM-specific struct for the 'menu_category_relations' table.
type MenuCategoryRelationModel struct {
	MenuID       string `gorm:"type:varchar(20);primaryKey"`
	CategoryID   string `gorm:"type:varchar(20);primaryKey"`
	RestaurantID string `gorm:"type:varchar(20);not null;index"`
	IsPrimary    bool   `gorm:"not null;default:false"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (MenuCategoryRelationModel) TableName() string {
	return "menu_category_relations"
}

// OperatingDayModel is the GORM-specific struct for the 'restaurant_operating_days' table.
// Times are stored as seconds since midnight.
type OperatingDayModel struct {
	RestaurantID string `gorm:"type:varchar(20);primaryKey"`
	DayType      string `gorm:"type:varchar(3);primaryKey"`
	TimeType     string `gorm:"type:varchar(20);primaryKey"`
	StartTime    *int
	EndTime      *int
	IsHoliday    bool `gorm:"not null;default:false"`
	BreakStart   *int
	BreakEnd     *int
	Note         string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (OperatingDayModel) TableName() string {
	return "restaurant_operating_days"
}

// RestaurantCategoryRelationModel is the GORM-specific struct for the 'restaurant_category_relations' table.
type RestaurantCategoryRelationModel struct {
	RestaurantID string `gorm:"type:varchar(20);primaryKey"`
	CategoryID   string `gorm:"type:varchar(20);primaryKey;index"`
	IsPrimary    bool   `gorm:"not null;default:false"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (RestaurantCategoryRelationModel) TableName() string {
	return "restaurant_category_relations"
}

package model

// RestaurantCategoryModel is the GORM-specific struct for the 'restaurant_categories' table.
type RestaurantCategoryModel struct {
	ID                        string   `gorm:"type:varchar(20);primaryKey"`
	CategoryCode              string   `gorm:"type:varchar(50);not null;uniqueIndex"`
	CategoryName              string   `gorm:"type:varchar(100);not null"`
	Description               string   `gorm:"type:text"`
	IconURL                   string   `gorm:"type:varchar(500)"`
	ColorCode                 string   `gorm:"type:varchar(7)"`
	ParentCategoryID          *string  `gorm:"type:varchar(20);index"`
	Depth                     int      `gorm:"not null;default:1;check:chk_restaurant_categories_depth,depth BETWEEN 1 AND 3"`
	DisplayOrder              int      `gorm:"not null;default:0"`
	IsActive                  bool     `gorm:"not null;default:true"`
	IsPopular                 bool     `gorm:"not null;default:false"`
	IsNew                     bool     `gorm:"not null;default:false"`
	DefaultMinimumOrderAmount *int64   `gorm:"column:default_minimum_order_amount"`
	AverageDeliveryTime       *int     `gorm:"column:average_delivery_time"`
	PlatformCommissionRate    *float64 `gorm:"column:platform_commission_rate"`
	ActiveRestaurantCount     int      `gorm:"not null;default:0"`
	TotalOrderCount           int64    `gorm:"not null;default:0"`
	AuditColumns
}

// TableName explicitly sets the table name for GORM.
func (RestaurantCategoryModel) TableName() string {
	return "restaurant_categories"
}

// All lists every catalog model in migration order.
func All() []any {
	return []any{
		&RestaurantCategoryModel{},
		&RestaurantModel{},
		&MenuCategoryModel{},
		&MenuModel{},
		&MenuOptionGroupModel{},
		&MenuOptionModel{},
		&MenuCategoryRelationModel{},
		&OperatingDayModel{},
		&RestaurantCategoryRelationModel{},
	}
}

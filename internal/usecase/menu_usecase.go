package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// OptionInput carries one option of a group.
type OptionInput struct {
	OptionName      string
	Description     string
	AdditionalPrice int64
	DisplayOrder    *int
	IsDefault       bool
}

// OptionGroupInput carries an option group with its options.
type OptionGroupInput struct {
	GroupName    string
	Description  string
	IsRequired   bool
	MinSelection int
	MaxSelection int
	Options      []OptionInput
}

// CreateMenuInput defines the data required to add a menu.
type CreateMenuInput struct {
	MenuName          string
	Description       string
	Price             *int64
	Ingredients       *string
	Calorie           *int
	IsMain            bool
	IsPopular         bool
	IsNew             bool
	CategoryIDs       []string
	PrimaryCategoryID string
	OptionGroups      []OptionGroupInput
}

// UpdateMenuInput replaces the editable menu details.
type UpdateMenuInput struct {
	MenuName          string
	Description       string
	Price             *int64
	Ingredients       *string
	Calorie           *int
	IsAvailable       bool
	IsMain            bool
	IsPopular         bool
	IsNew             bool
	CategoryIDs       []string
	PrimaryCategoryID string
}

// PatchMenuInput changes only the non-nil fields.
type PatchMenuInput struct {
	MenuName          *string
	Description       *string
	Price             *int64
	Ingredients       *string
	Calorie           *int
	IsAvailable       *bool
	IsMain            *bool
	IsPopular         *bool
	IsNew             *bool
	CategoryIDs       []string
	PrimaryCategoryID *string
}

// ListMenusInput narrows the customer menu listing.
type ListMenusInput struct {
	CategoryID string
	Keyword    string
	Page       PageRequest
}

// CreateMenuCategoryInput defines a restaurant-scoped menu category.
type CreateMenuCategoryInput struct {
	Name         string
	Description  string
	ParentID     *string
	DisplayOrder *int
}

// MenuUsecase defines the menu operations of customers, owners and administrators.
type MenuUsecase interface {
	CreateMenu(ctx context.Context, actor Actor, restaurantID string, input CreateMenuInput) (*entity.Menu, error)
	GetMenu(ctx context.Context, restaurantID, menuID string) (*entity.Menu, error)
	ListMenus(ctx context.Context, restaurantID string, input ListMenusInput) (*PageResult[*entity.Menu], error)
	ListMenusForOwner(ctx context.Context, actor Actor, restaurantID string) ([]*entity.Menu, error)
	UpdateMenu(ctx context.Context, actor Actor, restaurantID, menuID string, input UpdateMenuInput) (*entity.Menu, error)
	PatchMenu(ctx context.Context, actor Actor, restaurantID, menuID string, input PatchMenuInput) (*entity.Menu, error)
	ToggleMenuVisibility(ctx context.Context, actor Actor, restaurantID, menuID string, hidden bool) (*entity.Menu, error)
	DeleteMenu(ctx context.Context, actor Actor, restaurantID, menuID string) error
	RestoreMenu(ctx context.Context, actor Actor, restaurantID, menuID string) (*entity.Menu, error)
	AdminUpdateMenu(ctx context.Context, actor Actor, restaurantID, menuID string, input PatchMenuInput) (*entity.Menu, error)

	AddOptionGroup(ctx context.Context, actor Actor, restaurantID, menuID string, input OptionGroupInput) (*entity.MenuOptionGroup, error)
	AddOption(ctx context.Context, actor Actor, restaurantID, menuID, groupID string, input OptionInput) (*entity.MenuOption, error)

	CreateMenuCategory(ctx context.Context, actor Actor, restaurantID string, input CreateMenuCategoryInput) (*entity.MenuCategory, error)
	ListMenuCategories(ctx context.Context, restaurantID string) ([]*entity.MenuCategoryNode, error)
	DeleteMenuCategory(ctx context.Context, actor Actor, restaurantID, categoryID string) error
}

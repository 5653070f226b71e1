package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// CreateCategoryInput defines a shared restaurant category.
type CreateCategoryInput struct {
	Code                      string
	Name                      string
	Description               string
	IconURL                   string
	ColorCode                 string
	ParentID                  *string
	DisplayOrder              int
	IsPopular                 bool
	IsNew                     bool
	DefaultMinimumOrderAmount *int64
	AverageDeliveryTime       *int
	PlatformCommissionRate    *float64
}

// UpdateCategoryInput changes the non-nil fields of a category.
type UpdateCategoryInput struct {
	Name                      *string
	Description               *string
	IconURL                   *string
	ColorCode                 *string
	DisplayOrder              *int
	IsActive                  *bool
	IsPopular                 *bool
	IsNew                     *bool
	DefaultMinimumOrderAmount *int64
	AverageDeliveryTime       *int
	PlatformCommissionRate    *float64
}

// CategoryNode is a shared category with its children for hierarchy display.
type CategoryNode struct {
	*entity.RestaurantCategory
	Children []*CategoryNode `json:"children,omitempty"`
}

// RestaurantCategoryUsecase defines the operations on the shared restaurant taxonomy.
type RestaurantCategoryUsecase interface {
	CreateCategory(ctx context.Context, actor Actor, input CreateCategoryInput) (*entity.RestaurantCategory, error)
	GetCategory(ctx context.Context, categoryID string) (*entity.RestaurantCategory, error)
	ListRoots(ctx context.Context) ([]*entity.RestaurantCategory, error)
	ListChildren(ctx context.Context, parentID string) ([]*entity.RestaurantCategory, error)
	Hierarchy(ctx context.Context) ([]*CategoryNode, error)
	ListPopular(ctx context.Context) ([]*entity.RestaurantCategory, error)
	UpdateCategory(ctx context.Context, actor Actor, categoryID string, input UpdateCategoryInput) (*entity.RestaurantCategory, error)
	DeleteCategory(ctx context.Context, actor Actor, categoryID string) error
	RestoreCategory(ctx context.Context, actor Actor, categoryID string) (*entity.RestaurantCategory, error)
}

package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRestaurantCategoryNotFound is returned when a shared category is not found.
var ErrRestaurantCategoryNotFound = errors.New("restaurant category not found")

// RestaurantCategoryRepository stores the shared restaurant taxonomy.
type RestaurantCategoryRepository interface {
	// FindByID loads an undeleted category.
	FindByID(ctx context.Context, id string) (*entity.RestaurantCategory, error)

	// FindByIDIncludingDeleted loads a category whatever its deleted flag.
	FindByIDIncludingDeleted(ctx context.Context, id string) (*entity.RestaurantCategory, error)

	// FindAllByIDs loads the undeleted categories among ids in one query. Unknown ids are skipped.
	FindAllByIDs(ctx context.Context, ids []string) ([]*entity.RestaurantCategory, error)

	// FindRoots lists active depth-1 categories ordered by display order.
	FindRoots(ctx context.Context) ([]*entity.RestaurantCategory, error)

	// FindByParentID lists active children of parentID ordered by display order.
	FindByParentID(ctx context.Context, parentID string) ([]*entity.RestaurantCategory, error)

	// FindAll lists undeleted categories, only the active ones when activeOnly is set.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.RestaurantCategory, error)

	// FindPopular lists active categories flagged popular.
	FindPopular(ctx context.Context) ([]*entity.RestaurantCategory, error)

	// ExistsByCode reports whether any category, deleted or not, uses code.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Save upserts the category.
	Save(ctx context.Context, category *entity.RestaurantCategory) error
}

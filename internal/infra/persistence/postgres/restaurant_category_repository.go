package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/errors"
	"catalog/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// restaurantCategoryRepository implements the repository.RestaurantCategoryRepository interface.
type restaurantCategoryRepository struct {
	db *gorm.DB
}

// NewRestaurantCategoryRepository is the constructor for restaurantCategoryRepository.
func NewRestaurantCategoryRepository(db *gorm.DB) repository.RestaurantCategoryRepository {
	return &restaurantCategoryRepository{
		db: db,
	}
}

// FindByID loads an undeleted category.
func (repo *restaurantCategoryRepository) FindByID(ctx context.Context, id string) (*entity.RestaurantCategory, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false))
}

// FindByIDIncludingDeleted loads a category whatever its deleted flag.
func (repo *restaurantCategoryRepository) FindByIDIncludingDeleted(ctx context.Context, id string) (*entity.RestaurantCategory, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *restaurantCategoryRepository) findOne(query *gorm.DB) (*entity.RestaurantCategory, error) {
	var categoryM model.RestaurantCategoryModel

	if err := query.First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant category")
	}

	return toRestaurantCategoryDomain(&categoryM), nil
}

// FindAllByIDs loads the undeleted categories among ids in one query.
func (repo *restaurantCategoryRepository) FindAllByIDs(ctx context.Context, ids []string) ([]*entity.RestaurantCategory, error) {
	if len(ids) == 0 {
		return []*entity.RestaurantCategory{}, nil
	}

	return repo.findMany(repo.db.WithContext(ctx).Where("id IN ? AND is_deleted = ?", ids, false))
}

// FindRoots lists active depth-1 categories ordered by display order.
func (repo *restaurantCategoryRepository) FindRoots(ctx context.Context) ([]*entity.RestaurantCategory, error) {
	return repo.findMany(repo.db.WithContext(ctx).
		Where("parent_category_id IS NULL AND is_active = ? AND is_deleted = ?", true, false))
}

// FindByParentID lists active children of parentID ordered by display order.
func (repo *restaurantCategoryRepository) FindByParentID(ctx context.Context, parentID string) ([]*entity.RestaurantCategory, error) {
	return repo.findMany(repo.db.WithContext(ctx).
		Where("parent_category_id = ? AND is_active = ? AND is_deleted = ?", parentID, true, false))
}

// FindAll lists undeleted categories.
func (repo *restaurantCategoryRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.RestaurantCategory, error) {
	query := repo.db.WithContext(ctx).Where("is_deleted = ?", false)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	return repo.findMany(query)
}

// FindPopular lists active categories flagged popular.
func (repo *restaurantCategoryRepository) FindPopular(ctx context.Context) ([]*entity.RestaurantCategory, error) {
	return repo.findMany(repo.db.WithContext(ctx).
		Where("is_popular = ? AND is_active = ? AND is_deleted = ?", true, true, false))
}

func (repo *restaurantCategoryRepository) findMany(query *gorm.DB) ([]*entity.RestaurantCategory, error) {
	var categoryModels []*model.RestaurantCategoryModel

	if err := query.Order("depth, display_order, id").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant categories")
	}

	categories := make([]*entity.RestaurantCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toRestaurantCategoryDomain(categoryM))
	}

	return categories, nil
}

// ExistsByCode reports whether any category, deleted or not, uses code.
func (repo *restaurantCategoryRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantCategoryModel{}).
		Where("category_code = ?", code).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check category code")
	}

	return count > 0, nil
}

// Save upserts the category.
func (repo *restaurantCategoryRepository) Save(ctx context.Context, category *entity.RestaurantCategory) error {
	categoryM := fromRestaurantCategoryDomain(category)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(categoryM).Error; err != nil {
		switch kind, _ := violation(err); kind {
		case constraintUnique:
			return domainerrors.ErrDuplicateCategoryCode.WithDetails(category.CategoryCode)
		case constraintForeignKey:
			return domainerrors.ErrRestaurantCategoryNotFound.WithDetails("parent category does not exist")
		}

		return translateSaveError(err, "failed to save restaurant category")
	}

	return nil
}

package postgres

import (
	"context"
	"sort"
	"strings"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/errors"
	"catalog/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// withGraph preloads every child table of the aggregate in display order.
func withGraph(db *gorm.DB) *gorm.DB {
	byCreation := func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }
	byDisplayOrder := func(db *gorm.DB) *gorm.DB { return db.Order("display_order, id") }

	return db.
		Preload("Menus", byCreation).
		Preload("Menus.OptionGroups", byDisplayOrder).
		Preload("Menus.OptionGroups.Options", byDisplayOrder).
		Preload("Menus.CategoryRelations", byCreation).
		Preload("MenuCategories", byDisplayOrder).
		Preload("OperatingDays").
		Preload("CategoryRelations", byCreation)
}

// FindByID loads a restaurant that is not deleted.
func (repo *restaurantRepository) FindByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false))
}

// FindByIDIncludingDeleted loads a restaurant whatever its deleted flag.
func (repo *restaurantRepository) FindByIDIncludingDeleted(ctx context.Context, id string) (*entity.Restaurant, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *restaurantRepository) findOne(_ context.Context, query *gorm.DB) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := withGraph(query).First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// Save upserts the aggregate with every child row. Operating days are replaced as a set
// because they have no lifecycle of their own.
func (repo *restaurantRepository) Save(ctx context.Context, restaurant *entity.Restaurant) error {
	rows := fromRestaurantDomain(restaurant)
	db := repo.db.WithContext(ctx)

	upsert := func(value any) error {
		return db.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(value).Error
	}

	steps := []struct {
		name  string
		empty bool
		value any
	}{
		{"restaurant", false, rows.restaurant},
		{"menu categories", len(rows.menuCategories) == 0, rows.menuCategories},
		{"menus", len(rows.menus) == 0, rows.menus},
		{"option groups", len(rows.optionGroups) == 0, rows.optionGroups},
		{"options", len(rows.options) == 0, rows.options},
		{"menu category relations", len(rows.menuRelations) == 0, rows.menuRelations},
		{"restaurant category relations", len(rows.categoryRelations) == 0, rows.categoryRelations},
	}
	for _, step := range steps {
		if step.empty {
			continue
		}
		if err := upsert(step.value); err != nil {
			return translateSaveError(err, "failed to save "+step.name)
		}
	}

	if err := db.Where("restaurant_id = ?", restaurant.ID).Delete(&model.OperatingDayModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear operating days")
	}
	if len(rows.operatingDays) > 0 {
		if err := db.Create(rows.operatingDays).Error; err != nil {
			return translateSaveError(err, "failed to save operating days")
		}
	}

	return nil
}

// ExistsByOwnerIDAndName reports whether the owner already has an undeleted restaurant with that name.
func (repo *restaurantRepository) ExistsByOwnerIDAndName(ctx context.Context, ownerID, name string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("owner_id = ? AND restaurant_name = ? AND is_deleted = ?", ownerID, name, false).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check restaurant name")
	}

	return count > 0, nil
}

// FindByOwnerID lists the undeleted restaurants of an owner.
func (repo *restaurantRepository) FindByOwnerID(ctx context.Context, ownerID string, page repository.Page) ([]*entity.Restaurant, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("owner_id = ? AND is_deleted = ?", ownerID, false)

	return repo.findPage(query, page, "created_at DESC, id")
}

// Search lists active, undeleted restaurants matching filter. Reads go to a replica when one is configured.
func (repo *restaurantRepository) Search(ctx context.Context, filter repository.RestaurantFilter, page repository.Page) ([]*entity.Restaurant, int64, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.RestaurantModel{}).
		Where("restaurants.is_deleted = ? AND restaurants.is_active = ?", false, true)

	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		like := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("(LOWER(restaurants.restaurant_name) LIKE ? OR LOWER(restaurants.tags) LIKE ?)", like, like)
	}
	if filter.Status != "" {
		query = query.Where("restaurants.status = ?", string(filter.Status))
	}
	if filter.Province != "" {
		query = query.Where("restaurants.province = ?", filter.Province)
	}
	if filter.City != "" {
		query = query.Where("restaurants.city = ?", filter.City)
	}
	if filter.District != "" {
		query = query.Where("restaurants.district = ?", filter.District)
	}
	if filter.CategoryID != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM restaurant_category_relations rcr WHERE rcr.restaurant_id = restaurants.id AND rcr.category_id = ? AND rcr.is_deleted = ?)",
			filter.CategoryID, false,
		)
	}

	return repo.findPage(query, page, "restaurants.review_rating DESC, restaurants.id")
}

// FindAllIncludingDeleted lists every restaurant for administrators.
func (repo *restaurantRepository) FindAllIncludingDeleted(ctx context.Context, page repository.Page) ([]*entity.Restaurant, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RestaurantModel{})

	return repo.findPage(query, page, "created_at DESC, id")
}

func (repo *restaurantRepository) findPage(query *gorm.DB, page repository.Page, order string) ([]*entity.Restaurant, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count restaurants")
	}
	if total == 0 {
		return []*entity.Restaurant{}, 0, nil
	}

	var restaurantModels []*model.RestaurantModel
	paged := query.Session(&gorm.Session{}).Order(order).Offset(page.Offset())
	if page.Size > 0 {
		paged = paged.Limit(page.Size)
	}
	if err := withGraph(paged).Find(&restaurantModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, total, nil
}

// FindNearby pre-filters on the indexed coordinate columns with a bounding box, then
// keeps the rows inside the exact great-circle radius, nearest first.
func (repo *restaurantRepository) FindNearby(ctx context.Context, center entity.GeoCoordinate, radiusKm float64, limit int) ([]*entity.Restaurant, error) {
	bound := center.BoundAround(radiusKm)

	var restaurantModels []*model.RestaurantModel
	if err := withGraph(repo.db.WithContext(ctx).Clauses(dbresolver.Read)).
		Where("is_deleted = ? AND is_active = ?", false, true).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby restaurants")
	}

	type candidate struct {
		restaurant *entity.Restaurant
		distance   float64
	}
	candidates := make([]candidate, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurant := toRestaurantDomain(restaurantM)
		distance, err := center.DistanceTo(restaurant.Coordinate)
		if err != nil || distance > radiusKm {
			continue
		}
		candidates = append(candidates, candidate{restaurant: restaurant, distance: distance})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	restaurants := make([]*entity.Restaurant, 0, len(candidates))
	for _, c := range candidates {
		restaurants = append(restaurants, c.restaurant)
	}

	return restaurants, nil
}

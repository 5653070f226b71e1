package postgres

import (
	"context"
	"log/slog"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         newGormSlogLogger(slog.New(slog.DiscardHandler), nil),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func int64Ptr(v int64) *int64 {
	return &v
}

func clockPtr(hour, minute int) *entity.TimeOfDay {
	t := entity.MustClockTime(hour, minute)

	return &t
}

// buildRestaurant returns a preparing restaurant with one live menu, one deleted menu,
// a menu category, a shared category link and a monday window.
func buildRestaurant(t *testing.T, ownerID, name string, lat, lng float64) *entity.Restaurant {
	t.Helper()

	coord, err := entity.NewGeoCoordinate(lat, lng)
	require.NoError(t, err)
	restaurant, err := entity.NewRestaurant(entity.RestaurantParams{
		OwnerID:        ownerID,
		RestaurantName: name,
		Status:         entity.RestaurantStatusPreparing,
		Address:        &entity.PostalAddress{Province: "서울특별시", City: "종로구", District: "광화문동", DetailAddress: "1층"},
		Coordinate:     coord,
		Tags:           []string{"국밥"},
	}, ownerID)
	require.NoError(t, err)

	category, err := restaurant.AddMenuCategory(entity.MenuCategoryParams{Name: "식사"}, ownerID)
	require.NoError(t, err)
	menu, err := restaurant.AddMenu(entity.MenuParams{MenuName: "돼지국밥", Price: int64Ptr(9000)}, ownerID)
	require.NoError(t, err)
	group, err := menu.AddOptionGroup(entity.OptionGroupParams{GroupName: "양", IsRequired: true, MaxSelection: 1}, ownerID)
	require.NoError(t, err)
	_, err = group.AddOption(entity.OptionParams{OptionName: "보통"}, ownerID)
	require.NoError(t, err)
	_, err = group.AddOption(entity.OptionParams{OptionName: "곱빼기", AdditionalPrice: 2000}, ownerID)
	require.NoError(t, err)
	_, err = restaurant.AddMenuToCategory(menu.ID, category.ID, true, ownerID)
	require.NoError(t, err)

	gone, err := restaurant.AddMenu(entity.MenuParams{MenuName: "단종메뉴", Price: int64Ptr(1000)}, ownerID)
	require.NoError(t, err)
	require.NoError(t, restaurant.RemoveMenu(gone.ID, ownerID))

	restaurant.AddCategory("RCAT-KOREAN", true, ownerID)
	_, err = restaurant.SetOperatingDay(entity.OperatingDayParams{
		DayType:    entity.DayMonday,
		StartTime:  clockPtr(10, 0),
		EndTime:    clockPtr(22, 0),
		BreakStart: clockPtr(15, 0),
		BreakEnd:   clockPtr(17, 0),
	})
	require.NoError(t, err)

	return restaurant
}

func TestRestaurantRepository_SaveAndLoadGraph(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))
	restaurant := buildRestaurant(t, "owner-1", "광화문 국밥", 37.5665, 126.9780)

	require.NoError(t, repo.Save(ctx, restaurant))

	loaded, err := repo.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)

	assert.Equal(t, restaurant.RestaurantName, loaded.RestaurantName)
	assert.Equal(t, entity.RestaurantStatusPreparing, loaded.Status)
	assert.Equal(t, *restaurant.Address, *loaded.Address)
	assert.InDelta(t, 37.5665, loaded.Coordinate.Latitude, 1e-9)
	assert.Equal(t, []string{"국밥"}, loaded.Tags)

	require.Len(t, loaded.Menus, 2)
	assert.Len(t, loaded.ActiveMenus(), 1)
	live := loaded.ActiveMenus()[0]
	require.Len(t, live.OptionGroups, 1)
	assert.Len(t, live.OptionGroups[0].Options, 2)
	assert.Equal(t, 1, live.OptionGroups[0].MinSelection)
	assert.NotEmpty(t, live.PrimaryCategoryID())

	var deleted *entity.Menu
	for _, m := range loaded.Menus {
		if m.IsDeleted {
			deleted = m
		}
	}
	require.NotNil(t, deleted)
	assert.Equal(t, "owner-1", deleted.DeletedBy)
	assert.NotNil(t, deleted.DeletedAt)
	assert.False(t, deleted.IsAvailable)

	require.Len(t, loaded.MenuCategories, 1)
	assert.Equal(t, []string{live.ID}, loaded.MenuCategories[0].MenuIDs)
	assert.Equal(t, "RCAT-KOREAN", loaded.PrimaryCategoryID())

	monday := loaded.OperatingDayFor(entity.DayMonday, entity.TimeTypeRegular)
	require.NotNil(t, monday)
	assert.Equal(t, "15:00", monday.BreakStart.String())
	assert.Equal(t, "17:00", monday.BreakEnd.String())
}

func TestRestaurantRepository_SaveIsIdempotentForRelations(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	restaurant := buildRestaurant(t, "owner-1", "광화문 국밥", 37.5665, 126.9780)
	require.NoError(t, repo.Save(ctx, restaurant))

	loaded, err := repo.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)
	second, err := loaded.AddMenuCategory(entity.MenuCategoryParams{Name: "세트"}, "owner-1")
	require.NoError(t, err)
	menuID := loaded.ActiveMenus()[0].ID
	require.NoError(t, loaded.ReconcileMenuCategories(menuID, []string{second.ID}, second.ID, "owner-1"))
	require.NoError(t, loaded.ReconcileMenuCategories(menuID, []string{second.ID}, second.ID, "owner-1"))
	_, err = loaded.SetOperatingDay(entity.OperatingDayParams{DayType: entity.DayMonday, StartTime: clockPtr(9, 0), EndTime: clockPtr(18, 0)})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, loaded))

	var relationCount int64
	require.NoError(t, db.Model(&model.MenuCategoryRelationModel{}).Where("menu_id = ?", menuID).Count(&relationCount).Error)
	assert.Equal(t, int64(2), relationCount, "the old relation is kept soft-deleted, the new one is added once")

	var dayCount int64
	require.NoError(t, db.Model(&model.OperatingDayModel{}).Where("restaurant_id = ?", restaurant.ID).Count(&dayCount).Error)
	assert.Equal(t, int64(1), dayCount)

	reloaded, err := repo.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)
	menu, err := reloaded.FindMenuByID(menuID)
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID}, menu.ActiveCategoryIDs())
	assert.Nil(t, reloaded.OperatingDayFor(entity.DayMonday, entity.TimeTypeRegular).BreakStart)
}

func TestRestaurantRepository_DeletedRestaurantVisibility(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))
	restaurant := buildRestaurant(t, "owner-1", "광화문 국밥", 37.5665, 126.9780)
	require.NoError(t, restaurant.Delete("admin-1"))
	require.NoError(t, repo.Save(ctx, restaurant))

	_, err := repo.FindByID(ctx, restaurant.ID)
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)

	loaded, err := repo.FindByIDIncludingDeleted(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.True(t, loaded.IsDeleted)
	assert.Equal(t, "admin-1", loaded.DeletedBy)
	for _, m := range loaded.Menus {
		assert.True(t, m.IsDeleted)
	}

	exists, err := repo.ExistsByOwnerIDAndName(ctx, "owner-1", "광화문 국밥")
	require.NoError(t, err)
	assert.False(t, exists)

	all, total, err := repo.FindAllIncludingDeleted(ctx, repository.Page{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, all, 1)
}

func TestRestaurantRepository_SearchAndOwnerListing(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))

	first := buildRestaurant(t, "owner-1", "광화문 국밥", 37.5665, 126.9780)
	second := buildRestaurant(t, "owner-1", "종로 칼국수", 37.5700, 126.9920)
	second.ClearTags()
	second.AddTag("면")
	second.RemoveCategory("RCAT-KOREAN", "owner-1")
	third := buildRestaurant(t, "owner-2", "을지로 국밥", 37.5660, 126.9910)
	third.SetActive(false, "owner-2")
	for _, r := range []*entity.Restaurant{first, second, third} {
		require.NoError(t, repo.Save(ctx, r))
	}

	exists, err := repo.ExistsByOwnerIDAndName(ctx, "owner-1", "종로 칼국수")
	require.NoError(t, err)
	assert.True(t, exists)

	found, total, err := repo.Search(ctx, repository.RestaurantFilter{Keyword: "국밥"}, repository.Page{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "inactive restaurants are hidden")
	require.Len(t, found, 1)
	assert.Equal(t, first.ID, found[0].ID)

	found, total, err = repo.Search(ctx, repository.RestaurantFilter{Keyword: "면"}, repository.Page{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, second.ID, found[0].ID)

	found, _, err = repo.Search(ctx, repository.RestaurantFilter{CategoryID: "RCAT-KOREAN"}, repository.Page{Size: 10})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, first.ID, found[0].ID)

	found, total, err = repo.FindByOwnerID(ctx, "owner-1", repository.Page{Number: 1, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, found, 1)
}

func TestRestaurantRepository_FindNearby(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))

	cityHall := buildRestaurant(t, "owner-1", "시청점", 37.5665, 126.9780)
	gwanghwamun := buildRestaurant(t, "owner-1", "광화문점", 37.5759, 126.9768)
	busan := buildRestaurant(t, "owner-1", "부산점", 35.1796, 129.0756)
	for _, r := range []*entity.Restaurant{busan, gwanghwamun, cityHall} {
		require.NoError(t, repo.Save(ctx, r))
	}

	center, _ := entity.NewGeoCoordinate(37.5660, 126.9784)
	found, err := repo.FindNearby(ctx, *center, 3, 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, cityHall.ID, found[0].ID)
	assert.Equal(t, gwanghwamun.ID, found[1].ID)

	found, err = repo.FindNearby(ctx, *center, 3, 1)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestRestaurantRepository_FindNearbyKeepsRadiusEdge(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(newTestDB(t))

	center, _ := entity.NewGeoCoordinate(37.5665, 126.9780)
	edge := buildRestaurant(t, "owner-1", "북쪽끝점", 37.6563, 126.9780)
	require.True(t, center.IsNearby(edge.Coordinate, 10))
	require.NoError(t, repo.Save(ctx, edge))

	found, err := repo.FindNearby(ctx, *center, 10, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, edge.ID, found[0].ID)
}

func TestRestaurantCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantCategoryRepository(newTestDB(t))

	korean, err := entity.NewRestaurantCategory(entity.RestaurantCategoryParams{Code: "KOREAN", Name: "한식"}, nil, "admin")
	require.NoError(t, err)
	soup, err := entity.NewRestaurantCategory(entity.RestaurantCategoryParams{Code: "SOUP", Name: "국밥", DisplayOrder: 1}, korean, "admin")
	require.NoError(t, err)
	soup.SetPopular(true, "admin")
	require.NoError(t, repo.Save(ctx, korean))
	require.NoError(t, repo.Save(ctx, soup))

	exists, err := repo.ExistsByCode(ctx, "SOUP")
	require.NoError(t, err)
	assert.True(t, exists)

	duplicate, err := entity.NewRestaurantCategory(entity.RestaurantCategoryParams{Code: "SOUP", Name: "탕"}, nil, "admin")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, duplicate), domainerrors.ErrDuplicateCategoryCode)

	roots, err := repo.FindRoots(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, korean.ID, roots[0].ID)

	children, err := repo.FindByParentID(ctx, korean.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, 2, children[0].Depth)

	popular, err := repo.FindPopular(ctx)
	require.NoError(t, err)
	assert.Len(t, popular, 1)

	batch, err := repo.FindAllByIDs(ctx, []string{korean.ID, soup.ID, "RCAT-MISSING"})
	require.NoError(t, err)
	assert.Len(t, batch, 2)

	soup.Delete("admin")
	require.NoError(t, repo.Save(ctx, soup))
	_, err = repo.FindByID(ctx, soup.ID)
	assert.ErrorIs(t, err, repository.ErrRestaurantCategoryNotFound)
	restored, err := repo.FindByIDIncludingDeleted(ctx, soup.ID)
	require.NoError(t, err)
	assert.True(t, restored.IsDeleted)
}

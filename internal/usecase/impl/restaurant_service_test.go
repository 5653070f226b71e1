package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRestaurantService(f *catalogFixtures) usecase.RestaurantUsecase {
	return NewRestaurantService(f.txManager, f.restaurantRepo, f.categoryRepo, f.publisher, f.cfg, f.logger)
}

func TestRestaurantService_CreateRestaurant_Success(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestRestaurantService(f)
	ctx := context.Background()
	korean := newSharedCategory(t, "KOREAN")

	f.expectTx()
	f.restaurantRepo.EXPECT().
		ExistsByOwnerIDAndName(ctx, ownerActor.ID, "광화문 국밥").
		Return(false, nil)
	f.categoryRepo.EXPECT().
		FindAllByIDs(ctx, []string{korean.ID}).
		Return([]*entity.RestaurantCategory{korean}, nil)
	f.categoryRepo.EXPECT().
		Save(ctx, korean).
		Return(nil)
	f.restaurantRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Restaurant")).
		Return(nil)
	f.expectEvent(constants.EventRestaurantCreated)

	view, err := svc.CreateRestaurant(ctx, ownerActor, usecase.CreateRestaurantInput{
		OwnerName:      "김사장",
		RestaurantName: "광화문 국밥",
		ContactNumber:  "02-123-4567",
		Address:        usecase.AddressInput{Province: "서울특별시", City: "종로구", District: "광화문동"},
		Tags:           []string{"국밥", "국밥"},
		CategoryIDs:    []string{korean.ID, " ", korean.ID},
		OperatingDays: []usecase.OperatingDayInput{
			{DayType: "MON", StartTime: ptr("09:00"), EndTime: ptr("21:00")},
		},
	})
	require.NoError(t, err)

	restaurant := view.Restaurant
	assert.Equal(t, entity.RestaurantStatusOpen, restaurant.Status)
	assert.Equal(t, "OWNER_owner-1", restaurant.CreatedBy)
	assert.Equal(t, []string{"국밥"}, restaurant.Tags)
	assert.Equal(t, korean.ID, restaurant.PrimaryCategoryID())
	assert.Len(t, restaurant.OperatingDays, 1)
	require.Len(t, view.Categories, 1)
	assert.Equal(t, korean.ID, view.Categories[0].ID)
	assert.Equal(t, 1, korean.ActiveRestaurantCount)
}

func TestRestaurantService_CreateRestaurant_Rejected(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestRestaurantService(f)
		ctx := context.Background()

		f.expectTx()
		f.restaurantRepo.EXPECT().
			ExistsByOwnerIDAndName(ctx, ownerActor.ID, "광화문 국밥").
			Return(true, nil)

		_, err := svc.CreateRestaurant(ctx, ownerActor, usecase.CreateRestaurantInput{RestaurantName: "광화문 국밥"})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateRestaurantName)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestRestaurantService(f)
		ctx := context.Background()

		f.expectTx()
		f.restaurantRepo.EXPECT().
			ExistsByOwnerIDAndName(ctx, ownerActor.ID, "광화문 국밥").
			Return(false, nil)
		f.categoryRepo.EXPECT().
			FindAllByIDs(ctx, []string{"RCAT-MISSING"}).
			Return([]*entity.RestaurantCategory{}, nil)

		_, err := svc.CreateRestaurant(ctx, ownerActor, usecase.CreateRestaurantInput{
			RestaurantName: "광화문 국밥",
			CategoryIDs:    []string{"RCAT-MISSING"},
		})
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantCategoryNotFound)
	})

	t.Run("half coordinate", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestRestaurantService(f)
		ctx := context.Background()

		f.expectTx()
		f.restaurantRepo.EXPECT().
			ExistsByOwnerIDAndName(ctx, ownerActor.ID, "광화문 국밥").
			Return(false, nil)

		_, err := svc.CreateRestaurant(ctx, ownerActor, usecase.CreateRestaurantInput{
			RestaurantName: "광화문 국밥",
			Coordinate:     &usecase.CoordinateInput{Latitude: ptr(37.57)},
		})
		assert.ErrorIs(t, err, domainerrors.ErrCoordinateRequired)
	})
}

func TestRestaurantService_GetRestaurant(t *testing.T) {
	t.Run("counts the view", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestRestaurantService(f)
		ctx := context.Background()
		restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)

		f.expectTx()
		f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
		f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)

		view, err := svc.GetRestaurant(ctx, restaurant.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), view.Restaurant.ViewCount)
		assert.Empty(t, view.Categories)
	})

	t.Run("inactive restaurant is hidden", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestRestaurantService(f)
		ctx := context.Background()
		restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)
		restaurant.SetActive(false, "SYSTEM")

		f.expectTx()
		f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

		_, err := svc.GetRestaurant(ctx, restaurant.ID)
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	})

	t.Run("repository miss is translated", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestRestaurantService(f)
		ctx := context.Background()

		f.expectTx()
		f.restaurantRepo.EXPECT().FindByID(ctx, "REST-NONE").Return(nil, repository.ErrRestaurantNotFound)

		_, err := svc.GetRestaurant(ctx, "REST-NONE")
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	})
}

func TestRestaurantService_OwnershipIsEnforced(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestRestaurantService(f)
	ctx := context.Background()
	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	_, err := svc.ChangeStatus(ctx, otherActor, restaurant.ID, "CLOSED")
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantOwnershipViolation)
	assert.Equal(t, entity.RestaurantStatusOpen, restaurant.Status)
}

func TestRestaurantService_ChangeStatus(t *testing.T) {
	t.Run("administrator bypasses ownership", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestRestaurantService(f)
		ctx := context.Background()
		restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)

		f.expectTx()
		f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
		f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
		f.expectEvent(constants.EventRestaurantStatusChanged)

		view, err := svc.ChangeStatus(ctx, adminActor, restaurant.ID, " closed ")
		require.NoError(t, err)
		assert.Equal(t, entity.RestaurantStatusClosed, view.Restaurant.Status)
		assert.Equal(t, "ADMIN_admin-1", view.Restaurant.UpdatedBy)
	})

	t.Run("unknown status fails before loading", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestRestaurantService(f)

		_, err := svc.ChangeStatus(context.Background(), ownerActor, "REST-1", "BUSY")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRestaurantStatus)
	})
}

func TestRestaurantService_PatchRestaurant_ReconcilesCategories(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestRestaurantService(f)
	ctx := context.Background()

	korean := newSharedCategory(t, "KOREAN")
	chinese := newSharedCategory(t, "CHINESE")
	korean.IncrementRestaurantCount()
	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)
	restaurant.AddCategory(korean.ID, true, "OWNER_owner-1")

	changed := []string{korean.ID, chinese.ID}
	if chinese.ID < korean.ID {
		changed = []string{chinese.ID, korean.ID}
	}

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	f.categoryRepo.EXPECT().
		FindAllByIDs(ctx, []string{chinese.ID}).
		Return([]*entity.RestaurantCategory{chinese}, nil)
	f.categoryRepo.EXPECT().
		FindAllByIDs(ctx, changed).
		Return([]*entity.RestaurantCategory{korean, chinese}, nil)
	f.categoryRepo.EXPECT().Save(ctx, korean).Return(nil)
	f.categoryRepo.EXPECT().Save(ctx, chinese).Return(nil)
	f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
	f.expectEvent(constants.EventRestaurantUpdated)

	view, err := svc.PatchRestaurant(ctx, ownerActor, restaurant.ID, usecase.PatchRestaurantInput{
		RestaurantName: ptr("광화문 국밥 본점"),
		CategoryIDs:    []string{chinese.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "광화문 국밥 본점", view.Restaurant.RestaurantName)
	assert.Equal(t, []string{chinese.ID}, view.Restaurant.ActiveCategoryIDs())
	assert.Equal(t, chinese.ID, view.Restaurant.PrimaryCategoryID())
	assert.Equal(t, 0, korean.ActiveRestaurantCount)
	assert.Equal(t, 1, chinese.ActiveRestaurantCount)
	require.Len(t, view.Categories, 1)
	assert.Equal(t, chinese.ID, view.Categories[0].ID)
}

func TestRestaurantService_DeleteAndRestore(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestRestaurantService(f)
	ctx := context.Background()
	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusClosed)
	menu, err := restaurant.AddMenu(entity.MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "OWNER_owner-1")
	require.NoError(t, err)

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByIDIncludingDeleted(ctx, restaurant.ID).Return(restaurant, nil)
	f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
	f.expectEvent(constants.EventRestaurantDeleted).Once()
	f.expectEvent(constants.EventRestaurantRestored).Once()

	require.NoError(t, svc.DeleteRestaurant(ctx, ownerActor, restaurant.ID))
	assert.True(t, restaurant.IsDeleted)
	assert.True(t, menu.IsDeleted)
	assert.Equal(t, "OWNER_owner-1", restaurant.DeletedBy)

	err = svc.DeleteRestaurant(ctx, ownerActor, restaurant.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantAlreadyDeleted)

	view, err := svc.RestoreRestaurant(ctx, ownerActor, restaurant.ID)
	require.NoError(t, err)
	assert.False(t, view.Restaurant.IsDeleted)
	assert.True(t, view.Restaurant.IsActive)
	assert.True(t, menu.IsDeleted)
}

func TestRestaurantService_PublishFailureDoesNotFailCommand(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestRestaurantService(f)
	ctx := context.Background()
	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
	f.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	_, err := svc.ChangeStatus(ctx, ownerActor, restaurant.ID, "PREPARING")
	require.NoError(t, err)
}

func TestRestaurantService_SetOperatingDay(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.OperatingDayInput
		wantErr error
	}{
		{
			name:  "regular window with break",
			input: usecase.OperatingDayInput{DayType: "TUE", StartTime: ptr("10:00"), EndTime: ptr("22:00"), BreakStart: ptr("15:00"), BreakEnd: ptr("16:00")},
		},
		{
			name:    "unknown day",
			input:   usecase.OperatingDayInput{DayType: "FUNDAY", StartTime: ptr("10:00"), EndTime: ptr("22:00")},
			wantErr: domainerrors.ErrInvalidOperatingTime,
		},
		{
			name:    "malformed time",
			input:   usecase.OperatingDayInput{DayType: "TUE", StartTime: ptr("10시"), EndTime: ptr("22:00")},
			wantErr: domainerrors.ErrInvalidOperatingTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatalogFixtures(t)
			svc := createTestRestaurantService(f)
			ctx := context.Background()
			restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)

			if tt.wantErr == nil {
				f.expectTx()
				f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
				f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
				f.expectEvent(constants.EventRestaurantUpdated)
			}

			view, err := svc.SetOperatingDay(ctx, ownerActor, restaurant.ID, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			day := view.Restaurant.OperatingDayFor(entity.DayTuesday, entity.TimeTypeRegular)
			require.NotNil(t, day)
			assert.NotNil(t, day.BreakStart)
		})
	}
}

func TestRestaurantService_SearchClampsPageSize(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestRestaurantService(f)
	ctx := context.Background()
	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)

	f.restaurantRepo.EXPECT().
		Search(ctx, repository.RestaurantFilter{Keyword: "국밥", City: "종로구"}, repository.Page{Number: 2, Size: 100}).
		Return([]*entity.Restaurant{restaurant}, int64(201), nil)

	result, err := svc.SearchRestaurants(ctx, usecase.SearchRestaurantsInput{
		Keyword: " 국밥 ",
		City:    "종로구",
		Page:    usecase.PageRequest{Page: 2, Size: 1000},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Size)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Items, 1)
}

func TestRestaurantService_FindNearby(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestRestaurantService(f)
	ctx := context.Background()

	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)
	coordinate, err := entity.NewGeoCoordinate(37.5700, 126.9770)
	require.NoError(t, err)
	restaurant.UpdateCoordinate(coordinate, "OWNER_owner-1")

	f.restaurantRepo.EXPECT().
		FindNearby(ctx, mock.AnythingOfType("entity.GeoCoordinate"), 10.0, 20).
		Return([]*entity.Restaurant{restaurant}, nil)

	views, err := svc.FindNearby(ctx, usecase.NearbyInput{Latitude: ptr(37.5665), Longitude: ptr(126.9780), RadiusKm: 50})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].DistanceKm)
	assert.InDelta(t, 0.4, *views[0].DistanceKm, 0.1)

	_, err = svc.FindNearby(ctx, usecase.NearbyInput{Latitude: ptr(37.5665)})
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateRequired)
}

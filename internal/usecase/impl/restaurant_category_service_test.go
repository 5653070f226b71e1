package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCategoryService(f *catalogFixtures) usecase.RestaurantCategoryUsecase {
	return NewRestaurantCategoryService(f.txManager, f.categoryRepo, f.publisher, f.cfg, f.logger)
}

func TestRestaurantCategoryService_CreateCategory(t *testing.T) {
	t.Run("child of an existing parent", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestCategoryService(f)
		ctx := context.Background()
		parent := newSharedCategory(t, "ASIAN")

		f.expectTx()
		f.categoryRepo.EXPECT().ExistsByCode(ctx, "KOREAN").Return(false, nil)
		f.categoryRepo.EXPECT().FindByID(ctx, parent.ID).Return(parent, nil)
		f.categoryRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.RestaurantCategory")).Return(nil)
		f.expectEvent(constants.EventCategoryChanged)

		category, err := svc.CreateCategory(ctx, adminActor, usecase.CreateCategoryInput{
			Code:                   " korean ",
			Name:                   "한식",
			ParentID:               &parent.ID,
			IsPopular:              true,
			PlatformCommissionRate: ptr(9.8),
		})
		require.NoError(t, err)
		assert.Equal(t, "KOREAN", category.CategoryCode)
		assert.Equal(t, 2, category.Depth)
		assert.Equal(t, parent.ID, *category.ParentCategoryID)
		assert.True(t, category.IsPopular)
		assert.InDelta(t, 9.8, *category.PlatformCommissionRate, 0.0001)
	})

	t.Run("unknown parent makes a root", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestCategoryService(f)
		ctx := context.Background()

		f.expectTx()
		f.categoryRepo.EXPECT().ExistsByCode(ctx, "KOREAN").Return(false, nil)
		f.categoryRepo.EXPECT().FindByID(ctx, "RCAT-GONE").Return(nil, repository.ErrRestaurantCategoryNotFound)
		f.categoryRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.RestaurantCategory")).Return(nil)
		f.expectEvent(constants.EventCategoryChanged)

		category, err := svc.CreateCategory(ctx, adminActor, usecase.CreateCategoryInput{Code: "KOREAN", Name: "한식", ParentID: ptr("RCAT-GONE")})
		require.NoError(t, err)
		assert.Equal(t, 1, category.Depth)
		assert.Nil(t, category.ParentCategoryID)
	})

	t.Run("duplicate code", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestCategoryService(f)
		ctx := context.Background()

		f.expectTx()
		f.categoryRepo.EXPECT().ExistsByCode(ctx, "KOREAN").Return(true, nil)

		_, err := svc.CreateCategory(ctx, adminActor, usecase.CreateCategoryInput{Code: "KOREAN", Name: "한식"})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateCategoryCode)
	})

	t.Run("owners may not edit the taxonomy", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestCategoryService(f)

		_, err := svc.CreateCategory(context.Background(), ownerActor, usecase.CreateCategoryInput{Code: "KOREAN", Name: "한식"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestRestaurantCategoryService_UpdateCategory(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestCategoryService(f)
	ctx := context.Background()
	category := newSharedCategory(t, "KOREAN")
	category.SetPolicyInfo(ptr(int64(12000)), ptr(30), nil, "SYSTEM")

	f.expectTx()
	f.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	f.categoryRepo.EXPECT().Save(ctx, category).Return(nil)
	f.expectEvent(constants.EventCategoryChanged)

	updated, err := svc.UpdateCategory(ctx, adminActor, category.ID, usecase.UpdateCategoryInput{
		ColorCode:           ptr("#FF5733"),
		IsActive:            ptr(false),
		AverageDeliveryTime: ptr(25),
	})
	require.NoError(t, err)
	assert.Equal(t, "KOREAN 음식", updated.CategoryName)
	assert.Equal(t, "#FF5733", updated.ColorCode)
	assert.False(t, updated.IsActive)
	assert.Equal(t, int64(12000), *updated.DefaultMinimumOrderAmount)
	assert.Equal(t, 25, *updated.AverageDeliveryTime)
}

func TestRestaurantCategoryService_DeleteAndRestore(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestCategoryService(f)
	ctx := context.Background()
	category := newSharedCategory(t, "KOREAN")

	f.expectTx()
	f.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil).Once()
	f.categoryRepo.EXPECT().FindByIDIncludingDeleted(ctx, category.ID).Return(category, nil).Once()
	f.categoryRepo.EXPECT().Save(ctx, category).Return(nil)
	f.expectEvent(constants.EventCategoryChanged).Twice()

	require.NoError(t, svc.DeleteCategory(ctx, adminActor, category.ID))
	assert.True(t, category.IsDeleted)
	assert.False(t, category.IsActive)

	restored, err := svc.RestoreCategory(ctx, adminActor, category.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.True(t, restored.IsActive)
}

func TestRestaurantCategoryService_GetCategory_NotFound(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestCategoryService(f)
	ctx := context.Background()

	f.categoryRepo.EXPECT().FindByID(ctx, "RCAT-NONE").Return(nil, repository.ErrRestaurantCategoryNotFound)

	_, err := svc.GetCategory(ctx, "RCAT-NONE")
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantCategoryNotFound)
}

func TestRestaurantCategoryService_Hierarchy(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestCategoryService(f)
	ctx := context.Background()

	asian := newSharedCategory(t, "ASIAN")
	korean, err := entity.NewRestaurantCategory(entity.RestaurantCategoryParams{Code: "KOREAN", Name: "한식"}, asian, "SYSTEM")
	require.NoError(t, err)
	orphan := newSharedCategory(t, "ORPHAN")
	orphan.ParentCategoryID = ptr("RCAT-INACTIVE")
	orphan.Depth = 2

	f.categoryRepo.EXPECT().FindAll(ctx, true).Return([]*entity.RestaurantCategory{asian, korean, orphan}, nil)

	tree, err := svc.Hierarchy(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, asian.ID, tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, korean.ID, tree[0].Children[0].ID)
	assert.Equal(t, orphan.ID, tree[1].ID)
}

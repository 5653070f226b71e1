package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMenuService(f *catalogFixtures) usecase.MenuUsecase {
	return NewMenuService(f.txManager, f.restaurantRepo, f.categoryRepo, f.publisher, f.cfg, f.logger)
}

func TestMenuService_CreateMenu(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestMenuService(f)
	ctx := context.Background()

	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusPreparing)
	soups, err := restaurant.AddMenuCategory(entity.MenuCategoryParams{Name: "국밥류"}, "OWNER_owner-1")
	require.NoError(t, err)

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
	f.expectEvent(constants.EventMenuCreated)

	menu, err := svc.CreateMenu(ctx, ownerActor, restaurant.ID, usecase.CreateMenuInput{
		MenuName:    "순대국밥",
		Price:       ptr(int64(9000)),
		IsMain:      true,
		CategoryIDs: []string{soups.ID},
		OptionGroups: []usecase.OptionGroupInput{{
			GroupName:    "맵기",
			IsRequired:   true,
			MaxSelection: 1,
			Options:      []usecase.OptionInput{{OptionName: "보통"}, {OptionName: "매운맛", AdditionalPrice: 500}},
		}},
	})
	require.NoError(t, err)

	assert.True(t, menu.IsMain)
	assert.True(t, menu.IsAvailable)
	assert.Equal(t, soups.ID, menu.PrimaryCategoryID())
	assert.True(t, soups.HasMenu(menu.ID))
	require.Len(t, menu.OptionGroups, 1)
	assert.Len(t, menu.OptionGroups[0].Options, 2)
	assert.Equal(t, 1, menu.OptionGroups[0].MinSelection)
}

func TestMenuService_StatusGate(t *testing.T) {
	price := ptr(int64(9000))

	tests := []struct {
		name    string
		status  entity.RestaurantStatus
		call    func(svc usecase.MenuUsecase, restaurant *entity.Restaurant, menuID string) error
		wantErr error
	}{
		{
			name:   "create while open",
			status: entity.RestaurantStatusOpen,
			call: func(svc usecase.MenuUsecase, restaurant *entity.Restaurant, _ string) error {
				_, err := svc.CreateMenu(context.Background(), ownerActor, restaurant.ID, usecase.CreateMenuInput{MenuName: "냉면", Price: price})

				return err
			},
			wantErr: domainerrors.ErrCannotModifyMenuWhileOpen,
		},
		{
			name:   "patch while open",
			status: entity.RestaurantStatusOpen,
			call: func(svc usecase.MenuUsecase, restaurant *entity.Restaurant, menuID string) error {
				_, err := svc.PatchMenu(context.Background(), ownerActor, restaurant.ID, menuID, usecase.PatchMenuInput{Price: ptr(int64(10000))})

				return err
			},
			wantErr: domainerrors.ErrCannotModifyMenuWhileOpen,
		},
		{
			name:   "add option group while open",
			status: entity.RestaurantStatusOpen,
			call: func(svc usecase.MenuUsecase, restaurant *entity.Restaurant, menuID string) error {
				_, err := svc.AddOptionGroup(context.Background(), ownerActor, restaurant.ID, menuID, usecase.OptionGroupInput{GroupName: "사이즈", MaxSelection: 1})

				return err
			},
			wantErr: domainerrors.ErrCannotModifyMenuWhileOpen,
		},
		{
			name:   "visibility toggle while open",
			status: entity.RestaurantStatusOpen,
			call: func(svc usecase.MenuUsecase, restaurant *entity.Restaurant, menuID string) error {
				_, err := svc.ToggleMenuVisibility(context.Background(), ownerActor, restaurant.ID, menuID, true)

				return err
			},
		},
		{
			name:   "patch while temporarily closed",
			status: entity.RestaurantStatusTemporarilyClosed,
			call: func(svc usecase.MenuUsecase, restaurant *entity.Restaurant, menuID string) error {
				_, err := svc.PatchMenu(context.Background(), ownerActor, restaurant.ID, menuID, usecase.PatchMenuInput{Price: ptr(int64(10000))})

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatalogFixtures(t)
			svc := createTestMenuService(f)

			restaurant := newOwnedRestaurant(t, entity.RestaurantStatusClosed)
			menu, err := restaurant.AddMenu(entity.MenuParams{MenuName: "국밥", Price: price}, "OWNER_owner-1")
			require.NoError(t, err)
			require.NoError(t, restaurant.ChangeStatus(tt.status, "OWNER_owner-1"))

			f.expectTx()
			f.restaurantRepo.EXPECT().FindByID(context.Background(), restaurant.ID).Return(restaurant, nil)
			if tt.wantErr == nil {
				f.restaurantRepo.EXPECT().Save(context.Background(), restaurant).Return(nil)
				f.expectEvent(constants.EventMenuUpdated)
			}

			err = tt.call(svc, restaurant, menu.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMenuService_PatchMenu_KeepsUnsetFields(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestMenuService(f)
	ctx := context.Background()

	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusClosed)
	menu, err := restaurant.AddMenu(entity.MenuParams{MenuName: "국밥", Description: "진한 국물", Price: ptr(int64(9000))}, "OWNER_owner-1")
	require.NoError(t, err)

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
	f.expectEvent(constants.EventMenuUpdated)

	patched, err := svc.PatchMenu(ctx, ownerActor, restaurant.ID, menu.ID, usecase.PatchMenuInput{
		Price:     ptr(int64(9500)),
		IsPopular: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9500), patched.Price)
	assert.Equal(t, "국밥", patched.MenuName)
	assert.Equal(t, "진한 국물", patched.Description)
	assert.True(t, patched.IsPopular)
}

func TestMenuService_PatchMenu_NegativePriceLeavesMenuUnchanged(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestMenuService(f)
	ctx := context.Background()

	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusClosed)
	menu, err := restaurant.AddMenu(entity.MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "OWNER_owner-1")
	require.NoError(t, err)

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	_, err = svc.PatchMenu(ctx, ownerActor, restaurant.ID, menu.ID, usecase.PatchMenuInput{
		MenuName: ptr("특국밥"),
		Price:    ptr(int64(-1)),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMenuPrice)
	assert.Equal(t, "국밥", menu.MenuName)
	assert.Equal(t, int64(9000), menu.Price)
}

func TestMenuService_CustomerViews(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestMenuService(f)
	ctx := context.Background()

	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusClosed)
	visible, err := restaurant.AddMenu(entity.MenuParams{MenuName: "순대국밥", Price: ptr(int64(9000))}, "OWNER_owner-1")
	require.NoError(t, err)
	hidden, err := restaurant.AddMenu(entity.MenuParams{MenuName: "수육", Price: ptr(int64(25000))}, "OWNER_owner-1")
	require.NoError(t, err)
	hidden.SetAvailable(false, "OWNER_owner-1")
	deleted, err := restaurant.AddMenu(entity.MenuParams{MenuName: "국수", Price: ptr(int64(7000))}, "OWNER_owner-1")
	require.NoError(t, err)
	require.NoError(t, restaurant.RemoveMenu(deleted.ID, "OWNER_owner-1"))

	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	page, err := svc.ListMenus(ctx, restaurant.ID, usecase.ListMenusInput{Keyword: "국"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, visible.ID, page.Items[0].ID)
	assert.Equal(t, int64(1), page.TotalItems)

	_, err = svc.GetMenu(ctx, restaurant.ID, hidden.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMenuNotFound)

	owned, err := svc.ListMenusForOwner(ctx, ownerActor, restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	_, err = svc.ListMenusForOwner(ctx, otherActor, restaurant.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantOwnershipViolation)
}

func TestMenuService_DeleteAndRestoreMenu(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestMenuService(f)
	ctx := context.Background()

	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)
	require.NoError(t, restaurant.ChangeStatus(entity.RestaurantStatusClosed, "OWNER_owner-1"))
	menu, err := restaurant.AddMenu(entity.MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "OWNER_owner-1")
	require.NoError(t, err)
	group, err := menu.AddOptionGroup(entity.OptionGroupParams{GroupName: "추가", MaxSelection: 2}, "OWNER_owner-1")
	require.NoError(t, err)
	require.NoError(t, restaurant.ChangeStatus(entity.RestaurantStatusOpen, "OWNER_owner-1"))

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
	f.expectEvent(constants.EventMenuDeleted).Once()
	f.expectEvent(constants.EventMenuRestored).Once()

	require.NoError(t, svc.DeleteMenu(ctx, ownerActor, restaurant.ID, menu.ID))
	assert.True(t, menu.IsDeleted)
	assert.True(t, group.IsDeleted)

	err = svc.DeleteMenu(ctx, ownerActor, restaurant.ID, menu.ID)
	assert.ErrorIs(t, err, domainerrors.ErrMenuAlreadyDeleted)

	restored, err := svc.RestoreMenu(ctx, ownerActor, restaurant.ID, menu.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.True(t, group.IsDeleted)
}

func TestMenuService_AdminUpdateMenu(t *testing.T) {
	t.Run("requires administrator", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestMenuService(f)

		_, err := svc.AdminUpdateMenu(context.Background(), ownerActor, "REST-1", "MENU-1", usecase.PatchMenuInput{})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("ignores the status gate", func(t *testing.T) {
		f := newCatalogFixtures(t)
		svc := createTestMenuService(f)
		ctx := context.Background()

		restaurant := newOwnedRestaurant(t, entity.RestaurantStatusClosed)
		menu, err := restaurant.AddMenu(entity.MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "OWNER_owner-1")
		require.NoError(t, err)
		require.NoError(t, restaurant.ChangeStatus(entity.RestaurantStatusOpen, "OWNER_owner-1"))

		f.expectTx()
		f.restaurantRepo.EXPECT().FindByIDIncludingDeleted(ctx, restaurant.ID).Return(restaurant, nil)
		f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
		f.expectEvent(constants.EventMenuUpdated)

		updated, err := svc.AdminUpdateMenu(ctx, adminActor, restaurant.ID, menu.ID, usecase.PatchMenuInput{IsAvailable: ptr(false)})
		require.NoError(t, err)
		assert.False(t, updated.IsAvailable)
		assert.Equal(t, "ADMIN_admin-1", updated.UpdatedBy)
	})
}

func TestMenuService_MenuCategories(t *testing.T) {
	f := newCatalogFixtures(t)
	svc := createTestMenuService(f)
	ctx := context.Background()

	restaurant := newOwnedRestaurant(t, entity.RestaurantStatusOpen)

	f.expectTx()
	f.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	f.restaurantRepo.EXPECT().Save(ctx, restaurant).Return(nil)
	f.expectEvent(constants.EventMenuCategoryChanged)

	root, err := svc.CreateMenuCategory(ctx, ownerActor, restaurant.ID, usecase.CreateMenuCategoryInput{Name: "식사"})
	require.NoError(t, err)
	child, err := svc.CreateMenuCategory(ctx, ownerActor, restaurant.ID, usecase.CreateMenuCategoryInput{Name: "국밥", ParentID: &root.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, child.Depth)

	tree, err := svc.ListMenuCategories(ctx, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Len(t, tree[0].Children, 1)

	require.NoError(t, svc.DeleteMenuCategory(ctx, ownerActor, restaurant.ID, child.ID))
	assert.True(t, child.IsDeleted)
}

package entity

import (
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRestaurant(t *testing.T, status RestaurantStatus) *Restaurant {
	t.Helper()

	restaurant, err := NewRestaurant(RestaurantParams{
		OwnerID:        "owner-1",
		OwnerName:      "김사장",
		RestaurantName: "광화문 국밥",
		Status:         status,
		Address:        &PostalAddress{Province: "서울특별시", City: "종로구", District: "광화문동"},
		Tags:           []string{"국밥", " ", "국밥", "한식"},
	}, "owner-1")
	require.NoError(t, err)

	return restaurant
}

func TestNewRestaurant(t *testing.T) {
	restaurant := newTestRestaurant(t, "")

	assert.Regexp(t, `^REST-[0-9A-F]{8}$`, restaurant.ID)
	assert.Equal(t, RestaurantStatusOpen, restaurant.Status)
	assert.True(t, restaurant.IsActive)
	assert.Equal(t, []string{"국밥", "한식"}, restaurant.Tags)
	assert.True(t, restaurant.IsOwnedBy("owner-1"))
	assert.False(t, restaurant.IsOwnedBy(""))

	tests := []struct {
		name    string
		params  RestaurantParams
		wantErr error
	}{
		{name: "blank name", params: RestaurantParams{OwnerID: "o", RestaurantName: " "}, wantErr: domainerrors.ErrRestaurantNameRequired},
		{name: "missing owner", params: RestaurantParams{RestaurantName: "가게"}, wantErr: domainerrors.ErrOwnerRequired},
		{name: "incomplete address", params: RestaurantParams{OwnerID: "o", RestaurantName: "가게", Address: &PostalAddress{Province: "서울특별시"}}, wantErr: domainerrors.ErrInvalidAddress},
		{name: "unknown status", params: RestaurantParams{OwnerID: "o", RestaurantName: "가게", Status: "BUSY"}, wantErr: domainerrors.ErrInvalidRestaurantStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRestaurant(tt.params, "o")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRestaurant_MenuStatusGate(t *testing.T) {
	tests := []struct {
		status  RestaurantStatus
		wantErr error
	}{
		{status: RestaurantStatusOpen, wantErr: domainerrors.ErrCannotModifyMenuWhileOpen},
		{status: RestaurantStatusClosed},
		{status: RestaurantStatusTemporarilyClosed},
		{status: RestaurantStatusPreparing},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			restaurant := newTestRestaurant(t, tt.status)

			menu, err := restaurant.AddMenu(MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "owner-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, restaurant.Menus)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, restaurant.ID, menu.RestaurantID)
			assert.Len(t, restaurant.ActiveMenus(), 1)
		})
	}
}

func TestRestaurant_ChangeStatus(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusOpen)

	assert.ErrorIs(t, restaurant.ChangeStatus("BUSY", "owner-1"), domainerrors.ErrInvalidRestaurantStatus)
	assert.Equal(t, RestaurantStatusOpen, restaurant.Status)

	require.NoError(t, restaurant.ChangeStatus(RestaurantStatusPreparing, "owner-1"))
	assert.True(t, restaurant.CanModifyMenu())
}

func TestRestaurant_MenuCategoryDepth(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusPreparing)

	root, err := restaurant.AddMenuCategory(MenuCategoryParams{Name: "식사"}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, root.Depth)

	child, err := restaurant.AddMenuCategory(MenuCategoryParams{Name: "국밥류", ParentID: &root.ID}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, child.Depth)

	grandchild, err := restaurant.AddMenuCategory(MenuCategoryParams{Name: "돼지국밥", ParentID: &child.ID}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 3, grandchild.Depth)

	_, err = restaurant.AddMenuCategory(MenuCategoryParams{Name: "특", ParentID: &grandchild.ID}, "owner-1")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategoryDepth)
	assert.Len(t, restaurant.MenuCategories, 3)

	orphan, err := restaurant.AddMenuCategory(MenuCategoryParams{Name: "음료", ParentID: ptr("CAT-MISSING")}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, orphan.Depth)
	assert.Nil(t, orphan.ParentCategoryID)
	require.NotNil(t, child.ParentCategoryID)
	assert.Equal(t, root.ID, *child.ParentCategoryID)

	tree := restaurant.MenuCategoryTree()
	require.Len(t, tree, 2)
	assert.Equal(t, root.ID, tree[0].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, grandchild.ID, tree[0].Children[0].Children[0].ID)
}

func TestRestaurant_MenuCategoryMembership(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusPreparing)
	soup, _ := restaurant.AddMenuCategory(MenuCategoryParams{Name: "국"}, "owner-1")
	rice, _ := restaurant.AddMenuCategory(MenuCategoryParams{Name: "밥"}, "owner-1")
	menu, err := restaurant.AddMenu(MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "owner-1")
	require.NoError(t, err)

	_, err = restaurant.AddMenuToCategory(menu.ID, soup.ID, true, "owner-1")
	require.NoError(t, err)
	assert.True(t, soup.HasMenu(menu.ID))

	_, err = restaurant.AddMenuToCategory(menu.ID, "CAT-MISSING", false, "owner-1")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	require.NoError(t, restaurant.ReconcileMenuCategories(menu.ID, []string{rice.ID}, rice.ID, "owner-1"))
	assert.False(t, soup.HasMenu(menu.ID))
	assert.True(t, rice.HasMenu(menu.ID))
	assert.Equal(t, rice.ID, menu.PrimaryCategoryID())
	assert.Len(t, restaurant.MenusByCategory(rice.ID), 1)

	assert.ErrorIs(t, restaurant.ReconcileMenuCategories(menu.ID, []string{"CAT-MISSING"}, "", "owner-1"), domainerrors.ErrCategoryNotFound)
	assert.Equal(t, []string{rice.ID}, menu.ActiveCategoryIDs())

	require.NoError(t, restaurant.DeleteMenuCategory(rice.ID, "owner-1"))
	assert.True(t, rice.IsDeleted)
	assert.False(t, rice.IsActive)
	assert.Empty(t, menu.ActiveCategoryIDs())

	_, err = restaurant.AddMenuToCategory(menu.ID, rice.ID, true, "owner-1")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	assert.ErrorIs(t, restaurant.ReconcileMenuCategories(menu.ID, []string{rice.ID}, rice.ID, "owner-1"), domainerrors.ErrCategoryNotFound)
	assert.Empty(t, menu.ActiveCategoryIDs())
	assert.False(t, rice.HasMenu(menu.ID))
}

func TestRestaurant_RemoveMenu(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusPreparing)
	category, _ := restaurant.AddMenuCategory(MenuCategoryParams{Name: "국"}, "owner-1")
	menu, _ := restaurant.AddMenu(MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "owner-1")
	_, _ = restaurant.AddMenuToCategory(menu.ID, category.ID, true, "owner-1")

	require.NoError(t, restaurant.RemoveMenu(menu.ID, "owner-1"))
	assert.True(t, menu.IsDeleted)
	assert.False(t, category.HasMenu(menu.ID))
	assert.Zero(t, restaurant.ActiveMenuCount())

	found, err := restaurant.FindMenuByID(menu.ID)
	require.NoError(t, err)
	assert.Same(t, menu, found)

	assert.ErrorIs(t, restaurant.RemoveMenu(menu.ID, "owner-1"), domainerrors.ErrMenuAlreadyDeleted)
	assert.ErrorIs(t, restaurant.RemoveMenu("MENU-NONE", "owner-1"), domainerrors.ErrMenuNotFound)
}

func TestRestaurant_DeleteCascades(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusPreparing)
	category, _ := restaurant.AddMenuCategory(MenuCategoryParams{Name: "국"}, "owner-1")
	first, _ := restaurant.AddMenu(MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "owner-1")
	second, _ := restaurant.AddMenu(MenuParams{MenuName: "수육", Price: ptr(int64(25000))}, "owner-1")
	group, _ := first.AddOptionGroup(OptionGroupParams{GroupName: "양", IsRequired: true, MaxSelection: 1}, "owner-1")
	option, _ := group.AddOption(OptionParams{OptionName: "곱빼기", AdditionalPrice: 2000}, "owner-1")
	restaurant.AddCategory("RCAT-KOREAN", true, "owner-1")

	require.NoError(t, second.Delete("owner-2"))
	secondDeletedAt := *second.DeletedAt

	require.NoError(t, restaurant.Delete("admin-1"))

	assert.True(t, restaurant.IsDeleted)
	assert.False(t, restaurant.IsActive)
	assert.Equal(t, RestaurantStatusClosed, restaurant.Status)
	assert.True(t, first.IsDeleted)
	assert.True(t, group.IsDeleted)
	assert.True(t, option.IsDeleted)
	assert.True(t, category.IsDeleted)
	assert.Empty(t, restaurant.ActiveCategoryIDs())
	assert.Equal(t, "owner-2", second.DeletedBy, "menus deleted earlier keep their stamps")
	assert.Equal(t, secondDeletedAt, *second.DeletedAt)
	assert.False(t, restaurant.CanAcceptOrderAt(mondayAt(12, 0)))
}

func TestRestaurant_DeleteTwiceFailsWithoutMutation(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusClosed)
	require.NoError(t, restaurant.Delete("owner-1"))
	deletedAt := *restaurant.DeletedAt

	err := restaurant.Delete("admin-1")
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantAlreadyDeleted)
	assert.Equal(t, "owner-1", restaurant.DeletedBy)
	assert.Equal(t, deletedAt, *restaurant.DeletedAt)
}

func TestRestaurant_RestoreDoesNotCascade(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusPreparing)
	menu, _ := restaurant.AddMenu(MenuParams{MenuName: "국밥", Price: ptr(int64(9000))}, "owner-1")
	require.NoError(t, restaurant.Delete("owner-1"))

	restaurant.Restore("admin-1")
	assert.False(t, restaurant.IsDeleted)
	assert.True(t, restaurant.IsActive)
	assert.Equal(t, RestaurantStatusClosed, restaurant.Status)
	assert.True(t, menu.IsDeleted)
}

func TestRestaurant_OperatingDays(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusOpen)

	_, err := restaurant.SetOperatingDay(OperatingDayParams{DayType: DayMonday, StartTime: clock(9, 0), EndTime: clock(18, 0)})
	require.NoError(t, err)
	_, err = restaurant.SetOperatingDay(OperatingDayParams{DayType: DayMonday, StartTime: clock(11, 0), EndTime: clock(21, 0)})
	require.NoError(t, err)
	_, err = restaurant.SetOperatingDay(OperatingDayParams{DayType: DayMonday, TimeType: TimeTypeHoliday, IsHoliday: true})
	require.NoError(t, err)

	require.Len(t, restaurant.OperatingDays, 2)
	regular := restaurant.OperatingDayFor(DayMonday, TimeTypeRegular)
	require.NotNil(t, regular)
	assert.Equal(t, "11:00", regular.StartTime.String())

	assert.False(t, restaurant.IsOpenAt(mondayAt(10, 0)))
	assert.True(t, restaurant.IsOpenAt(mondayAt(12, 0)))
	assert.True(t, restaurant.CanAcceptOrderAt(mondayAt(12, 0)))

	require.NoError(t, restaurant.SetBreakTime(DayMonday, MustClockTime(15, 0), MustClockTime(17, 0)))
	assert.False(t, restaurant.IsOpenAt(mondayAt(16, 0)))

	assert.ErrorIs(t, restaurant.SetBreakTime(DayTuesday, MustClockTime(15, 0), MustClockTime(17, 0)), domainerrors.ErrOperatingDayNotFound)
	assert.ErrorIs(t, restaurant.SetBreakTime(DayMonday, MustClockTime(17, 0), MustClockTime(15, 0)), domainerrors.ErrInvalidOperatingTime)
	assert.ErrorIs(t, restaurant.SetBreakTime(DayMonday, MustClockTime(20, 0), MustClockTime(22, 0)), domainerrors.ErrBreakTimeOutOfOperatingTime)
	assert.Equal(t, "15:00", restaurant.OperatingDayFor(DayMonday, TimeTypeRegular).BreakStart.String())

	require.NoError(t, restaurant.ChangeStatus(RestaurantStatusTemporarilyClosed, "owner-1"))
	assert.False(t, restaurant.IsOpenAt(mondayAt(12, 0)))

	require.NoError(t, restaurant.RemoveOperatingDay(DayMonday, TimeTypeHoliday))
	assert.ErrorIs(t, restaurant.RemoveOperatingDay(DayMonday, TimeTypeHoliday), domainerrors.ErrOperatingDayNotFound)
}

func TestRestaurant_TagsAndCounters(t *testing.T) {
	restaurant := newTestRestaurant(t, RestaurantStatusOpen)

	restaurant.RemoveTag("국밥")
	assert.Equal(t, []string{"한식"}, restaurant.Tags)
	restaurant.ClearTags()
	assert.Empty(t, restaurant.Tags)

	restaurant.DecrementWishlistCount()
	assert.Zero(t, restaurant.WishlistCount)
	restaurant.IncrementWishlistCount()
	restaurant.IncrementViewCount()
	restaurant.IncrementPurchaseCount()
	assert.Equal(t, int64(1), restaurant.WishlistCount)
	assert.Equal(t, int64(1), restaurant.ViewCount)
	assert.Equal(t, int64(1), restaurant.PurchaseCount)

	restaurant.UpdateReviewStats(10, 4.0)
	require.NoError(t, restaurant.AddReview(5))
	assert.Equal(t, int64(11), restaurant.ReviewCount)
	assert.Equal(t, 4.09, restaurant.ReviewRating)

	assert.True(t, restaurant.MatchesKeyword("국밥"))
}

func TestRestaurantCategory_Depth(t *testing.T) {
	root, err := NewRestaurantCategory(RestaurantCategoryParams{Code: "KOREAN", Name: "한식"}, nil, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, root.Depth)
	assert.True(t, root.IsRoot())

	child, err := NewRestaurantCategory(RestaurantCategoryParams{Code: "SOUP", Name: "국밥"}, root, "admin")
	require.NoError(t, err)
	leaf, err := NewRestaurantCategory(RestaurantCategoryParams{Code: "PORK_SOUP", Name: "돼지국밥"}, child, "admin")
	require.NoError(t, err)
	assert.Equal(t, 3, leaf.Depth)

	_, err = NewRestaurantCategory(RestaurantCategoryParams{Code: "TOO_DEEP", Name: "특"}, leaf, "admin")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategoryDepth)

	_, err = NewRestaurantCategory(RestaurantCategoryParams{Name: "코드없음"}, nil, "admin")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameRequired)

	root.DecrementRestaurantCount()
	assert.Zero(t, root.ActiveRestaurantCount)
	root.IncrementRestaurantCount()
	assert.Equal(t, 1, root.ActiveRestaurantCount)
}

func TestRestaurantStatus(t *testing.T) {
	status, err := ParseRestaurantStatus("temporarily_closed")
	require.NoError(t, err)
	assert.Equal(t, RestaurantStatusTemporarilyClosed, status)
	assert.False(t, status.CanAcceptOrder())
	assert.True(t, status.CanModifyMenu())

	assert.True(t, RestaurantStatusOpen.CanAcceptOrder())
	assert.False(t, RestaurantStatusOpen.CanModifyMenu())

	_, err = ParseRestaurantStatus("BUSY")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRestaurantStatus)
}

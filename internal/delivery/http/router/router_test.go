package router_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/config"
	deliveryhttp "catalog/internal/delivery/http"
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/response"
	"catalog/internal/delivery/http/router"
	"catalog/internal/delivery/http/router/handler"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	servicemocks "catalog/internal/mocks/service"
	usecasemocks "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	ownerToken    = "owner-token"
	adminToken    = "admin-token"
	customerToken = "customer-token"
)

type envelope struct {
	Success   bool                `json:"success"`
	Code      int                 `json:"code"`
	Message   string              `json:"message"`
	Data      json.RawMessage     `json:"data"`
	Error     *response.ErrorInfo `json:"error"`
	RequestID string              `json:"request_id"`
}

type apiFixture struct {
	e            *echo.Echo
	restaurantUC *usecasemocks.MockRestaurantUsecase
	menuUC       *usecasemocks.MockMenuUsecase
	categoryUC   *usecasemocks.MockRestaurantCategoryUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"
	logger := slog.New(slog.DiscardHandler)

	f := &apiFixture{
		e:            deliveryhttp.NewEcho(cfg, logger),
		restaurantUC: usecasemocks.NewMockRestaurantUsecase(t),
		menuUC:       usecasemocks.NewMockMenuUsecase(t),
		categoryUC:   usecasemocks.NewMockRestaurantCategoryUsecase(t),
	}

	tokenSvc := servicemocks.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(ownerToken).Return(claims("owner-1", entity.RoleOwner), nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(adminToken).Return(claims("admin-1", entity.RoleAdmin), nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(customerToken).Return(claims("customer-1", entity.RoleCustomer), nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("token is expired")).Maybe()

	router.NewRouter(router.RouterParams{
		RestaurantHandler: handler.NewRestaurantHandler(handler.RestaurantHandlerParams{RestaurantUC: f.restaurantUC, Logger: logger}),
		MenuHandler:       handler.NewMenuHandler(handler.MenuHandlerParams{MenuUC: f.menuUC, Logger: logger}),
		CategoryHandler:   handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: f.categoryUC, Logger: logger}),
		RealtimeHandler:   handler.NewRealtimeHandler(handler.RealtimeHandlerParams{Logger: logger}),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(f.e)

	return f
}

func claims(subject string, roles ...entity.Role) *service.Claims {
	return &service.Claims{
		Roles:            entity.Roles(roles).ToStrings(),
		Type:             "access",
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
}

func (f *apiFixture) do(t *testing.T, method, target, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

var ownerActor = usecase.Actor{ID: "owner-1", Roles: []string{"owner"}}

func TestRouter_HealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.RequestID)
}

func TestRouter_SearchRestaurants_BindsQuery(t *testing.T) {
	f := newAPIFixture(t)

	f.restaurantUC.EXPECT().
		SearchRestaurants(mock.Anything, usecase.SearchRestaurantsInput{
			Keyword:  "noodle",
			City:     "Seoul",
			Page:     usecase.PageRequest{Page: 2, Size: 5},
		}).
		Return(usecase.NewPageResult([]*usecase.RestaurantView{}, usecase.PageRequest{Page: 2, Size: 5}, 11), nil)

	rec, env := f.do(t, http.MethodGet, "/restaurants?keyword=noodle&city=Seoul&page=2&size=5", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var page usecase.PageResult[*usecase.RestaurantView]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(11), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
}

func TestRouter_GetRestaurant_NotFound(t *testing.T) {
	f := newAPIFixture(t)

	f.restaurantUC.EXPECT().
		GetRestaurant(mock.Anything, "REST-MISSING").
		Return(nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "failed to load restaurant"))

	rec, env := f.do(t, http.MethodGet, "/restaurants/REST-MISSING", "", nil)

	assert.Equal(t, domainerrors.ErrRestaurantNotFound.HTTPCode(), rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrRestaurantNotFound.ErrorCode(), env.Error.Code)
}

func TestRouter_FindNearby(t *testing.T) {
	t.Run("missing coordinates are rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodGet, "/restaurants/nearby?lat=37.5", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
	})

	t.Run("coordinates are passed through", func(t *testing.T) {
		f := newAPIFixture(t)

		f.restaurantUC.EXPECT().
			FindNearby(mock.Anything, mock.MatchedBy(func(in usecase.NearbyInput) bool {
				return in.Latitude != nil && *in.Latitude == 37.5 &&
					in.Longitude != nil && *in.Longitude == 127.0 &&
					in.RadiusKm == 2 && in.Limit == 10
			})).
			Return([]*usecase.RestaurantView{}, nil)

		rec, _ := f.do(t, http.MethodGet, "/restaurants/nearby?lat=37.5&lng=127.0&radius_km=2&limit=10", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_OwnerRoutes_Authorization(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{name: "missing token", token: "", wantCode: http.StatusUnauthorized},
		{name: "invalid token", token: "garbage", wantCode: http.StatusUnauthorized},
		{name: "customer role", token: customerToken, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)

			rec, env := f.do(t, http.MethodGet, "/owner/restaurants", tt.token, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestRouter_CreateRestaurant(t *testing.T) {
	t.Run("passes the authenticated owner", func(t *testing.T) {
		f := newAPIFixture(t)

		f.restaurantUC.EXPECT().
			CreateRestaurant(mock.Anything, ownerActor, mock.MatchedBy(func(in usecase.CreateRestaurantInput) bool {
				return in.RestaurantName == "Noodle House" &&
					len(in.CategoryIDs) == 1 &&
					len(in.OperatingDays) == 1 && in.OperatingDays[0].DayType == "MONDAY"
			})).
			Return(&usecase.RestaurantView{Restaurant: &entity.Restaurant{ID: "REST-00000001"}}, nil)

		rec, env := f.do(t, http.MethodPost, "/owner/restaurants", ownerToken, map[string]any{
			"restaurant_name": "Noodle House",
			"category_ids":    []string{"CAT-1"},
			"operating_days": []map[string]any{
				{"day_type": "MONDAY", "time_type": "OPERATING", "start_time": "09:00", "end_time": "21:00"},
			},
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), "REST-00000001")
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodPost, "/owner/restaurants", ownerToken, map[string]any{
			"category_ids": []string{"CAT-1"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
		assert.Contains(t, env.Error.Details, "restaurant_name")
	})

	t.Run("malformed time fails validation", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodPost, "/owner/restaurants", ownerToken, map[string]any{
			"restaurant_name": "Noodle House",
			"category_ids":    []string{"CAT-1"},
			"operating_days": []map[string]any{
				{"day_type": "MONDAY", "time_type": "OPERATING", "start_time": "9 am"},
			},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Error.Details, "hhmm")
	})
}

func TestRouter_ChangeStatus_OwnershipViolation(t *testing.T) {
	f := newAPIFixture(t)

	f.restaurantUC.EXPECT().
		ChangeStatus(mock.Anything, ownerActor, "REST-00000002", "CLOSED").
		Return(nil, domainerrors.ErrRestaurantOwnershipViolation)

	rec, env := f.do(t, http.MethodPut, "/owner/restaurants/REST-00000002/status", ownerToken, map[string]any{"status": "CLOSED"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domainerrors.ErrRestaurantOwnershipViolation.ErrorCode(), env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestRouter_CreateMenu_WhileOpen(t *testing.T) {
	f := newAPIFixture(t)

	f.menuUC.EXPECT().
		CreateMenu(mock.Anything, ownerActor, "REST-00000001", mock.AnythingOfType("usecase.CreateMenuInput")).
		Return(nil, domainerrors.ErrCannotModifyMenuWhileOpen)

	rec, env := f.do(t, http.MethodPost, "/owner/restaurants/REST-00000001/menus", ownerToken, map[string]any{
		"menu_name": "Ramen",
		"price":     9000,
	})

	assert.Equal(t, domainerrors.ErrCannotModifyMenuWhileOpen.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrCannotModifyMenuWhileOpen.ErrorCode(), env.Error.Code)
}

func TestRouter_ToggleVisibility(t *testing.T) {
	t.Run("hidden flag is required", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, _ := f.do(t, http.MethodPut, "/owner/restaurants/REST-00000001/menus/MENU-1/visibility", ownerToken, map[string]any{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("hides the menu", func(t *testing.T) {
		f := newAPIFixture(t)

		f.menuUC.EXPECT().
			ToggleMenuVisibility(mock.Anything, ownerActor, "REST-00000001", "MENU-1", true).
			Return(&entity.Menu{ID: "MENU-1", IsAvailable: false}, nil)

		rec, _ := f.do(t, http.MethodPut, "/owner/restaurants/REST-00000001/menus/MENU-1/visibility", ownerToken, map[string]any{"hidden": true})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_AdminRoutes(t *testing.T) {
	t.Run("owner cannot reach admin routes", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, _ := f.do(t, http.MethodGet, "/admin/restaurants", ownerToken, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin creates a category", func(t *testing.T) {
		f := newAPIFixture(t)
		admin := usecase.Actor{ID: "admin-1", Roles: []string{"admin"}}

		f.categoryUC.EXPECT().
			CreateCategory(mock.Anything, admin, mock.MatchedBy(func(in usecase.CreateCategoryInput) bool {
				return in.Code == "KOREAN" && in.Name == "Korean"
			})).
			Return(&entity.RestaurantCategory{ID: "CAT-1", CategoryCode: "KOREAN"}, nil)

		rec, env := f.do(t, http.MethodPost, "/admin/restaurant-categories", adminToken, map[string]any{
			"code": "KOREAN",
			"name": "Korean",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), "KOREAN")
	})

	t.Run("admin may use owner routes", func(t *testing.T) {
		f := newAPIFixture(t)

		f.restaurantUC.EXPECT().
			DeleteRestaurant(mock.Anything, mock.MatchedBy(func(a usecase.Actor) bool { return a.IsAdmin() }), "REST-00000001").
			Return(nil)

		rec, env := f.do(t, http.MethodDelete, "/owner/restaurants/REST-00000001", adminToken, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
	})
}

func TestRouter_UnexpectedErrorIsHidden(t *testing.T) {
	f := newAPIFixture(t)

	f.categoryUC.EXPECT().
		ListRoots(mock.Anything).
		Return(nil, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	rec, env := f.do(t, http.MethodGet, "/restaurant-categories", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), env.Error.Code)
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}

func TestRouter_RealtimeDisabled(t *testing.T) {
	f := newAPIFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/ws/restaurants/REST-00000001", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

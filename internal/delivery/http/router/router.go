// Package router contains routing for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"
	"catalog/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RestaurantHandler *handler.RestaurantHandler
	MenuHandler       *handler.MenuHandler
	CategoryHandler   *handler.CategoryHandler
	RealtimeHandler   *handler.RealtimeHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	restaurantHandler *handler.RestaurantHandler
	menuHandler       *handler.MenuHandler
	categoryHandler   *handler.CategoryHandler
	realtimeHandler   *handler.RealtimeHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		restaurantHandler: params.RestaurantHandler,
		menuHandler:       params.MenuHandler,
		categoryHandler:   params.CategoryHandler,
		realtimeHandler:   params.RealtimeHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	r.registerPublicRoutes(e)
	r.registerOwnerRoutes(e)
	r.registerAdminRoutes(e)

	if r.realtimeHandler.Enabled() {
		e.GET("/ws/restaurants/:id", r.realtimeHandler.Subscribe)
	}
}

func (r *router) registerPublicRoutes(e *echo.Echo) {
	restaurants := e.Group("/restaurants")
	{
		restaurants.GET("", r.restaurantHandler.SearchRestaurants)
		restaurants.GET("/nearby", r.restaurantHandler.FindNearby)
		restaurants.GET("/:id", r.restaurantHandler.GetRestaurant)
		restaurants.GET("/:id/menus", r.menuHandler.ListMenus)
		restaurants.GET("/:id/menus/:menuId", r.menuHandler.GetMenu)
		restaurants.GET("/:id/menu-categories", r.menuHandler.ListMenuCategories)
	}

	categories := e.Group("/restaurant-categories")
	{
		categories.GET("", r.categoryHandler.ListRoots)
		categories.GET("/hierarchy", r.categoryHandler.Hierarchy)
		categories.GET("/popular", r.categoryHandler.ListPopular)
		categories.GET("/:id", r.categoryHandler.GetCategory)
		categories.GET("/:id/children", r.categoryHandler.ListChildren)
	}
}

// Owner routes require authentication and the "owner" role. Administrators pass as well
// and bypass the ownership check in the usecases.
func (r *router) registerOwnerRoutes(e *echo.Echo) {
	owner := e.Group("/owner")
	owner.Use(r.authMiddleware.Authenticate)
	owner.Use(r.authMiddleware.RequireRole(entity.RoleOwner, entity.RoleAdmin))

	restaurants := owner.Group("/restaurants")
	{
		restaurants.POST("", r.restaurantHandler.CreateRestaurant)
		restaurants.GET("", r.restaurantHandler.ListOwnerRestaurants)
		restaurants.GET("/:id", r.restaurantHandler.GetOwnerRestaurant)
		restaurants.PUT("/:id", r.restaurantHandler.UpdateRestaurant)
		restaurants.PATCH("/:id", r.restaurantHandler.PatchRestaurant)
		restaurants.DELETE("/:id", r.restaurantHandler.DeleteRestaurant)
		restaurants.POST("/:id/restore", r.restaurantHandler.RestoreRestaurant)
		restaurants.PUT("/:id/status", r.restaurantHandler.ChangeStatus)
		restaurants.PUT("/:id/operating-days", r.restaurantHandler.SetOperatingDay)
		restaurants.DELETE("/:id/operating-days/:dayType/:timeType", r.restaurantHandler.RemoveOperatingDay)
		restaurants.PUT("/:id/operating-days/:dayType/break-time", r.restaurantHandler.SetBreakTime)
	}

	menus := restaurants.Group("/:id/menus")
	{
		menus.GET("", r.menuHandler.ListOwnerMenus)
		menus.POST("", r.menuHandler.CreateMenu)
		menus.PUT("/:menuId", r.menuHandler.UpdateMenu)
		menus.PATCH("/:menuId", r.menuHandler.PatchMenu)
		menus.DELETE("/:menuId", r.menuHandler.DeleteMenu)
		menus.POST("/:menuId/restore", r.menuHandler.RestoreMenu)
		menus.PUT("/:menuId/visibility", r.menuHandler.ToggleVisibility)
		menus.POST("/:menuId/option-groups", r.menuHandler.AddOptionGroup)
		menus.POST("/:menuId/option-groups/:groupId/options", r.menuHandler.AddOption)
	}

	menuCategories := restaurants.Group("/:id/menu-categories")
	{
		menuCategories.GET("", r.menuHandler.ListMenuCategories)
		menuCategories.POST("", r.menuHandler.CreateMenuCategory)
		menuCategories.DELETE("/:categoryId", r.menuHandler.DeleteMenuCategory)
	}
}

func (r *router) registerAdminRoutes(e *echo.Echo) {
	admin := e.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))

	restaurants := admin.Group("/restaurants")
	{
		restaurants.GET("", r.restaurantHandler.ListAllRestaurants)
		restaurants.GET("/:id", r.restaurantHandler.GetAdminRestaurant)
		restaurants.PATCH("/:id", r.restaurantHandler.AdminUpdateRestaurant)
		restaurants.POST("/:id/restore", r.restaurantHandler.RestoreRestaurant)
		restaurants.PATCH("/:id/menus/:menuId", r.menuHandler.AdminUpdateMenu)
		restaurants.POST("/:id/menus/:menuId/restore", r.menuHandler.RestoreMenu)
	}

	categories := admin.Group("/restaurant-categories")
	{
		categories.POST("", r.categoryHandler.CreateCategory)
		categories.PATCH("/:id", r.categoryHandler.UpdateCategory)
		categories.DELETE("/:id", r.categoryHandler.DeleteCategory)
		categories.POST("/:id/restore", r.categoryHandler.RestoreCategory)
	}
}

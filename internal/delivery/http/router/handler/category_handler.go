package handler

import (
	"log/slog"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.RestaurantCategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the shared restaurant taxonomy.
type CategoryHandler struct {
	categoryUC usecase.RestaurantCategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest represents the request body for creating a shared category
type CreateCategoryRequest struct {
	Code                      string   `json:"code" validate:"required,max=50"`
	Name                      string   `json:"name" validate:"required,max=50"`
	Description               string   `json:"description" validate:"max=500"`
	IconURL                   string   `json:"icon_url" validate:"omitempty,url"`
	ColorCode                 string   `json:"color_code" validate:"omitempty,hexcolor"`
	ParentID                  *string  `json:"parent_id,omitempty"`
	DisplayOrder              int      `json:"display_order" validate:"min=0"`
	IsPopular                 bool     `json:"is_popular"`
	IsNew                     bool     `json:"is_new"`
	DefaultMinimumOrderAmount *int64   `json:"default_minimum_order_amount,omitempty" validate:"omitempty,min=0"`
	AverageDeliveryTime       *int     `json:"average_delivery_time,omitempty" validate:"omitempty,min=0"`
	PlatformCommissionRate    *float64 `json:"platform_commission_rate,omitempty" validate:"omitempty,min=0,max=100"`
}

// UpdateCategoryRequest changes only the fields that are present
type UpdateCategoryRequest struct {
	Name                      *string  `json:"name,omitempty" validate:"omitempty,max=50"`
	Description               *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	IconURL                   *string  `json:"icon_url,omitempty" validate:"omitempty,url"`
	ColorCode                 *string  `json:"color_code,omitempty" validate:"omitempty,hexcolor"`
	DisplayOrder              *int     `json:"display_order,omitempty" validate:"omitempty,min=0"`
	IsActive                  *bool    `json:"is_active,omitempty"`
	IsPopular                 *bool    `json:"is_popular,omitempty"`
	IsNew                     *bool    `json:"is_new,omitempty"`
	DefaultMinimumOrderAmount *int64   `json:"default_minimum_order_amount,omitempty" validate:"omitempty,min=0"`
	AverageDeliveryTime       *int     `json:"average_delivery_time,omitempty" validate:"omitempty,min=0"`
	PlatformCommissionRate    *float64 `json:"platform_commission_rate,omitempty" validate:"omitempty,min=0,max=100"`
}

// ListRoots handles the top-level category list
func (h *CategoryHandler) ListRoots(c echo.Context) error {
	categories, err := h.categoryUC.ListRoots(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, categories, "Categories retrieved successfully")
}

// Hierarchy handles the full category tree
func (h *CategoryHandler) Hierarchy(c echo.Context) error {
	tree, err := h.categoryUC.Hierarchy(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, tree, "Category hierarchy retrieved successfully")
}

// ListPopular handles the popular category list
func (h *CategoryHandler) ListPopular(c echo.Context) error {
	categories, err := h.categoryUC.ListPopular(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, categories, "Popular categories retrieved successfully")
}

// GetCategory handles the category detail
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryUC.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, category, "Category retrieved successfully")
}

// ListChildren handles the child list of a category
func (h *CategoryHandler) ListChildren(c echo.Context) error {
	categories, err := h.categoryUC.ListChildren(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, categories, "Categories retrieved successfully")
}

// CreateCategory handles the creation of a shared category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req CreateCategoryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), caller, usecase.CreateCategoryInput{
		Code:                      req.Code,
		Name:                      req.Name,
		Description:               req.Description,
		IconURL:                   req.IconURL,
		ColorCode:                 req.ColorCode,
		ParentID:                  req.ParentID,
		DisplayOrder:              req.DisplayOrder,
		IsPopular:                 req.IsPopular,
		IsNew:                     req.IsNew,
		DefaultMinimumOrderAmount: req.DefaultMinimumOrderAmount,
		AverageDeliveryTime:       req.AverageDeliveryTime,
		PlatformCommissionRate:    req.PlatformCommissionRate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, category, "Category created successfully")
}

// UpdateCategory handles the partial update of a shared category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req UpdateCategoryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), caller, c.Param("id"), usecase.UpdateCategoryInput{
		Name:                      req.Name,
		Description:               req.Description,
		IconURL:                   req.IconURL,
		ColorCode:                 req.ColorCode,
		DisplayOrder:              req.DisplayOrder,
		IsActive:                  req.IsActive,
		IsPopular:                 req.IsPopular,
		IsNew:                     req.IsNew,
		DefaultMinimumOrderAmount: req.DefaultMinimumOrderAmount,
		AverageDeliveryTime:       req.AverageDeliveryTime,
		PlatformCommissionRate:    req.PlatformCommissionRate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, category, "Category updated successfully")
}

// DeleteCategory handles the soft delete of a shared category
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), caller, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c, "Category deleted successfully")
}

// RestoreCategory handles the restore of a soft-deleted shared category
func (h *CategoryHandler) RestoreCategory(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	category, err := h.categoryUC.RestoreCategory(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, category, "Category restored successfully")
}

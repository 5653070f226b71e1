package handler

import (
	"log/slog"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves menus, option groups and menu categories of one restaurant.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// OptionRequest is one option of a group
type OptionRequest struct {
	OptionName      string `json:"option_name" validate:"required,max=100"`
	Description     string `json:"description" validate:"max=500"`
	AdditionalPrice int64  `json:"additional_price"`
	DisplayOrder    *int   `json:"display_order,omitempty" validate:"omitempty,min=0"`
	IsDefault       bool   `json:"is_default"`
}

func (r OptionRequest) input() usecase.OptionInput {
	return usecase.OptionInput{
		OptionName:      r.OptionName,
		Description:     r.Description,
		AdditionalPrice: r.AdditionalPrice,
		DisplayOrder:    r.DisplayOrder,
		IsDefault:       r.IsDefault,
	}
}

// OptionGroupRequest is an option group with its options
type OptionGroupRequest struct {
	GroupName    string          `json:"group_name" validate:"required,max=100"`
	Description  string          `json:"description" validate:"max=500"`
	IsRequired   bool            `json:"is_required"`
	MinSelection int             `json:"min_selection"`
	MaxSelection int             `json:"max_selection"`
	Options      []OptionRequest `json:"options" validate:"dive"`
}

func (r OptionGroupRequest) input() usecase.OptionGroupInput {
	options := make([]usecase.OptionInput, 0, len(r.Options))
	for _, option := range r.Options {
		options = append(options, option.input())
	}

	return usecase.OptionGroupInput{
		GroupName:    r.GroupName,
		Description:  r.Description,
		IsRequired:   r.IsRequired,
		MinSelection: r.MinSelection,
		MaxSelection: r.MaxSelection,
		Options:      options,
	}
}

// CreateMenuRequest represents the request body for adding a menu
type CreateMenuRequest struct {
	MenuName          string               `json:"menu_name" validate:"required,max=100"`
	Description       string               `json:"description" validate:"max=1000"`
	Price             *int64               `json:"price"`
	Ingredients       *string              `json:"ingredients,omitempty"`
	Calorie           *int                 `json:"calorie,omitempty" validate:"omitempty,min=0"`
	IsMain            bool                 `json:"is_main"`
	IsPopular         bool                 `json:"is_popular"`
	IsNew             bool                 `json:"is_new"`
	CategoryIDs       []string             `json:"category_ids" validate:"dive,required"`
	PrimaryCategoryID string               `json:"primary_category_id"`
	OptionGroups      []OptionGroupRequest `json:"option_groups" validate:"dive"`
}

// UpdateMenuRequest replaces the editable menu details
type UpdateMenuRequest struct {
	MenuName          string   `json:"menu_name" validate:"required,max=100"`
	Description       string   `json:"description" validate:"max=1000"`
	Price             *int64   `json:"price"`
	Ingredients       *string  `json:"ingredients,omitempty"`
	Calorie           *int     `json:"calorie,omitempty" validate:"omitempty,min=0"`
	IsAvailable       bool     `json:"is_available"`
	IsMain            bool     `json:"is_main"`
	IsPopular         bool     `json:"is_popular"`
	IsNew             bool     `json:"is_new"`
	CategoryIDs       []string `json:"category_ids" validate:"dive,required"`
	PrimaryCategoryID string   `json:"primary_category_id"`
}

// PatchMenuRequest changes only the fields that are present
type PatchMenuRequest struct {
	MenuName          *string  `json:"menu_name,omitempty" validate:"omitempty,max=100"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price             *int64   `json:"price,omitempty"`
	Ingredients       *string  `json:"ingredients,omitempty"`
	Calorie           *int     `json:"calorie,omitempty" validate:"omitempty,min=0"`
	IsAvailable       *bool    `json:"is_available,omitempty"`
	IsMain            *bool    `json:"is_main,omitempty"`
	IsPopular         *bool    `json:"is_popular,omitempty"`
	IsNew             *bool    `json:"is_new,omitempty"`
	CategoryIDs       []string `json:"category_ids,omitempty" validate:"omitempty,dive,required"`
	PrimaryCategoryID *string  `json:"primary_category_id,omitempty"`
}

func (r PatchMenuRequest) input() usecase.PatchMenuInput {
	return usecase.PatchMenuInput{
		MenuName:          r.MenuName,
		Description:       r.Description,
		Price:             r.Price,
		Ingredients:       r.Ingredients,
		Calorie:           r.Calorie,
		IsAvailable:       r.IsAvailable,
		IsMain:            r.IsMain,
		IsPopular:         r.IsPopular,
		IsNew:             r.IsNew,
		CategoryIDs:       r.CategoryIDs,
		PrimaryCategoryID: r.PrimaryCategoryID,
	}
}

// VisibilityRequest hides or shows a menu
type VisibilityRequest struct {
	Hidden *bool `json:"hidden" validate:"required"`
}

// CreateMenuCategoryRequest defines a restaurant-scoped menu category
type CreateMenuCategoryRequest struct {
	Name         string  `json:"name" validate:"required,max=50"`
	Description  string  `json:"description" validate:"max=500"`
	ParentID     *string `json:"parent_id,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
}

// ListMenusQuery narrows the customer menu listing
type ListMenusQuery struct {
	PageQuery

	CategoryID string `query:"category_id"`
	Keyword    string `query:"keyword"`
}

// ListMenus handles the public menu list of a restaurant
func (h *MenuHandler) ListMenus(c echo.Context) error {
	var query ListMenusQuery
	if ok, err := bind(c, &query); !ok {
		return err
	}

	result, err := h.menuUC.ListMenus(c.Request().Context(), c.Param("id"), usecase.ListMenusInput{
		CategoryID: query.CategoryID,
		Keyword:    query.Keyword,
		Page:       query.request(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result, "Menus retrieved successfully")
}

// GetMenu handles the public menu detail
func (h *MenuHandler) GetMenu(c echo.Context) error {
	menu, err := h.menuUC.GetMenu(c.Request().Context(), c.Param("id"), c.Param("menuId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, menu, "Menu retrieved successfully")
}

// ListMenuCategories handles the public menu category tree
func (h *MenuHandler) ListMenuCategories(c echo.Context) error {
	tree, err := h.menuUC.ListMenuCategories(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, tree, "Menu categories retrieved successfully")
}

// ListOwnerMenus handles the owner's menu list including hidden menus
func (h *MenuHandler) ListOwnerMenus(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	menus, err := h.menuUC.ListMenusForOwner(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, menus, "Menus retrieved successfully")
}

// CreateMenu handles adding a menu to a closed restaurant
func (h *MenuHandler) CreateMenu(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req CreateMenuRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	groups := make([]usecase.OptionGroupInput, 0, len(req.OptionGroups))
	for _, group := range req.OptionGroups {
		groups = append(groups, group.input())
	}

	menu, err := h.menuUC.CreateMenu(c.Request().Context(), caller, c.Param("id"), usecase.CreateMenuInput{
		MenuName:          req.MenuName,
		Description:       req.Description,
		Price:             req.Price,
		Ingredients:       req.Ingredients,
		Calorie:           req.Calorie,
		IsMain:            req.IsMain,
		IsPopular:         req.IsPopular,
		IsNew:             req.IsNew,
		CategoryIDs:       req.CategoryIDs,
		PrimaryCategoryID: req.PrimaryCategoryID,
		OptionGroups:      groups,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, menu, "Menu created successfully")
}

// UpdateMenu handles the full update of a menu
func (h *MenuHandler) UpdateMenu(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req UpdateMenuRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	menu, err := h.menuUC.UpdateMenu(c.Request().Context(), caller, c.Param("id"), c.Param("menuId"), usecase.UpdateMenuInput{
		MenuName:          req.MenuName,
		Description:       req.Description,
		Price:             req.Price,
		Ingredients:       req.Ingredients,
		Calorie:           req.Calorie,
		IsAvailable:       req.IsAvailable,
		IsMain:            req.IsMain,
		IsPopular:         req.IsPopular,
		IsNew:             req.IsNew,
		CategoryIDs:       req.CategoryIDs,
		PrimaryCategoryID: req.PrimaryCategoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, menu, "Menu updated successfully")
}

// PatchMenu handles the partial update of a menu
func (h *MenuHandler) PatchMenu(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req PatchMenuRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	menu, err := h.menuUC.PatchMenu(c.Request().Context(), caller, c.Param("id"), c.Param("menuId"), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, menu, "Menu updated successfully")
}

// ToggleVisibility handles hiding or showing a menu
func (h *MenuHandler) ToggleVisibility(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req VisibilityRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	menu, err := h.menuUC.ToggleMenuVisibility(c.Request().Context(), caller, c.Param("id"), c.Param("menuId"), *req.Hidden)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, menu, "Menu visibility changed successfully")
}

// DeleteMenu handles the soft delete of a menu
func (h *MenuHandler) DeleteMenu(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.menuUC.DeleteMenu(c.Request().Context(), caller, c.Param("id"), c.Param("menuId")); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c, "Menu deleted successfully")
}

// RestoreMenu handles the restore of a soft-deleted menu
func (h *MenuHandler) RestoreMenu(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	menu, err := h.menuUC.RestoreMenu(c.Request().Context(), caller, c.Param("id"), c.Param("menuId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, menu, "Menu restored successfully")
}

// AdminUpdateMenu handles the moderation update of a menu
func (h *MenuHandler) AdminUpdateMenu(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req PatchMenuRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	menu, err := h.menuUC.AdminUpdateMenu(c.Request().Context(), caller, c.Param("id"), c.Param("menuId"), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, menu, "Menu updated successfully")
}

// AddOptionGroup handles adding an option group to a menu
func (h *MenuHandler) AddOptionGroup(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req OptionGroupRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	group, err := h.menuUC.AddOptionGroup(c.Request().Context(), caller, c.Param("id"), c.Param("menuId"), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, group, "Option group created successfully")
}

// AddOption handles adding an option to a group
func (h *MenuHandler) AddOption(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req OptionRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	option, err := h.menuUC.AddOption(c.Request().Context(), caller, c.Param("id"), c.Param("menuId"), c.Param("groupId"), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, option, "Option created successfully")
}

// CreateMenuCategory handles adding a menu category
func (h *MenuHandler) CreateMenuCategory(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req CreateMenuCategoryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	category, err := h.menuUC.CreateMenuCategory(c.Request().Context(), caller, c.Param("id"), usecase.CreateMenuCategoryInput{
		Name:         req.Name,
		Description:  req.Description,
		ParentID:     req.ParentID,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, category, "Menu category created successfully")
}

// DeleteMenuCategory handles the soft delete of a menu category
func (h *MenuHandler) DeleteMenuCategory(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.menuUC.DeleteMenuCategory(c.Request().Context(), caller, c.Param("id"), c.Param("categoryId")); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c, "Menu category deleted successfully")
}

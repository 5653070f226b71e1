package handler

import (
	"log/slog"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler serves the restaurant endpoints of customers, owners and administrators.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// AddressRequest is a postal address in a restaurant request.
type AddressRequest struct {
	Province      string `json:"province"`
	City          string `json:"city"`
	District      string `json:"district"`
	DetailAddress string `json:"detail_address"`
}

func (r *AddressRequest) input() usecase.AddressInput {
	if r == nil {
		return usecase.AddressInput{}
	}

	return usecase.AddressInput{
		Province:      r.Province,
		City:          r.City,
		District:      r.District,
		DetailAddress: r.DetailAddress,
	}
}

// AddressPatchRequest changes only the address fields that are present.
type AddressPatchRequest struct {
	Province      *string `json:"province,omitempty"`
	City          *string `json:"city,omitempty"`
	District      *string `json:"district,omitempty"`
	DetailAddress *string `json:"detail_address,omitempty"`
}

// CoordinateRequest is a latitude/longitude pair.
type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CoordinateRequest) input() *usecase.CoordinateInput {
	if r == nil {
		return nil
	}

	return &usecase.CoordinateInput{Latitude: r.Latitude, Longitude: r.Longitude}
}

// OperatingDayRequest is one operating window. Times use "HH:MM".
type OperatingDayRequest struct {
	DayType    string  `json:"day_type" validate:"required"`
	TimeType   string  `json:"time_type" validate:"required"`
	StartTime  *string `json:"start_time,omitempty" validate:"omitempty,hhmm"`
	EndTime    *string `json:"end_time,omitempty" validate:"omitempty,hhmm"`
	IsHoliday  bool    `json:"is_holiday"`
	BreakStart *string `json:"break_start,omitempty" validate:"omitempty,hhmm"`
	BreakEnd   *string `json:"break_end,omitempty" validate:"omitempty,hhmm"`
	Note       string  `json:"note,omitempty" validate:"max=200"`
}

func (r OperatingDayRequest) input() usecase.OperatingDayInput {
	return usecase.OperatingDayInput{
		DayType:    r.DayType,
		TimeType:   r.TimeType,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		IsHoliday:  r.IsHoliday,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
		Note:       r.Note,
	}
}

func operatingDayInputs(reqs []OperatingDayRequest) []usecase.OperatingDayInput {
	if reqs == nil {
		return nil
	}
	inputs := make([]usecase.OperatingDayInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, req.input())
	}

	return inputs
}

// CreateRestaurantRequest represents the request body for registering a restaurant
type CreateRestaurantRequest struct {
	OwnerName         string                `json:"owner_name" validate:"max=100"`
	RestaurantName    string                `json:"restaurant_name" validate:"required,max=100"`
	ContactNumber     string                `json:"contact_number" validate:"max=20"`
	Address           *AddressRequest       `json:"address"`
	Coordinate        *CoordinateRequest    `json:"coordinate"`
	Tags              []string              `json:"tags" validate:"max=20,dive,max=30"`
	CategoryIDs       []string              `json:"category_ids" validate:"required,min=1,dive,required"`
	PrimaryCategoryID string                `json:"primary_category_id"`
	OperatingDays     []OperatingDayRequest `json:"operating_days" validate:"dive"`
}

// UpdateRestaurantRequest replaces the editable restaurant details
type UpdateRestaurantRequest struct {
	RestaurantName    string                `json:"restaurant_name" validate:"required,max=100"`
	ContactNumber     string                `json:"contact_number" validate:"max=20"`
	Address           *AddressRequest       `json:"address"`
	Coordinate        *CoordinateRequest    `json:"coordinate"`
	Tags              []string              `json:"tags" validate:"max=20,dive,max=30"`
	CategoryIDs       []string              `json:"category_ids" validate:"required,min=1,dive,required"`
	PrimaryCategoryID string                `json:"primary_category_id"`
	OperatingDays     []OperatingDayRequest `json:"operating_days" validate:"dive"`
}

// PatchRestaurantRequest changes only the fields that are present
type PatchRestaurantRequest struct {
	RestaurantName    *string              `json:"restaurant_name,omitempty" validate:"omitempty,max=100"`
	ContactNumber     *string              `json:"contact_number,omitempty" validate:"omitempty,max=20"`
	Address           *AddressPatchRequest `json:"address,omitempty"`
	Coordinate        *CoordinateRequest   `json:"coordinate,omitempty"`
	Status            *string              `json:"status,omitempty"`
	Tags              []string             `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=30"`
	CategoryIDs       []string             `json:"category_ids,omitempty" validate:"omitempty,dive,required"`
	PrimaryCategoryID *string              `json:"primary_category_id,omitempty"`
}

// ChangeStatusRequest switches the lifecycle status
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BreakTimeRequest sets the break of an existing operating day
type BreakTimeRequest struct {
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

// AdminUpdateRestaurantRequest is the moderation update of an administrator
type AdminUpdateRestaurantRequest struct {
	RestaurantName *string `json:"restaurant_name,omitempty" validate:"omitempty,max=100"`
	ContactNumber  *string `json:"contact_number,omitempty" validate:"omitempty,max=20"`
	Status         *string `json:"status,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// SearchRestaurantsQuery narrows the customer search
type SearchRestaurantsQuery struct {
	PageQuery

	Keyword    string `query:"keyword"`
	CategoryID string `query:"category_id"`
	Province   string `query:"province"`
	City       string `query:"city"`
	District   string `query:"district"`
}

// SearchRestaurants handles the public restaurant search
func (h *RestaurantHandler) SearchRestaurants(c echo.Context) error {
	var query SearchRestaurantsQuery
	if ok, err := bind(c, &query); !ok {
		return err
	}

	result, err := h.restaurantUC.SearchRestaurants(c.Request().Context(), usecase.SearchRestaurantsInput{
		Keyword:    query.Keyword,
		CategoryID: query.CategoryID,
		Province:   query.Province,
		City:       query.City,
		District:   query.District,
		Page:       query.request(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result, "Restaurants retrieved successfully")
}

// FindNearby handles the public nearby search
func (h *RestaurantHandler) FindNearby(c echo.Context) error {
	var (
		lat, lng, radiusKm float64
		limit              int
	)
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radius_km", &radiusKm).
		Int("limit", &limit).
		BindError(); err != nil {
		return response.ValidationError(c, "lat and lng are required numbers, radius_km and limit must be numeric")
	}
	if radiusKm < 0 || limit < 0 {
		return response.ValidationError(c, "radius_km and limit must not be negative")
	}

	views, err := h.restaurantUC.FindNearby(c.Request().Context(), usecase.NearbyInput{
		Latitude:  &lat,
		Longitude: &lng,
		RadiusKm:  radiusKm,
		Limit:     limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, views, "Nearby restaurants retrieved successfully")
}

// GetRestaurant handles the public restaurant detail
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	view, err := h.restaurantUC.GetRestaurant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Restaurant retrieved successfully")
}

// CreateRestaurant handles restaurant registration by an owner
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req CreateRestaurantRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	view, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), caller, usecase.CreateRestaurantInput{
		OwnerName:         req.OwnerName,
		RestaurantName:    req.RestaurantName,
		ContactNumber:     req.ContactNumber,
		Address:           req.Address.input(),
		Coordinate:        req.Coordinate.input(),
		Tags:              req.Tags,
		CategoryIDs:       req.CategoryIDs,
		PrimaryCategoryID: req.PrimaryCategoryID,
		OperatingDays:     operatingDayInputs(req.OperatingDays),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, view, "Restaurant created successfully")
}

// ListOwnerRestaurants handles the owner's restaurant list
func (h *RestaurantHandler) ListOwnerRestaurants(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var query PageQuery
	if ok, err := bind(c, &query); !ok {
		return err
	}

	result, err := h.restaurantUC.ListOwnerRestaurants(c.Request().Context(), caller, query.request())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result, "Restaurants retrieved successfully")
}

// GetOwnerRestaurant handles the owner's restaurant detail
func (h *RestaurantHandler) GetOwnerRestaurant(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	view, err := h.restaurantUC.GetRestaurantForOwner(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Restaurant retrieved successfully")
}

// UpdateRestaurant handles the full update of a restaurant
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req UpdateRestaurantRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	view, err := h.restaurantUC.UpdateRestaurant(c.Request().Context(), caller, c.Param("id"), usecase.UpdateRestaurantInput{
		RestaurantName:    req.RestaurantName,
		ContactNumber:     req.ContactNumber,
		Address:           req.Address.input(),
		Coordinate:        req.Coordinate.input(),
		Tags:              req.Tags,
		CategoryIDs:       req.CategoryIDs,
		PrimaryCategoryID: req.PrimaryCategoryID,
		OperatingDays:     operatingDayInputs(req.OperatingDays),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Restaurant updated successfully")
}

// PatchRestaurant handles the partial update of a restaurant
func (h *RestaurantHandler) PatchRestaurant(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req PatchRestaurantRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	input := usecase.PatchRestaurantInput{
		RestaurantName:    req.RestaurantName,
		ContactNumber:     req.ContactNumber,
		Coordinate:        req.Coordinate.input(),
		Status:            req.Status,
		Tags:              req.Tags,
		CategoryIDs:       req.CategoryIDs,
		PrimaryCategoryID: req.PrimaryCategoryID,
	}
	if req.Address != nil {
		input.Address = &usecase.AddressPatch{
			Province:      req.Address.Province,
			City:          req.Address.City,
			District:      req.Address.District,
			DetailAddress: req.Address.DetailAddress,
		}
	}

	view, err := h.restaurantUC.PatchRestaurant(c.Request().Context(), caller, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Restaurant updated successfully")
}

// ChangeStatus handles the status switch of a restaurant
func (h *RestaurantHandler) ChangeStatus(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	view, err := h.restaurantUC.ChangeStatus(c.Request().Context(), caller, c.Param("id"), req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Restaurant status changed successfully")
}

// SetOperatingDay handles adding or replacing one operating window
func (h *RestaurantHandler) SetOperatingDay(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req OperatingDayRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	view, err := h.restaurantUC.SetOperatingDay(c.Request().Context(), caller, c.Param("id"), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Operating day saved successfully")
}

// RemoveOperatingDay handles removing one operating window
func (h *RestaurantHandler) RemoveOperatingDay(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	view, err := h.restaurantUC.RemoveOperatingDay(c.Request().Context(), caller, c.Param("id"), c.Param("dayType"), c.Param("timeType"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Operating day removed successfully")
}

// SetBreakTime handles setting the break of an operating day
func (h *RestaurantHandler) SetBreakTime(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req BreakTimeRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	view, err := h.restaurantUC.SetBreakTime(c.Request().Context(), caller, c.Param("id"), c.Param("dayType"), req.StartTime, req.EndTime)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Break time saved successfully")
}

// DeleteRestaurant handles the soft delete of a restaurant
func (h *RestaurantHandler) DeleteRestaurant(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.restaurantUC.DeleteRestaurant(c.Request().Context(), caller, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return noContent(c, "Restaurant deleted successfully")
}

// RestoreRestaurant handles the restore of a soft-deleted restaurant
func (h *RestaurantHandler) RestoreRestaurant(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	view, err := h.restaurantUC.RestoreRestaurant(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Restaurant restored successfully")
}

// ListAllRestaurants handles the administrator list including deleted restaurants
func (h *RestaurantHandler) ListAllRestaurants(c echo.Context) error {
	var query PageQuery
	if ok, err := bind(c, &query); !ok {
		return err
	}

	result, err := h.restaurantUC.ListAllForAdmin(c.Request().Context(), query.request())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result, "Restaurants retrieved successfully")
}

// GetAdminRestaurant handles the administrator detail including deleted restaurants
func (h *RestaurantHandler) GetAdminRestaurant(c echo.Context) error {
	view, err := h.restaurantUC.GetRestaurantForAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Restaurant retrieved successfully")
}

// AdminUpdateRestaurant handles the moderation update of a restaurant
func (h *RestaurantHandler) AdminUpdateRestaurant(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req AdminUpdateRestaurantRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	view, err := h.restaurantUC.AdminUpdateRestaurant(c.Request().Context(), caller, c.Param("id"), usecase.AdminUpdateRestaurantInput{
		RestaurantName: req.RestaurantName,
		ContactNumber:  req.ContactNumber,
		Status:         req.Status,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, view, "Restaurant updated successfully")
}

package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput carries a postal address.
type AddressInput struct {
	Province      string
	City          string
	District      string
	DetailAddress string
}

// AddressPatch carries the address fields to change. Nil fields keep their value.
type AddressPatch struct {
	Province      *string
	City          *string
	District      *string
	DetailAddress *string
}

// CoordinateInput carries a latitude/longitude pair. Either side may be missing on input.
type CoordinateInput struct {
	Latitude  *float64
	Longitude *float64
}

// OperatingDayInput carries one operating window. Times use the "HH:MM" form.
type OperatingDayInput struct {
	DayType    string
	TimeType   string
	StartTime  *string
	EndTime    *string
	IsHoliday  bool
	BreakStart *string
	BreakEnd   *string
	Note       string
}

// CreateRestaurantInput defines the data required to register a restaurant.
type CreateRestaurantInput struct {
	OwnerName         string
	RestaurantName    string
	ContactNumber     string
	Address           AddressInput
	Coordinate        *CoordinateInput
	Tags              []string
	CategoryIDs       []string
	PrimaryCategoryID string
	OperatingDays     []OperatingDayInput
}

// UpdateRestaurantInput replaces the editable restaurant details.
type UpdateRestaurantInput struct {
	RestaurantName    string
	ContactNumber     string
	Address           AddressInput
	Coordinate        *CoordinateInput
	Tags              []string
	CategoryIDs       []string
	PrimaryCategoryID string
	OperatingDays     []OperatingDayInput
}

// PatchRestaurantInput changes only the non-nil fields.
type PatchRestaurantInput struct {
	RestaurantName    *string
	ContactNumber     *string
	Address           *AddressPatch
	Coordinate        *CoordinateInput
	Status            *string
	Tags              []string
	CategoryIDs       []string
	PrimaryCategoryID *string
}

// AdminUpdateRestaurantInput is the moderation update of an administrator.
type AdminUpdateRestaurantInput struct {
	RestaurantName *string
	ContactNumber  *string
	Status         *string
	IsActive       *bool
}

// SearchRestaurantsInput narrows the customer search.
type SearchRestaurantsInput struct {
	Keyword    string
	CategoryID string
	Province   string
	City       string
	District   string
	Page       PageRequest
}

// NearbyInput asks for restaurants around a point.
type NearbyInput struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	Limit     int
}

// --- Output DTOs ---

// RestaurantView is a restaurant with its resolved shared categories.
type RestaurantView struct {
	Restaurant *entity.Restaurant          `json:"restaurant"`
	Categories []*entity.RestaurantCategory `json:"categories"`
	IsOpenNow  bool                        `json:"is_open_now"`
	DistanceKm *float64                    `json:"distance_km,omitempty"`
}

// RestaurantUsecase defines the restaurant operations of customers, owners and administrators.
type RestaurantUsecase interface {
	CreateRestaurant(ctx context.Context, actor Actor, input CreateRestaurantInput) (*RestaurantView, error)
	GetRestaurant(ctx context.Context, restaurantID string) (*RestaurantView, error)
	GetRestaurantForOwner(ctx context.Context, actor Actor, restaurantID string) (*RestaurantView, error)
	GetRestaurantForAdmin(ctx context.Context, restaurantID string) (*RestaurantView, error)
	SearchRestaurants(ctx context.Context, input SearchRestaurantsInput) (*PageResult[*RestaurantView], error)
	ListOwnerRestaurants(ctx context.Context, actor Actor, page PageRequest) (*PageResult[*RestaurantView], error)
	ListAllForAdmin(ctx context.Context, page PageRequest) (*PageResult[*RestaurantView], error)
	FindNearby(ctx context.Context, input NearbyInput) ([]*RestaurantView, error)

	UpdateRestaurant(ctx context.Context, actor Actor, restaurantID string, input UpdateRestaurantInput) (*RestaurantView, error)
	PatchRestaurant(ctx context.Context, actor Actor, restaurantID string, input PatchRestaurantInput) (*RestaurantView, error)
	ChangeStatus(ctx context.Context, actor Actor, restaurantID, status string) (*RestaurantView, error)
	SetOperatingDay(ctx context.Context, actor Actor, restaurantID string, input OperatingDayInput) (*RestaurantView, error)
	RemoveOperatingDay(ctx context.Context, actor Actor, restaurantID, dayType, timeType string) (*RestaurantView, error)
	SetBreakTime(ctx context.Context, actor Actor, restaurantID, dayType, start, end string) (*RestaurantView, error)
	DeleteRestaurant(ctx context.Context, actor Actor, restaurantID string) error
	RestoreRestaurant(ctx context.Context, actor Actor, restaurantID string) (*RestaurantView, error)
	AdminUpdateRestaurant(ctx context.Context, actor Actor, restaurantID string, input AdminUpdateRestaurantInput) (*RestaurantView, error)
}

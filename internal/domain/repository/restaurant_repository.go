// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for restaurant persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// Page is a zero-based page request.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number <= 0 {
		return 0
	}

	return p.Number * p.Size
}

// RestaurantFilter narrows a customer search. Zero values are ignored.
type RestaurantFilter struct {
	Keyword    string
	CategoryID string
	Status     entity.RestaurantStatus
	Province   string
	City       string
	District   string
}

// RestaurantRepository loads and stores the whole restaurant aggregate.
type RestaurantRepository interface {
	// FindByID loads a restaurant that is not deleted.
	FindByID(ctx context.Context, id string) (*entity.Restaurant, error)

	// FindByIDIncludingDeleted loads a restaurant whatever its deleted flag.
	FindByIDIncludingDeleted(ctx context.Context, id string) (*entity.Restaurant, error)

	// Save upserts the aggregate with every child row, soft-deleted ones included.
	Save(ctx context.Context, restaurant *entity.Restaurant) error

	// ExistsByOwnerIDAndName reports whether the owner already has an undeleted restaurant with that name.
	ExistsByOwnerIDAndName(ctx context.Context, ownerID, name string) (bool, error)

	// FindByOwnerID lists the undeleted restaurants of an owner.
	FindByOwnerID(ctx context.Context, ownerID string, page Page) ([]*entity.Restaurant, int64, error)

	// Search lists active, undeleted restaurants matching filter.
	Search(ctx context.Context, filter RestaurantFilter, page Page) ([]*entity.Restaurant, int64, error)

	// FindAllIncludingDeleted lists every restaurant for administrators.
	FindAllIncludingDeleted(ctx context.Context, page Page) ([]*entity.Restaurant, int64, error)

	// FindNearby returns active, undeleted restaurants within radiusKm of center, nearest first.
	FindNearby(ctx context.Context, center entity.GeoCoordinate, radiusKm float64, limit int) ([]*entity.Restaurant, error)
}

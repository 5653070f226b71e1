package usecase

import (
	"context"
)

// OrderedMenu is one line of a completed order.
type OrderedMenu struct {
	MenuID    string   `json:"menu_id"`
	Quantity  int64    `json:"quantity"`
	OptionIDs []string `json:"option_ids,omitempty"`
}

// OrderCompletedEvent is published by the ordering system when an order is completed.
type OrderCompletedEvent struct {
	OrderID      string        `json:"order_id"`
	RestaurantID string        `json:"restaurant_id"`
	Items        []OrderedMenu `json:"items"`
}

// ReviewCreatedEvent is published by the review system. MenuID is empty for a restaurant review.
type ReviewCreatedEvent struct {
	ReviewID     string  `json:"review_id"`
	RestaurantID string  `json:"restaurant_id"`
	MenuID       string  `json:"menu_id,omitempty"`
	Rating       float64 `json:"rating"`
}

// WishlistChangedEvent is published when a customer adds or removes a wishlist entry.
type WishlistChangedEvent struct {
	RestaurantID string `json:"restaurant_id"`
	MenuID       string `json:"menu_id,omitempty"`
	Action       string `json:"action"`
}

// StatsUsecase folds events of other systems into the catalog counters.
type StatsUsecase interface {
	HandleOrderCompleted(ctx context.Context, event OrderCompletedEvent) error
	HandleReviewCreated(ctx context.Context, event ReviewCreatedEvent) error
	HandleWishlistChanged(ctx context.Context, event WishlistChangedEvent) error
}

// Package constants holds values shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderKafka  = "kafka"
	PubSubProviderNoop   = "noop"
)

// Catalog event types published after a successful mutation.
const (
	EventRestaurantCreated       = "restaurant.created"
	EventRestaurantUpdated       = "restaurant.updated"
	EventRestaurantStatusChanged = "restaurant.status_changed"
	EventRestaurantDeleted       = "restaurant.deleted"
	EventRestaurantRestored      = "restaurant.restored"
	EventMenuCreated             = "menu.created"
	EventMenuUpdated             = "menu.updated"
	EventMenuDeleted             = "menu.deleted"
	EventMenuRestored            = "menu.restored"
	EventMenuCategoryChanged     = "menu_category.changed"
	EventCategoryChanged         = "restaurant_category.changed"
)

// Stats event types consumed by the worker.
const (
	StatsOrderCompleted  = "order.completed"
	StatsReviewCreated   = "review.created"
	StatsWishlistChanged = "wishlist.changed"
)

// Wishlist actions.
const (
	WishlistAdded   = "ADDED"
	WishlistRemoved = "REMOVED"
)

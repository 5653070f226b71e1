package service

// Broadcaster fans a payload out to the live subscribers of one restaurant.
type Broadcaster interface {
	Broadcast(restaurantID string, payload []byte)
}

// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	domainerrors "catalog/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean earth radius used by the Haversine distance.
const EarthRadiusKm = 6371.0

// GeoCoordinate is an immutable, validated latitude/longitude pair.
// A missing coordinate is represented by a nil *GeoCoordinate, never by a partial value.
type GeoCoordinate struct {
	Latitude  float64 `json:"latitude"`  // -90 ~ 90
	Longitude float64 `json:"longitude"` // -180 ~ 180
}

// NewGeoCoordinate validates the ranges and builds a coordinate.
func NewGeoCoordinate(latitude, longitude float64) (*GeoCoordinate, error) {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return nil, domainerrors.ErrInvalidLatitudeRange
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return nil, domainerrors.ErrInvalidLongitudeRange
	}

	return &GeoCoordinate{Latitude: latitude, Longitude: longitude}, nil
}

// ParseGeoCoordinate builds a coordinate from optional components. Both are required.
func ParseGeoCoordinate(latitude, longitude *float64) (*GeoCoordinate, error) {
	if latitude == nil || longitude == nil {
		return nil, domainerrors.ErrCoordinateRequired
	}

	return NewGeoCoordinate(*latitude, *longitude)
}

// OptionalGeoCoordinate returns nil when both components are absent and
// otherwise behaves like ParseGeoCoordinate.
func OptionalGeoCoordinate(latitude, longitude *float64) (*GeoCoordinate, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}

	return ParseGeoCoordinate(latitude, longitude)
}

// DistanceTo returns the great-circle distance in kilometers.
func (c *GeoCoordinate) DistanceTo(other *GeoCoordinate) (float64, error) {
	if c == nil || other == nil {
		return 0, domainerrors.ErrInvalidCoordinate
	}

	lat1 := toRadians(c.Latitude)
	lat2 := toRadians(other.Latitude)
	deltaLat := toRadians(other.Latitude - c.Latitude)
	deltaLon := toRadians(other.Longitude - c.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	arc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * arc, nil
}

// IsNearby reports whether other lies within radiusKm. Absent coordinates are never nearby.
func (c *GeoCoordinate) IsNearby(other *GeoCoordinate, radiusKm float64) bool {
	distance, err := c.DistanceTo(other)
	if err != nil {
		return false
	}

	return distance <= radiusKm
}

// GoogleMapsURL returns a Google Maps link, or "" for an absent coordinate.
func (c *GeoCoordinate) GoogleMapsURL() string {
	if c == nil {
		return ""
	}

	return fmt.Sprintf("https://www.google.com/maps?q=%.7f,%.7f", c.Latitude, c.Longitude)
}

// NaverMapURL returns a Naver Map link, or "" for an absent coordinate.
func (c *GeoCoordinate) NaverMapURL() string {
	if c == nil {
		return ""
	}

	return fmt.Sprintf("https://map.naver.com/v5/search/%.7f,%.7f", c.Latitude, c.Longitude)
}

func (c *GeoCoordinate) String() string {
	if c == nil {
		return "좌표 없음"
	}

	return fmt.Sprintf("위도: %.7f, 경도: %.7f", c.Latitude, c.Longitude)
}

// Point converts the coordinate to an orb point (longitude first).
func (c *GeoCoordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// BoundAround returns a bounding box that contains every point within radiusKm.
// It is a coarse pre-filter for indexed queries; callers still check DistanceTo.
// orb measures on a larger sphere, so the radius is scaled to EarthRadiusKm.
func (c *GeoCoordinate) BoundAround(radiusKm float64) orb.Bound {
	return geo.NewBoundAroundPoint(c.Point(), radiusKm*orb.EarthRadius/EarthRadiusKm)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

package entity

import (
	"errors"
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewGeoCoordinate_RangeValidation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   error
	}{
		{name: "seoul", latitude: 37.5665, longitude: 126.9780},
		{name: "north pole boundary", latitude: 90, longitude: 180},
		{name: "south pole boundary", latitude: -90, longitude: -180},
		{name: "latitude above range", latitude: 91, longitude: 0, wantErr: domainerrors.ErrInvalidLatitudeRange},
		{name: "latitude below range", latitude: -91, longitude: 0, wantErr: domainerrors.ErrInvalidLatitudeRange},
		{name: "longitude above range", latitude: 0, longitude: 181, wantErr: domainerrors.ErrInvalidLongitudeRange},
		{name: "longitude below range", latitude: 0, longitude: -181, wantErr: domainerrors.ErrInvalidLongitudeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			coord, err := NewGeoCoordinate(tt.latitude, tt.longitude)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, coord)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latitude, coord.Latitude)
			assert.Equal(t, tt.longitude, coord.Longitude)
		})
	}
}

func TestParseGeoCoordinate_MissingComponent(t *testing.T) {
	_, err := ParseGeoCoordinate(nil, ptr(0.0))
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateRequired)

	_, err = ParseGeoCoordinate(ptr(0.0), nil)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateRequired)

	coord, err := OptionalGeoCoordinate(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, coord)

	_, err = OptionalGeoCoordinate(ptr(37.5), nil)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinateRequired)
}

func TestGeoCoordinate_DistanceSeoulToBusan(t *testing.T) {
	seoul, err := NewGeoCoordinate(37.5665, 126.9780)
	require.NoError(t, err)
	busan, err := NewGeoCoordinate(35.1796, 129.0756)
	require.NoError(t, err)

	distance, err := seoul.DistanceTo(busan)
	require.NoError(t, err)
	assert.Greater(t, distance, 320.0)
	assert.Less(t, distance, 330.0)

	back, err := busan.DistanceTo(seoul)
	require.NoError(t, err)
	assert.InDelta(t, distance, back, 1e-9)
}

func TestGeoCoordinate_AbsentCoordinate(t *testing.T) {
	seoul, err := NewGeoCoordinate(37.5665, 126.9780)
	require.NoError(t, err)

	var missing *GeoCoordinate
	_, err = seoul.DistanceTo(missing)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	_, err = missing.DistanceTo(seoul)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

	assert.False(t, seoul.IsNearby(missing, 1000))
	assert.False(t, missing.IsNearby(seoul, 1000))
	assert.Equal(t, "", missing.GoogleMapsURL())
	assert.Equal(t, "좌표 없음", missing.String())
}

func TestGeoCoordinate_IsNearby(t *testing.T) {
	cityHall, _ := NewGeoCoordinate(37.5665, 126.9780)
	gwanghwamun, _ := NewGeoCoordinate(37.5759, 126.9768)

	assert.True(t, cityHall.IsNearby(gwanghwamun, 2))
	assert.False(t, cityHall.IsNearby(gwanghwamun, 0.5))
}

func TestGeoCoordinate_MapURLs(t *testing.T) {
	coord, _ := NewGeoCoordinate(37.5665, 126.978)

	assert.Equal(t, "https://www.google.com/maps?q=37.5665000,126.9780000", coord.GoogleMapsURL())
	assert.Equal(t, "https://map.naver.com/v5/search/37.5665000,126.9780000", coord.NaverMapURL())
}

func TestGeoCoordinate_BoundAroundContainsRadius(t *testing.T) {
	center, _ := NewGeoCoordinate(37.5665, 126.9780)
	bound := center.BoundAround(5)

	assert.True(t, bound.Contains(center.Point()))

	inside, _ := NewGeoCoordinate(37.5900, 126.9780)
	assert.True(t, center.IsNearby(inside, 5))
	assert.True(t, bound.Contains(inside.Point()))

	outside, _ := NewGeoCoordinate(37.7000, 126.9780)
	assert.False(t, bound.Contains(outside.Point()))
}

func TestGeoCoordinate_BoundAroundKeepsRadiusEdge(t *testing.T) {
	center, _ := NewGeoCoordinate(37.5665, 126.9780)
	edge, _ := NewGeoCoordinate(37.6563, 126.9780)

	require.True(t, center.IsNearby(edge, 10))
	assert.True(t, center.BoundAround(10).Contains(edge.Point()))
}

func TestPostalAddress(t *testing.T) {
	address := PostalAddress{Province: "서울특별시", City: "종로구", District: "광화문동", DetailAddress: "123-4번지 2층"}

	assert.True(t, address.IsValid())
	assert.Equal(t, "서울특별시 종로구 광화문동 123-4번지 2층", address.FullAddress())
	assert.Equal(t, "서울특별시 종로구 광화문동", address.AreaAddress())

	address.DetailAddress = ""
	assert.Equal(t, "서울특별시 종로구 광화문동", address.FullAddress())

	assert.False(t, PostalAddress{Province: "서울특별시", City: " ", District: "광화문동"}.IsValid())
}

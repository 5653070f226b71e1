// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	domainerrors "catalog/internal/domain/errors"
)

// RestaurantStatus is the operating state of a restaurant.
// Any state may move to any other; only the derived predicates below gate behaviour.
type RestaurantStatus string

const (
	// RestaurantStatusOpen accepts orders and freezes the menu.
	RestaurantStatusOpen RestaurantStatus = "OPEN"
	// RestaurantStatusClosed is closed for the day.
	RestaurantStatusClosed RestaurantStatus = "CLOSED"
	// RestaurantStatusTemporarilyClosed is a temporary shutdown.
	RestaurantStatusTemporarilyClosed RestaurantStatus = "TEMPORARILY_CLOSED"
	// RestaurantStatusPreparing is getting ready to open.
	RestaurantStatusPreparing RestaurantStatus = "PREPARING"
)

// String returns the string representation of the RestaurantStatus.
func (s RestaurantStatus) String() string {
	return string(s)
}

// IsValid checks if the RestaurantStatus is a valid value.
func (s RestaurantStatus) IsValid() bool {
	switch s {
	case RestaurantStatusOpen, RestaurantStatusClosed, RestaurantStatusTemporarilyClosed, RestaurantStatusPreparing:
		return true
	default:
		return false
	}
}

// DisplayName returns the Korean label.
func (s RestaurantStatus) DisplayName() string {
	switch s {
	case RestaurantStatusOpen:
		return "영업중"
	case RestaurantStatusClosed:
		return "영업종료"
	case RestaurantStatusTemporarilyClosed:
		return "임시휴업"
	case RestaurantStatusPreparing:
		return "준비중"
	default:
		return string(s)
	}
}

// Description returns the Korean sentence shown to customers.
func (s RestaurantStatus) Description() string {
	switch s {
	case RestaurantStatusOpen:
		return "영업 중입니다"
	case RestaurantStatusClosed:
		return "영업이 종료되었습니다"
	case RestaurantStatusTemporarilyClosed:
		return "임시 휴업 중입니다"
	case RestaurantStatusPreparing:
		return "영업 준비 중입니다"
	default:
		return ""
	}
}

// CanAcceptOrder is true only while open.
func (s RestaurantStatus) CanAcceptOrder() bool {
	return s == RestaurantStatusOpen
}

// CanModifyMenu is true for every state except open.
func (s RestaurantStatus) CanModifyMenu() bool {
	return s != RestaurantStatusOpen
}

// ParseRestaurantStatus converts a raw value into a RestaurantStatus.
func ParseRestaurantStatus(raw string) (RestaurantStatus, error) {
	status := RestaurantStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", domainerrors.ErrInvalidRestaurantStatus.WithDetails(raw)
	}

	return status, nil
}

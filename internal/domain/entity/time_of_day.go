// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	domainerrors "catalog/internal/domain/errors"
)

// TimeOfDay is a wall-clock time without a date, stored as seconds since midnight.
type TimeOfDay int

// ClockTime builds a TimeOfDay from hour and minute. Out-of-range input is rejected.
func ClockTime(hour, minute int) (TimeOfDay, error) {
	return clockTime(hour, minute, 0)
}

// MustClockTime is ClockTime for constant input; it panics on invalid values.
func MustClockTime(hour, minute int) TimeOfDay {
	t, err := ClockTime(hour, minute)
	if err != nil {
		panic(err)
	}

	return t
}

func clockTime(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, domainerrors.ErrInvalidOperatingTime.WithDetails(fmt.Sprintf("%02d:%02d:%02d", hour, minute, second))
	}

	return TimeOfDay(hour*3600 + minute*60 + second), nil
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return TimeOfDayOf(parsed), nil
		}
	}

	return 0, domainerrors.ErrInvalidOperatingTime.WithDetails(raw)
}

// TimeOfDayOf extracts the wall-clock part of t in its own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int {
	return int(t) / 3600
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 3600 / 60
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// MinutesUntil returns the whole minutes from t to a later time on the same day, truncated.
func (t TimeOfDay) MinutesUntil(later TimeOfDay) int {
	return (int(later) - int(t)) / 60
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// DayType is a day of the week.
type DayType string

const (
	DayMonday    DayType = "MON"
	DayTuesday   DayType = "TUE"
	DayWednesday DayType = "WED"
	DayThursday  DayType = "THU"
	DayFriday    DayType = "FRI"
	DaySaturday  DayType = "SAT"
	DaySunday    DayType = "SUN"
)

// DayTypes lists the week starting on Monday.
var DayTypes = []DayType{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday}

// DayTypeOf maps a time.Weekday to its DayType.
func DayTypeOf(weekday time.Weekday) DayType {
	switch weekday {
	case time.Monday:
		return DayMonday
	case time.Tuesday:
		return DayTuesday
	case time.Wednesday:
		return DayWednesday
	case time.Thursday:
		return DayThursday
	case time.Friday:
		return DayFriday
	case time.Saturday:
		return DaySaturday
	default:
		return DaySunday
	}
}

// ParseDayType validates a raw day value.
func ParseDayType(raw string) (DayType, error) {
	day := DayType(raw)
	if day.KoreanName() == "" {
		return "", domainerrors.ErrInvalidOperatingTime.WithDetails("unknown day " + raw)
	}

	return day, nil
}

// KoreanName returns the Korean label, or "" for an unknown day.
func (d DayType) KoreanName() string {
	switch d {
	case DayMonday:
		return "월요일"
	case DayTuesday:
		return "화요일"
	case DayWednesday:
		return "수요일"
	case DayThursday:
		return "목요일"
	case DayFriday:
		return "금요일"
	case DaySaturday:
		return "토요일"
	case DaySunday:
		return "일요일"
	default:
		return ""
	}
}

// IsWeekday is true Monday through Friday.
func (d DayType) IsWeekday() bool {
	return d != DaySaturday && d != DaySunday
}

// IsWeekend is true on Saturday and Sunday.
func (d DayType) IsWeekend() bool {
	return d == DaySaturday || d == DaySunday
}

// OperatingTimeType distinguishes regular hours from holiday hours.
type OperatingTimeType string

const (
	TimeTypeRegular        OperatingTimeType = "REGULAR"
	TimeTypeHoliday        OperatingTimeType = "HOLIDAY"
	TimeTypeSpecialHoliday OperatingTimeType = "SPECIAL_HOLIDAY"
)

// ParseOperatingTimeType validates a raw time type. Empty means regular.
func ParseOperatingTimeType(raw string) (OperatingTimeType, error) {
	if raw == "" {
		return TimeTypeRegular, nil
	}
	timeType := OperatingTimeType(raw)
	if timeType.Description() == "" {
		return "", domainerrors.ErrInvalidOperatingTime.WithDetails("unknown time type " + raw)
	}

	return timeType, nil
}

// Description returns the Korean label, or "" for an unknown type.
func (t OperatingTimeType) Description() string {
	switch t {
	case TimeTypeRegular:
		return "평일/정규"
	case TimeTypeHoliday:
		return "일반 공휴일"
	case TimeTypeSpecialHoliday:
		return "특별 공휴일"
	default:
		return ""
	}
}

// IsRegular reports whether t is the regular schedule.
func (t OperatingTimeType) IsRegular() bool {
	return t == TimeTypeRegular
}

// IsHolidayRelated covers both holiday types.
func (t OperatingTimeType) IsHolidayRelated() bool {
	return t == TimeTypeHoliday || t == TimeTypeSpecialHoliday
}

// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	domainerrors "catalog/internal/domain/errors"
)

// OperatingDayKey identifies an operating window inside one restaurant.
type OperatingDayKey struct {
	DayType  DayType
	TimeType OperatingTimeType
}

// OperatingDay is one operating window of a restaurant.
// Start and end are optional; an end earlier than the start spans midnight.
type OperatingDay struct {
	RestaurantID string            `json:"restaurant_id"`
	DayType      DayType           `json:"day_type"`
	TimeType     OperatingTimeType `json:"time_type"`
	StartTime    *TimeOfDay        `json:"start_time,omitempty"`
	EndTime      *TimeOfDay        `json:"end_time,omitempty"`
	IsHoliday    bool              `json:"is_holiday"`
	BreakStart   *TimeOfDay        `json:"break_start,omitempty"` // inclusive
	BreakEnd     *TimeOfDay        `json:"break_end,omitempty"`   // exclusive
	Note         string            `json:"note,omitempty"`
}

// OperatingDayParams holds the input of NewOperatingDay.
type OperatingDayParams struct {
	DayType    DayType
	TimeType   OperatingTimeType
	StartTime  *TimeOfDay
	EndTime    *TimeOfDay
	IsHoliday  bool
	BreakStart *TimeOfDay
	BreakEnd   *TimeOfDay
	Note       string
}

// NewOperatingDay validates params and builds a window for restaurantID.
// A window or break with only one bound is rejected.
func NewOperatingDay(restaurantID string, params OperatingDayParams) (*OperatingDay, error) {
	if params.DayType.KoreanName() == "" {
		return nil, domainerrors.ErrInvalidOperatingTime.WithDetails("unknown day " + string(params.DayType))
	}
	timeType := params.TimeType
	if timeType == "" {
		timeType = TimeTypeRegular
	}
	if timeType.Description() == "" {
		return nil, domainerrors.ErrInvalidOperatingTime.WithDetails("unknown time type " + string(timeType))
	}
	if (params.StartTime == nil) != (params.EndTime == nil) {
		return nil, domainerrors.ErrInvalidOperatingTime.WithDetails("start and end must be set together")
	}
	if (params.BreakStart == nil) != (params.BreakEnd == nil) {
		return nil, domainerrors.ErrInvalidOperatingTime.WithDetails("break start and end must be set together")
	}

	day := &OperatingDay{
		RestaurantID: restaurantID,
		DayType:      params.DayType,
		TimeType:     timeType,
		StartTime:    params.StartTime,
		EndTime:      params.EndTime,
		IsHoliday:    params.IsHoliday,
		Note:         params.Note,
	}
	if params.BreakStart != nil {
		if err := day.checkBreak(*params.BreakStart, *params.BreakEnd); err != nil {
			return nil, err
		}
		day.BreakStart = params.BreakStart
		day.BreakEnd = params.BreakEnd
	}

	return day, nil
}

// Key returns the identity of the window within its restaurant.
func (d *OperatingDay) Key() OperatingDayKey {
	return OperatingDayKey{DayType: d.DayType, TimeType: d.TimeType}
}

// HasOperatingHours reports whether hours are configured for a working day.
func (d *OperatingDay) HasOperatingHours() bool {
	return !d.IsHoliday && d.StartTime != nil && d.EndTime != nil
}

// IsOvernight reports whether the window crosses midnight.
func (d *OperatingDay) IsOvernight() bool {
	return d.StartTime != nil && d.EndTime != nil && d.EndTime.Before(*d.StartTime)
}

// IsOpenAt evaluates the window at instant t, using t's own location for the weekday and clock.
func (d *OperatingDay) IsOpenAt(t time.Time) bool {
	if DayTypeOf(t.Weekday()) != d.DayType {
		return false
	}
	if d.IsHoliday {
		return false
	}
	if d.StartTime == nil || d.EndTime == nil {
		return false
	}

	return d.IsTimeInOperatingHours(TimeOfDayOf(t))
}

// IsTimeInOperatingHours checks the clock time only. Both window boundaries count as open;
// the break interval is half-open.
func (d *OperatingDay) IsTimeInOperatingHours(t TimeOfDay) bool {
	if d.StartTime == nil || d.EndTime == nil {
		return false
	}
	if d.IsInBreakTime(t) {
		return false
	}

	return d.withinWindow(t)
}

func (d *OperatingDay) withinWindow(t TimeOfDay) bool {
	start, end := *d.StartTime, *d.EndTime
	if end.Before(start) {
		return !t.Before(start) || !t.After(end)
	}

	return !t.Before(start) && !t.After(end)
}

// IsInBreakTime reports whether t falls in [BreakStart, BreakEnd).
func (d *OperatingDay) IsInBreakTime(t TimeOfDay) bool {
	if d.BreakStart == nil || d.BreakEnd == nil {
		return false
	}

	return !t.Before(*d.BreakStart) && t.Before(*d.BreakEnd)
}

// TimeUntilOpen describes how long until the window opens, or nil when it is open at current.
func (d *OperatingDay) TimeUntilOpen(current TimeOfDay) *string {
	var msg string
	switch {
	case d.IsHoliday:
		msg = "휴무"
	case d.StartTime == nil || d.EndTime == nil:
		msg = "운영 시간 미정"
	case d.IsInBreakTime(current):
		msg = fmt.Sprintf("브레이크 타임 (%d분 후 재오픈)", current.MinutesUntil(*d.BreakEnd))
	case d.IsTimeInOperatingHours(current):
		return nil
	case current.Before(*d.StartTime):
		msg = fmt.Sprintf("%d분 후 오픈", current.MinutesUntil(*d.StartTime))
	default:
		msg = "영업 종료"
	}

	return &msg
}

// OperatingHoursDisplay renders the hours such as "10:00 ~ 22:00 (브레이크타임: 15:00 ~ 17:00)".
func (d *OperatingDay) OperatingHoursDisplay() string {
	if d.IsHoliday {
		return "휴무"
	}
	if d.StartTime == nil || d.EndTime == nil {
		return "운영 시간 미정"
	}

	hours := fmt.Sprintf("%s ~ %s", d.StartTime, d.EndTime)
	if d.BreakStart != nil && d.BreakEnd != nil {
		hours += fmt.Sprintf(" (브레이크타임: %s ~ %s)", d.BreakStart, d.BreakEnd)
	}

	return hours
}

// FullDisplay prefixes the hours with the day and time type.
func (d *OperatingDay) FullDisplay() string {
	return fmt.Sprintf("[%s/%s] %s", d.DayType.KoreanName(), d.TimeType.Description(), d.OperatingHoursDisplay())
}

// withBreak returns a copy of the window carrying the given break.
func (d *OperatingDay) withBreak(start, end TimeOfDay) (*OperatingDay, error) {
	if err := d.checkBreak(start, end); err != nil {
		return nil, err
	}
	updated := *d
	updated.BreakStart = &start
	updated.BreakEnd = &end

	return &updated, nil
}

func (d *OperatingDay) checkBreak(start, end TimeOfDay) error {
	if !start.Before(end) {
		return domainerrors.ErrInvalidOperatingTime.WithDetails("break start must be before break end")
	}
	if d.StartTime != nil && d.EndTime != nil && (!d.withinWindow(start) || !d.withinWindow(end)) {
		return domainerrors.ErrBreakTimeOutOfOperatingTime
	}

	return nil
}

package helpers

import (
	"time"

	apierrors "dashboard/internal/errors"
)

// DateLayout is the layout of the start and end query parameters.
const DateLayout = time.DateOnly

// DateRange is an inclusive date selection. From is the start of the first
// day and To the last instant of the last day, both in the reporting timezone.
type DateRange struct {
	StartDate time.Time
	EndDate   time.Time
	From      time.Time
	To        time.Time
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// ParseDateRange parses the start and end dates. An empty end defaults to
// today and an empty start to defaultDays before today.
func ParseDateRange(start, end string, defaultDays int, now time.Time, loc *time.Location) (DateRange, error) {
	today := StartOfDay(now, loc)

	endDate := today
	if end != "" {
		parsed, err := time.ParseInLocation(DateLayout, end, loc)
		if err != nil {
			return DateRange{}, apierrors.ErrValidation.Wrap(err)
		}
		endDate = parsed
	}

	startDate := today.AddDate(0, 0, -defaultDays)
	if start != "" {
		parsed, err := time.ParseInLocation(DateLayout, start, loc)
		if err != nil {
			return DateRange{}, apierrors.ErrValidation.Wrap(err)
		}
		startDate = parsed
	}

	if startDate.After(endDate) {
		return DateRange{}, apierrors.ErrDateRange
	}

	return DateRange{
		StartDate: startDate,
		EndDate:   endDate,
		From:      startDate,
		To:        endDate.AddDate(0, 0, 1).Add(-time.Microsecond),
	}, nil
}

package nutrition

import (
	"FitnessPro-Backend/domain"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is the inclusive instant window a log query is scoped to.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ResolveDateRange turns the raw date query parameters into a concrete
// window. A single date selects that calendar day, an explicit start/end
// pair is taken as-is without boundary normalization, and no parameters
// default to today. Supplying only one of startDate/endDate is rejected
// instead of silently falling back to today.
func ResolveDateRange(date, startDate, endDate string, now time.Time) (DateRange, error) {
	if date != "" {
		day, err := time.ParseInLocation(dateLayout, date, now.Location())
		if err != nil {
			return DateRange{}, domain.ErrInvalidDate
		}
		return dayBounds(day), nil
	}

	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return DateRange{}, domain.ErrIncompleteDateRange
		}

		from, err := parseInstant(startDate, now.Location())
		if err != nil {
			return DateRange{}, domain.ErrInvalidDate
		}
		to, err := parseInstant(endDate, now.Location())
		if err != nil {
			return DateRange{}, domain.ErrInvalidDate
		}
		return DateRange{From: from, To: to}, nil
	}

	return dayBounds(now), nil
}

// parseInstant accepts either a full RFC3339 instant or a plain date.
func parseInstant(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dateLayout, value, loc)
}

func dayBounds(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return DateRange{
		From: start,
		To:   start.Add(24*time.Hour - time.Nanosecond),
	}
}

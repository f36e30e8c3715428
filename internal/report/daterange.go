package report

import (
	"fmt"
	"time"
)

// dateLayout is the GA4 Data API date format.
const dateLayout = "2006-01-02"

// DateRange is an inclusive start/end date pair in YYYY-MM-DD form.
type DateRange struct {
	Start string
	End   string
}

// ResolveRange turns --days/--start/--end into an explicit inclusive
// range. An explicit start wins outright regardless of days. An absent
// end defaults to now's calendar date. Without an explicit start the
// range covers exactly days calendar days ending on the end date.
func ResolveRange(days int, start, end string, now time.Time) (DateRange, error) {
	endDate := now
	if end != "" {
		var err error
		endDate, err = time.Parse(dateLayout, end)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: bad end date %q: expected YYYY-MM-DD", ErrInvalidRange, end)
		}
	}

	if start != "" {
		startDate, err := time.Parse(dateLayout, start)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: bad start date %q: expected YYYY-MM-DD", ErrInvalidRange, start)
		}
		if endDate.Before(startDate) {
			return DateRange{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, endDate.Format(dateLayout), start)
		}
		return DateRange{Start: startDate.Format(dateLayout), End: endDate.Format(dateLayout)}, nil
	}

	if days <= 0 {
		return DateRange{}, fmt.Errorf("%w: days must be a positive integer (got %d)", ErrInvalidRange, days)
	}

	startDate := endDate.AddDate(0, 0, -(days - 1))
	return DateRange{Start: startDate.Format(dateLayout), End: endDate.Format(dateLayout)}, nil
}

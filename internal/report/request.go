package report

import (
	"errors"
	"fmt"
)

// Query holds the parameters of one GA4 Data API call. It is built once
// per invocation and consumed exactly once by the client adapter.
type Query struct {
	PropertyID string
	Metrics    []string
	Dimensions []string
	DateRange  DateRange
	Limit      int64
	OrderBy    Ordering

	// Realtime queries carry no date range.
	Realtime bool
}

// Build constructs a Query from a resolved spec. Pure transformation: no
// network access, no provider-side validation. The provider's row-limit
// ceiling is deliberately not checked here; values above it surface as a
// provider error.
func Build(spec Spec, propertyID string, dr DateRange, limit int64) (Query, error) {
	if err := ValidatePropertyID(propertyID); err != nil {
		return Query{}, err
	}
	if limit < 0 {
		return Query{}, fmt.Errorf("limit must be a positive integer (got %d)", limit)
	}
	if limit == 0 {
		limit = spec.DefaultLimit
	}

	order := spec.OrderBy
	if order.Metric == "" && order.Dimension == "" && len(spec.Metrics) > 0 {
		order = Ordering{Metric: spec.Metrics[0], Desc: true}
	}

	q := Query{
		PropertyID: propertyID,
		Metrics:    spec.Metrics,
		Dimensions: spec.Dimensions,
		Limit:      limit,
		OrderBy:    order,
		Realtime:   spec.Kind == KindRealtime,
	}
	if spec.HasDateRange {
		q.DateRange = dr
	}
	return q, nil
}

// ValidatePropertyID checks that the id is a non-empty numeric string.
// GA4 property ids are plain digit strings like "123456789".
func ValidatePropertyID(id string) error {
	if id == "" {
		return errors.New("property id is empty")
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return fmt.Errorf("property id %q is not numeric", id)
		}
	}
	return nil
}

package report

import (
	"fmt"
	"strings"
)

// Kind identifies one of the known reports. The set is closed: every
// Kind except KindCustom resolves to a fixed metric/dimension pair.
type Kind string

const (
	KindProperties Kind = "properties"
	KindOverview   Kind = "overview"
	KindPages      Kind = "pages"
	KindSources    Kind = "sources"
	KindCountries  Kind = "countries"
	KindDevices    Kind = "devices"
	KindDaily      Kind = "daily"
	KindRealtime   Kind = "realtime"
	KindCustom     Kind = "custom"
)

// Kinds lists every report kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindProperties,
		KindOverview,
		KindPages,
		KindSources,
		KindCountries,
		KindDevices,
		KindDaily,
		KindRealtime,
		KindCustom,
	}
}

// ParseKind converts a report name to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindProperties, KindOverview, KindPages, KindSources,
		KindCountries, KindDevices, KindDaily, KindRealtime, KindCustom:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReport, s)
}

// Ordering describes how result rows are sorted. Exactly one of Metric
// or Dimension is set; the zero value means no explicit default and the
// request builder falls back to descending by the first metric.
type Ordering struct {
	Metric    string
	Dimension string
	Desc      bool
}

// Spec is the immutable description of one report: which metrics and
// dimensions it queries and how results are sorted and capped.
type Spec struct {
	Kind         Kind
	Metrics      []string
	Dimensions   []string
	OrderBy      Ordering
	DefaultLimit int64

	// Realtime reports have no date dimension.
	HasDateRange bool
}

// SpecFor returns the fixed Spec for a catalog report. KindCustom has no
// fixed form and must be built with CustomSpec; KindProperties is an
// account listing with no query shape. Both return ErrUnknownReport when
// requested here.
func SpecFor(kind Kind) (Spec, error) {
	switch kind {
	case KindOverview:
		return Spec{
			Kind: KindOverview,
			Metrics: []string{
				"totalUsers", "newUsers", "sessions", "screenPageViews",
				"averageSessionDuration", "engagementRate", "bounceRate",
			},
			DefaultLimit: 1,
			HasDateRange: true,
		}, nil
	case KindPages:
		return Spec{
			Kind:         KindPages,
			Metrics:      []string{"screenPageViews", "totalUsers", "averageSessionDuration"},
			Dimensions:   []string{"pagePath", "pageTitle"},
			OrderBy:      Ordering{Metric: "screenPageViews", Desc: true},
			DefaultLimit: 10,
			HasDateRange: true,
		}, nil
	case KindSources:
		return Spec{
			Kind:         KindSources,
			Metrics:      []string{"sessions", "totalUsers", "engagementRate", "conversions"},
			Dimensions:   []string{"sessionSource", "sessionMedium"},
			OrderBy:      Ordering{Metric: "sessions", Desc: true},
			DefaultLimit: 10,
			HasDateRange: true,
		}, nil
	case KindCountries:
		return Spec{
			Kind:         KindCountries,
			Metrics:      []string{"sessions", "totalUsers", "engagementRate"},
			Dimensions:   []string{"country"},
			OrderBy:      Ordering{Metric: "sessions", Desc: true},
			DefaultLimit: 10,
			HasDateRange: true,
		}, nil
	case KindDevices:
		return Spec{
			Kind:         KindDevices,
			Metrics:      []string{"sessions", "totalUsers", "engagementRate"},
			Dimensions:   []string{"deviceCategory"},
			OrderBy:      Ordering{Metric: "sessions", Desc: true},
			DefaultLimit: 10,
			HasDateRange: true,
		}, nil
	case KindDaily:
		return Spec{
			Kind:         KindDaily,
			Metrics:      []string{"totalUsers", "sessions", "screenPageViews"},
			Dimensions:   []string{"date"},
			OrderBy:      Ordering{Dimension: "date"},
			DefaultLimit: 30,
			HasDateRange: true,
		}, nil
	case KindRealtime:
		return Spec{
			Kind:         KindRealtime,
			Metrics:      []string{"activeUsers"},
			Dimensions:   []string{"unifiedScreenName"},
			DefaultLimit: 10,
		}, nil
	}
	return Spec{}, fmt.Errorf("%w: %q has no fixed spec", ErrUnknownReport, kind)
}

// CustomSpec builds the spec for a caller-defined query. metrics is a
// required comma-separated identifier list; dimensions may be empty.
func CustomSpec(metrics, dimensions string) (Spec, error) {
	ms := splitIdentifiers(metrics)
	if len(ms) == 0 {
		return Spec{}, fmt.Errorf("custom report requires at least one metric (comma-separated)")
	}
	return Spec{
		Kind:         KindCustom,
		Metrics:      ms,
		Dimensions:   splitIdentifiers(dimensions),
		DefaultLimit: 10,
		HasDateRange: true,
	}, nil
}

// splitIdentifiers splits a comma-separated list, trimming whitespace
// and dropping empty entries while preserving order.
func splitIdentifiers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}

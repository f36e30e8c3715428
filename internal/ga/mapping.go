package ga

import (
	"strconv"
	"strings"

	"google.golang.org/api/analyticsdata/v1beta"

	"github.com/analyticsops/ga4ctl/internal/report"
)

func metricList(names []string) []*analyticsdata.Metric {
	out := make([]*analyticsdata.Metric, len(names))
	for i, name := range names {
		out[i] = &analyticsdata.Metric{Name: name}
	}
	return out
}

func dimensionList(names []string) []*analyticsdata.Dimension {
	out := make([]*analyticsdata.Dimension, len(names))
	for i, name := range names {
		out[i] = &analyticsdata.Dimension{Name: name}
	}
	return out
}

func orderBys(o report.Ordering) []*analyticsdata.OrderBy {
	switch {
	case o.Metric != "":
		return []*analyticsdata.OrderBy{{
			Metric: &analyticsdata.MetricOrderBy{MetricName: o.Metric},
			Desc:   o.Desc,
		}}
	case o.Dimension != "":
		return []*analyticsdata.OrderBy{{
			Dimension: &analyticsdata.DimensionOrderBy{DimensionName: o.Dimension},
			Desc:      o.Desc,
		}}
	}
	return nil
}

// tableFromHeaders builds an empty table whose columns are the dimension
// headers followed by the metric headers, in response order.
func tableFromHeaders(dims []*analyticsdata.DimensionHeader, metrics []*analyticsdata.MetricHeader) *report.Table {
	columns := make([]string, 0, len(dims)+len(metrics))
	for _, h := range dims {
		columns = append(columns, h.Name)
	}
	for _, h := range metrics {
		columns = append(columns, h.Name)
	}
	return &report.Table{Columns: columns}
}

// rowValues converts one response row. Dimension values stay strings;
// metric values are typed from the metric header so downstream JSON
// keeps numbers numeric.
func rowValues(dims []*analyticsdata.DimensionValue, metrics []*analyticsdata.MetricValue, headers []*analyticsdata.MetricHeader) []any {
	row := make([]any, 0, len(dims)+len(metrics))
	for _, dv := range dims {
		row = append(row, dv.Value)
	}
	for i, mv := range metrics {
		metricType := ""
		if i < len(headers) {
			metricType = headers[i].Type
		}
		row = append(row, metricValue(mv.Value, metricType))
	}
	return row
}

// metricValue parses a metric string according to its declared type,
// falling back to a best-effort numeric parse for unknown types and to
// the raw string when the value is not numeric at all.
func metricValue(raw, metricType string) any {
	switch metricType {
	case "TYPE_INTEGER":
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	case "TYPE_FLOAT", "TYPE_SECONDS", "TYPE_MILLISECONDS", "TYPE_MINUTES",
		"TYPE_HOURS", "TYPE_STANDARD", "TYPE_CURRENCY":
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	default:
		if !strings.Contains(raw, ".") {
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return n
			}
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return raw
}

// resourceID extracts the trailing id from a resource name like
// "properties/123456789" or "accounts/1234".
func resourceID(name string) string {
	if name == "" {
		return ""
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

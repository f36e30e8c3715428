// Package query wires the report catalog, date range resolution, and
// request building into one pipeline shared by the CLI and MCP front
// ends. All local validation happens before any network call.
package query

import (
	"context"
	"time"

	"github.com/analyticsops/ga4ctl/internal/config"
	"github.com/analyticsops/ga4ctl/internal/ga"
	"github.com/analyticsops/ga4ctl/internal/report"
)

// Client is the slice of the GA4 adapter the pipeline needs. Satisfied
// by *ga.Client; tests substitute a fake.
type Client interface {
	RunReport(ctx context.Context, q report.Query) (*report.Table, error)
	RunRealtime(ctx context.Context, q report.Query) (*report.Table, error)
	ListProperties(ctx context.Context) (*report.Table, error)
}

// Options are the logical parameters of one report invocation. Zero
// values mean "use the configured default".
type Options struct {
	Report     string
	PropertyID string
	Days       int
	Start      string
	End        string
	Limit      int64

	// Custom report only.
	Metrics    string
	Dimensions string
}

// Service runs report queries against one configuration.
type Service struct {
	cfg       *config.Config
	newClient func(ctx context.Context, credentialsPath string) (Client, error)
	now       func() time.Time
}

// New creates a query service backed by the real GA4 client.
func New(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
		newClient: func(ctx context.Context, credentialsPath string) (Client, error) {
			return ga.NewClient(ctx, credentialsPath)
		},
		now: time.Now,
	}
}

// Run resolves inputs, builds the request, and executes exactly one
// external call. Validation errors surface before the client is even
// constructed; provider errors pass through unchanged.
func (s *Service) Run(ctx context.Context, opts Options) (*report.Table, error) {
	kind, err := report.ParseKind(opts.Report)
	if err != nil {
		return nil, err
	}

	if err := s.cfg.CheckCredentials(); err != nil {
		return nil, err
	}

	if kind == report.KindProperties {
		client, err := s.newClient(ctx, s.cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		return client.ListProperties(ctx)
	}

	propertyID, err := s.cfg.ResolveProperty(opts.PropertyID)
	if err != nil {
		return nil, err
	}

	var spec report.Spec
	if kind == report.KindCustom {
		spec, err = report.CustomSpec(opts.Metrics, opts.Dimensions)
	} else {
		spec, err = report.SpecFor(kind)
	}
	if err != nil {
		return nil, err
	}

	days := opts.Days
	if days == 0 {
		days = s.cfg.Defaults.Days
	}

	var dr report.DateRange
	if spec.HasDateRange {
		dr, err = report.ResolveRange(days, opts.Start, opts.End, s.now())
		if err != nil {
			return nil, err
		}
	}

	limit := opts.Limit
	if limit == 0 && kind == report.KindDaily {
		// One row per day so the trend is never truncated by the
		// generic row limit.
		limit = spanDays(dr)
	}

	q, err := report.Build(spec, propertyID, dr, limit)
	if err != nil {
		return nil, err
	}

	client, err := s.newClient(ctx, s.cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	if q.Realtime {
		return client.RunRealtime(ctx, q)
	}
	return client.RunReport(ctx, q)
}

// spanDays counts the inclusive calendar days in a resolved range.
func spanDays(dr report.DateRange) int64 {
	start, err1 := time.Parse("2006-01-02", dr.Start)
	end, err2 := time.Parse("2006-01-02", dr.End)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int64(end.Sub(start).Hours()/24) + 1
}

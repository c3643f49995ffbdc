package console

import (
	"context"
	"errors"
	"time"

	"github.com/feastly/admin-console/internal/badge"
)

var errMissingDataSource = errors.New("console: data source not configured")

// Options configures the console Service. Every collaborator is provided via
// interface so the live backend and the demo fixture store are interchangeable.
type Options struct {
	Data      DataSource
	Validator DraftValidator
	Telemetry Telemetry
	Badges    *badge.Registry
	Now       func() time.Time
}

// Service orchestrates the admin pages on top of a data source.
type Service struct {
	opts Options
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	if opts.Badges == nil {
		opts.Badges = badge.NewRegistry()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{opts: opts}
}

// Badges exposes the status style registry for rendering layers.
func (s *Service) Badges() *badge.Registry {
	return s.opts.Badges
}

func (s *Service) data() (DataSource, error) {
	if s.opts.Data == nil {
		return nil, errMissingDataSource
	}
	return s.opts.Data, nil
}

func (s *Service) record(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

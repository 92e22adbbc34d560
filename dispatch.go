package limit

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dispatcher runs invocations against a single configured Provider.
type Dispatcher struct {
	provider Provider
	logger   *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger for invocation transitions. The default
// discards everything.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

// NewDispatcher creates a Dispatcher that submits to provider.
func NewDispatcher(provider Provider, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		provider: provider,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Run validates in and submits it exactly once. Either the provider's result
// is returned or the first error encountered; there are no partial results.
func (d *Dispatcher) Run(ctx context.Context, in Input) (Result, error) {
	inv := NewInvocation(in)
	if err := inv.Validate(); err != nil {
		d.logger.Debug("validation failed", "state", inv.State(), "error", err)
		return Result{}, err
	}
	p := inv.Params()
	d.logger.Debug("validated",
		"dimensions", p.Dim(),
		"obstacles", len(p.Obstacles),
		"search_radius", p.Search.Radius,
		"sample_points", p.Search.SamplePoints,
	)

	start := time.Now()
	res, err := inv.Submit(ctx, d.provider)
	if err != nil {
		d.logger.Debug("submission failed", "state", inv.State(), "elapsed", time.Since(start), "error", err)
		return Result{}, err
	}
	d.logger.Debug("submission succeeded",
		"state", inv.State(),
		"elapsed", time.Since(start),
		"format", res.Format,
		"bytes", len(res.Data),
	)
	return res, nil
}

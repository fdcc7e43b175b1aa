package cmp

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cmpref/internal/consent/models"
	"cmpref/internal/sentinel"
)

// DemoPresenter pretends to show CMP dialogs. Dismissal is emulated with a
// simulated external update, either immediately or after a delay.
type DemoPresenter struct {
	store  *Store
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	pending map[*time.Timer]struct{}
	closed  bool
}

// PresenterOption configures the DemoPresenter.
type PresenterOption func(*DemoPresenter)

// WithDismissDelay defers the simulated dismissal. Zero dismisses synchronously.
func WithDismissDelay(d time.Duration) PresenterOption {
	return func(p *DemoPresenter) {
		if d > 0 {
			p.delay = d
		}
	}
}

// WithPresenterLogger sets a logger for presentation events.
func WithPresenterLogger(logger *slog.Logger) PresenterOption {
	return func(p *DemoPresenter) {
		p.logger = logger
	}
}

// NewDemoPresenter returns a presenter bound to store.
func NewDemoPresenter(store *Store, opts ...PresenterOption) *DemoPresenter {
	p := &DemoPresenter{
		store:   store,
		pending: make(map[*time.Timer]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Present shows the requested dialog variant. The anchor is opaque host
// context and is only logged.
func (p *DemoPresenter) Present(ctx context.Context, dialogType models.DialogType, anchor any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return sentinel.ErrClosed
	}
	if p.logger != nil {
		p.logger.InfoContext(ctx, "presenting consent dialog",
			"dialog_type", dialogType,
			"anchor", anchor,
			"dismiss_delay_ms", p.delay.Milliseconds(),
		)
	}
	if p.delay == 0 {
		p.mu.Unlock()
		p.store.SimulateExternalUpdate()
		return nil
	}
	var timer *time.Timer
	timer = time.AfterFunc(p.delay, func() {
		p.mu.Lock()
		delete(p.pending, timer)
		p.mu.Unlock()
		p.store.SimulateExternalUpdate()
	})
	p.pending[timer] = struct{}{}
	p.mu.Unlock()
	return nil
}

// Close cancels dismissals that have not fired yet.
func (p *DemoPresenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	for t := range p.pending {
		t.Stop()
	}
	clear(p.pending)
}

// Package notify provides consent delegates that forward change
// notifications to logs, the audit trail and Kafka.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cmpref/internal/audit"
	"cmpref/internal/consent/adapter"
	"cmpref/internal/consent/models"
)

// Consents reads the current consent snapshot. *adapter.Adapter satisfies it.
type Consents interface {
	Consents(ctx context.Context) models.Snapshot
}

// Fanout delivers each notification to every registered delegate in
// registration order.
type Fanout struct {
	mu        sync.RWMutex
	delegates []adapter.Delegate
}

// NewFanout returns a fanout over the given delegates. Nil entries are skipped.
func NewFanout(delegates ...adapter.Delegate) *Fanout {
	f := &Fanout{}
	for _, d := range delegates {
		f.Add(d)
	}
	return f
}

// Add appends a delegate.
func (f *Fanout) Add(d adapter.Delegate) {
	if d == nil {
		return
	}
	f.mu.Lock()
	f.delegates = append(f.delegates, d)
	f.mu.Unlock()
}

// Len returns the number of delegates.
func (f *Fanout) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.delegates)
}

func (f *Fanout) OnConsentChange(key models.Key) {
	f.mu.RLock()
	delegates := append([]adapter.Delegate(nil), f.delegates...)
	f.mu.RUnlock()
	for _, d := range delegates {
		d.OnConsentChange(key)
	}
}

// LogDelegate writes every change to a structured logger.
type LogDelegate struct {
	logger   *slog.Logger
	consents Consents
}

func NewLogDelegate(logger *slog.Logger, consents Consents) *LogDelegate {
	return &LogDelegate{logger: logger, consents: consents}
}

func (d *LogDelegate) OnConsentChange(key models.Key) {
	ctx := context.Background()
	d.logger.InfoContext(ctx, "consent changed",
		"key", key,
		"value", d.consents.Consents(ctx)[key],
	)
}

// AuditDelegate records every change in the audit trail.
type AuditDelegate struct {
	publisher *audit.Publisher
	consents  Consents
	logger    *slog.Logger
}

func NewAuditDelegate(publisher *audit.Publisher, consents Consents, logger *slog.Logger) *AuditDelegate {
	return &AuditDelegate{publisher: publisher, consents: consents, logger: logger}
}

func (d *AuditDelegate) OnConsentChange(key models.Key) {
	ctx := context.Background()
	event := audit.Event{
		Timestamp: time.Now().UTC(),
		Module:    adapter.ModuleID,
		Action:    models.AuditActionConsentChanged,
		Key:       string(key),
		Value:     string(d.consents.Consents(ctx)[key]),
		Succeeded: true,
	}
	if err := d.publisher.Emit(ctx, event); err != nil && d.logger != nil {
		d.logger.WarnContext(ctx, "failed to record consent change", "key", key, "error", err)
	}
}

var (
	_ adapter.Delegate = (*Fanout)(nil)
	_ adapter.Delegate = (*LogDelegate)(nil)
	_ adapter.Delegate = (*AuditDelegate)(nil)
	_ Consents         = (*adapter.Adapter)(nil)
)

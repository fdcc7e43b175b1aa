// Package adapter implements the consent adapter contract on top of the
// reference CMP. It is a worked example for integrators: real adapters wrap
// their own CMP SDK the same way.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"cmpref/internal/audit"
	"cmpref/internal/consent/cmp"
	"cmpref/internal/consent/iab"
	"cmpref/internal/consent/metrics"
	"cmpref/internal/consent/models"
	"cmpref/internal/platform/tracer"
	dErrors "cmpref/pkg/domain-errors"
)

// Module identity reported to the host platform.
const (
	ModuleID      = "reference"
	ModuleVersion = "1.1.0.0.0"
)

const (
	opGrant  = "grant"
	opDeny   = "deny"
	opReset  = "reset"
	opDialog = "dialog"
)

// Adapter translates the reference CMP into the consent adapter contract.
// It never caches consent values; every read goes to the backend.
type Adapter struct {
	backend   Backend
	presenter DialogPresenter
	iab       iab.Source
	partners  models.PartnerMap
	cfg       Config

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
	auditor *audit.Publisher

	delegateMu sync.RWMutex
	delegate   *DelegateHandle

	lifecycleMu  sync.Mutex
	subscription *cmp.Subscription
	initialized  bool
	closed       bool
	stopWatch    context.CancelFunc
	watchers     sync.WaitGroup

	extraMappings   []models.PartnerMapping
	partnerOverride *models.PartnerMap
}

// Option configures the Adapter.
type Option func(*Adapter)

// WithLogger sets the logger instance for the adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// WithMetrics sets the metrics instance for the adapter.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Adapter) {
		a.metrics = m
	}
}

// WithTracer sets the tracer used for adapter spans.
func WithTracer(t tracer.Tracer) Option {
	return func(a *Adapter) {
		if t != nil {
			a.tracer = t
		}
	}
}

// WithAuditor records every mutation and dialog request.
func WithAuditor(p *audit.Publisher) Option {
	return func(a *Adapter) {
		a.auditor = p
	}
}

// WithIABSource layers IAB strings from src under the boolean signals.
func WithIABSource(src iab.Source) Option {
	return func(a *Adapter) {
		a.iab = src
	}
}

// WithPartnerMap replaces the built-in partner table.
func WithPartnerMap(m models.PartnerMap) Option {
	return func(a *Adapter) {
		a.partnerOverride = &m
	}
}

// WithPartnerMappings adds entries to the partner table. Repeated source ids
// are a configuration error: the last entry wins and a warning is logged.
func WithPartnerMappings(entries ...models.PartnerMapping) Option {
	return func(a *Adapter) {
		a.extraMappings = append(a.extraMappings, entries...)
	}
}

// New builds an adapter around backend and subscribes to its changes.
// presenter may be nil, in which case dialogs are reported as unsupported.
func New(backend Backend, presenter DialogPresenter, cfg Config, opts ...Option) *Adapter {
	a := &Adapter{
		backend:   backend,
		presenter: presenter,
		cfg:       cfg,
		tracer:    tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if !a.cfg.DefaultDialogType.IsValid() {
		a.cfg.DefaultDialogType = models.DialogConcise
	}

	base := models.DefaultPartnerMap()
	if a.partnerOverride != nil {
		base = *a.partnerOverride
	}
	partners, duplicates := base.With(append(cfg.partnerMappings(), a.extraMappings...)...)
	a.partners = partners
	if len(duplicates) > 0 && a.logger != nil {
		a.logger.Warn("partner id map has duplicate source ids, last mapping wins",
			"partner_ids", duplicates,
		)
	}

	a.subscription = backend.Subscribe(storeObserver{adapter: a})
	return a
}

// NewFromCredentials builds an adapter from the opaque credentials map a host
// platform hands to modules. Unknown keys are ignored.
func NewFromCredentials(backend Backend, presenter DialogPresenter, credentials map[string]any, opts ...Option) (*Adapter, error) {
	cfg, err := ParseCredentials(credentials)
	if err != nil {
		return nil, err
	}
	return New(backend, presenter, cfg, opts...), nil
}

// ModuleID returns the module identifier.
func (a *Adapter) ModuleID() string { return ModuleID }

// ModuleVersion returns the module version.
func (a *Adapter) ModuleVersion() string { return ModuleVersion }

// Identity returns the module identifier and version.
func (a *Adapter) Identity() (id, version string) {
	return ModuleID, ModuleVersion
}

// Initialize prepares the CMP and starts following IAB string changes.
// Calling it again after success is a no-op.
func (a *Adapter) Initialize(ctx context.Context) (err error) {
	ctx, span := a.tracer.Start(ctx, tracer.SpanConsentInit, tracer.String(tracer.AttrModuleID, ModuleID))
	defer func() { span.End(err) }()

	a.lifecycleMu.Lock()
	defer a.lifecycleMu.Unlock()
	if a.closed {
		return dErrors.New(dErrors.CodeUnavailable, "adapter closed")
	}
	if a.initialized {
		return nil
	}
	if err := a.backend.Initialize(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "initialize cmp")
	}
	if a.iab != nil {
		watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		a.stopWatch = cancel
		a.watchers.Add(1)
		go a.watchIAB(watchCtx)
	}
	a.initialized = true
	if a.logger != nil {
		a.logger.InfoContext(ctx, "consent adapter initialized",
			"module_id", ModuleID,
			"module_version", ModuleVersion,
			"iab_source", a.iab != nil,
		)
	}
	return nil
}

func (a *Adapter) watchIAB(ctx context.Context) {
	defer a.watchers.Done()
	err := a.iab.Watch(ctx, func(key models.Key) {
		a.notify(key, kindIAB)
	})
	if err != nil && a.logger != nil {
		a.logger.Error("iab watcher stopped", "error", err)
	}
}

// Close stops the IAB watcher and detaches from the backend. Operations after
// Close report CodeUnavailable.
func (a *Adapter) Close() {
	a.lifecycleMu.Lock()
	if a.closed {
		a.lifecycleMu.Unlock()
		return
	}
	a.closed = true
	stop := a.stopWatch
	sub := a.subscription
	a.lifecycleMu.Unlock()

	if stop != nil {
		stop()
	}
	a.watchers.Wait()
	sub.Cancel()
	a.ClearDelegate()
}

func (a *Adapter) isClosed() bool {
	a.lifecycleMu.Lock()
	defer a.lifecycleMu.Unlock()
	return a.closed
}

// ShouldCollectConsent reports whether the CMP still needs a decision from the user.
func (a *Adapter) ShouldCollectConsent() bool {
	return a.backend.ShouldCollectConsent()
}

// Consents builds the externally visible snapshot. Layers are applied in
// order (IAB strings, standard booleans, partner booleans) and later layers
// win on key collisions. An unreadable IAB source drops only the IAB layer.
func (a *Adapter) Consents(ctx context.Context) models.Snapshot {
	ctx, span := a.tracer.Start(ctx, tracer.SpanConsentSnapshot, tracer.String(tracer.AttrModuleID, ModuleID))
	defer span.End(nil)

	snapshot := make(models.Snapshot)
	if a.iab != nil {
		strs, err := a.iab.Strings(ctx)
		if err != nil {
			a.incrementIABReadFailures()
			span.AddEvent(tracer.EventIABReadFailed)
			if a.logger != nil {
				a.logger.WarnContext(ctx, "failed to read iab strings", "error", err)
			}
		}
		for key, value := range strs {
			snapshot[key] = models.Value(value)
		}
	}

	state := a.backend.Snapshot()
	for _, key := range models.StandardKeys {
		granted, _ := state.Standard(key)
		snapshot[key] = models.ValueOf(granted)
	}
	for _, id := range slices.Sorted(maps.Keys(state.Partners)) {
		snapshot[a.partners.Translate(id)] = models.ValueOf(state.Partners[id])
	}

	span.SetAttributes(tracer.Int64(tracer.AttrSnapshotKeys, int64(len(snapshot))))
	a.observeSnapshotKeys(len(snapshot))
	return snapshot
}

// GrantConsent tells the CMP the user granted consent. Use it only when the
// publisher shows its own consent UI; otherwise prefer ShowConsentDialog.
func (a *Adapter) GrantConsent(ctx context.Context, source models.Source, completion Completion) error {
	return a.mutate(ctx, opGrant, tracer.SpanConsentGrant, source, models.AuditActionConsentGranted, completion, func() error {
		g, ok := a.backend.(Granter)
		if !ok {
			return dErrors.New(dErrors.CodeUnsupported, "cmp does not support granting consent")
		}
		g.GrantAll()
		return nil
	})
}

// DenyConsent tells the CMP the user denied consent.
func (a *Adapter) DenyConsent(ctx context.Context, source models.Source, completion Completion) error {
	return a.mutate(ctx, opDeny, tracer.SpanConsentDeny, source, models.AuditActionConsentDenied, completion, func() error {
		d, ok := a.backend.(Denier)
		if !ok {
			return dErrors.New(dErrors.CodeUnsupported, "cmp does not support denying consent")
		}
		d.DenyAll()
		return nil
	})
}

// ResetConsent asks the CMP to forget the recorded decision.
func (a *Adapter) ResetConsent(ctx context.Context, completion Completion) error {
	return a.mutate(ctx, opReset, tracer.SpanConsentReset, "", models.AuditActionConsentReset, completion, func() error {
		r, ok := a.backend.(Resetter)
		if !ok {
			return dErrors.New(dErrors.CodeUnsupported, "cmp does not support reset")
		}
		r.Reset()
		return nil
	})
}

// ShowConsentDialog asks the CMP to present a dialog. Unknown dialog types
// fall back to the configured default. Completion reports only that the
// dialog was presented; the user's decision arrives as change notifications.
func (a *Adapter) ShowConsentDialog(ctx context.Context, dialogType models.DialogType, anchor any, completion Completion) (err error) {
	start := time.Now()
	if !dialogType.IsValid() {
		dialogType = a.cfg.DefaultDialogType
	}
	ctx, span := a.tracer.Start(ctx, tracer.SpanConsentDialog,
		tracer.String(tracer.AttrModuleID, ModuleID),
		tracer.String(tracer.AttrDialogType, string(dialogType)),
	)
	defer func() {
		a.finish(ctx, opDialog, start, err, completion)
		a.incrementDialogPresented(dialogType, err)
		a.emitAudit(ctx, audit.Event{
			Action:    models.AuditActionDialogPresented,
			Value:     string(dialogType),
			Succeeded: err == nil,
		})
		span.SetAttributes(tracer.Bool(tracer.AttrSucceeded, err == nil))
		span.End(err)
	}()

	if err := a.precheck(ctx); err != nil {
		return err
	}
	if a.presenter == nil {
		return dErrors.New(dErrors.CodeUnsupported, "cmp does not present dialogs")
	}
	if err := a.presenter.Present(ctx, dialogType, anchor); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, fmt.Sprintf("present %s dialog", dialogType))
	}
	return nil
}

func (a *Adapter) mutate(ctx context.Context, op, spanName string, source models.Source, action string, completion Completion, apply func() error) (err error) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, spanName,
		tracer.String(tracer.AttrModuleID, ModuleID),
		tracer.String(tracer.AttrSource, string(source)),
	)
	defer func() {
		a.finish(ctx, op, start, err, completion)
		a.emitAudit(ctx, audit.Event{
			Action:    action,
			Source:    string(source),
			Succeeded: err == nil,
		})
		span.SetAttributes(tracer.Bool(tracer.AttrSucceeded, err == nil))
		span.End(err)
	}()

	if op != opReset && !source.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("invalid consent source: %q", source))
	}
	if err := a.precheck(ctx); err != nil {
		return err
	}
	return apply()
}

func (a *Adapter) precheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "operation aborted: context cancelled")
	}
	if a.isClosed() {
		return dErrors.New(dErrors.CodeUnavailable, "adapter closed")
	}
	return nil
}

func (a *Adapter) finish(ctx context.Context, op string, start time.Time, err error, completion Completion) {
	outcome := "success"
	if err != nil {
		outcome = string(dErrors.CodeOf(err))
		if a.logger != nil {
			a.logger.WarnContext(ctx, "consent operation failed",
				"operation", op,
				"code", outcome,
				"error", err,
			)
		}
	}
	if a.metrics != nil {
		a.metrics.IncrementOperation(op, outcome)
		a.metrics.ObserveOperationLatency(op, time.Since(start).Seconds())
	}
	if completion != nil {
		completion(err == nil)
	}
}

func (a *Adapter) emitAudit(ctx context.Context, event audit.Event) {
	if a.auditor == nil {
		return
	}
	event.Module = ModuleID
	if err := a.auditor.Emit(ctx, event); err != nil && a.logger != nil {
		a.logger.WarnContext(ctx, "failed to emit audit event", "action", event.Action, "error", err)
	}
}

// incrementNotificationSent counts a delivered notification if metrics are enabled
func (a *Adapter) incrementNotificationSent(kind string) {
	if a.metrics != nil {
		a.metrics.IncrementNotificationSent(kind)
	}
}

// incrementNotificationDropped counts a dropped notification if metrics are enabled
func (a *Adapter) incrementNotificationDropped(reason string) {
	if a.metrics != nil {
		a.metrics.IncrementNotificationDropped(reason)
	}
}

func (a *Adapter) incrementDialogPresented(dialogType models.DialogType, err error) {
	if a.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = string(dErrors.CodeOf(err))
	}
	a.metrics.IncrementDialogPresented(string(dialogType), outcome)
}

func (a *Adapter) incrementIABReadFailures() {
	if a.metrics != nil {
		a.metrics.IncrementIABReadFailures()
	}
}

func (a *Adapter) observeSnapshotKeys(n int) {
	if a.metrics != nil {
		a.metrics.ObserveSnapshotKeys(float64(n))
	}
}

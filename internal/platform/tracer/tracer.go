// Package tracer provides a small tracing abstraction for the consent adapter.
//
// Adapter code starts spans through the Tracer interface and never touches the
// OpenTelemetry API directly.
//
// Implementations:
//   - NoopTracer: for tests
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
// Spans track the execution of a single operation and can record errors and events.
type Span interface {
	// End completes the span, recording any error that occurred.
	// If err is non-nil, the span is marked as failed.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	// Attributes provide context for debugging and analysis.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	// Events mark significant points during span execution.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans for distributed tracing.
// Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	// The returned context contains the new span and should be passed to child operations.
	// The span must be ended by calling Span.End().
	//
	// Example:
	//   ctx, span := tracer.Start(ctx, tracer.SpanConsentGrant,
	//       tracer.String(tracer.AttrSource, "user"),
	//   )
	//   defer span.End(nil)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float64 attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Strings creates a string slice attribute.
func Strings(key string, values []string) Attribute {
	return Attribute{Key: key, Value: values}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the consent adapter.
const (
	SpanConsentSnapshot = "consent.snapshot"
	SpanConsentGrant    = "consent.grant"
	SpanConsentDeny     = "consent.deny"
	SpanConsentReset    = "consent.reset"
	SpanConsentDialog   = "consent.dialog"
	SpanConsentInit     = "consent.initialize"
)

// Attribute keys used by the consent adapter.
const (
	AttrModuleID     = "module.id"
	AttrSource       = "consent.source"
	AttrDialogType   = "consent.dialog_type"
	AttrSnapshotKeys = "consent.snapshot_keys"
	AttrSucceeded    = "consent.succeeded"
	AttrIABAvailable = "consent.iab_available"
)

// Event names used by the consent adapter.
const (
	EventIABReadFailed = "iab.read_failed"
)

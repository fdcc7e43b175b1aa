package tracer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"cmpref/internal/platform/tracer"
)

func TestNoopTracer_Start(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanConsentGrant, tracer.String(tracer.AttrSource, "user"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Bool(tracer.AttrSucceeded, true))
	span.AddEvent(tracer.EventIABReadFailed, tracer.Int64("count", 1))
	span.End(errors.New("ignored"))
}

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tr := tracer.NewOTel(tracer.WithOTelTracer(provider.Tracer("test")))

	t.Run("attributes and events are converted", func(t *testing.T) {
		_, span := tr.Start(context.Background(), tracer.SpanConsentSnapshot,
			tracer.String(tracer.AttrModuleID, "reference"),
			tracer.Int64(tracer.AttrSnapshotKeys, 6),
		)
		span.SetAttributes(tracer.Strings("keys", []string{"ccpa_opt_in"}))
		span.AddEvent(tracer.EventIABReadFailed)
		span.End(nil)

		ended := recorder.Ended()
		require.NotEmpty(t, ended)
		got := ended[len(ended)-1]
		assert.Equal(t, tracer.SpanConsentSnapshot, got.Name())
		assert.Contains(t, got.Attributes(), attribute.String(tracer.AttrModuleID, "reference"))
		assert.Contains(t, got.Attributes(), attribute.Int64(tracer.AttrSnapshotKeys, 6))
		assert.Contains(t, got.Attributes(), attribute.StringSlice("keys", []string{"ccpa_opt_in"}))
		require.Len(t, got.Events(), 1)
		assert.Equal(t, tracer.EventIABReadFailed, got.Events()[0].Name)
	})

	t.Run("error marks the span as failed", func(t *testing.T) {
		_, span := tr.Start(context.Background(), tracer.SpanConsentReset)
		span.End(errors.New("backend unavailable"))

		ended := recorder.Ended()
		got := ended[len(ended)-1]
		assert.Equal(t, codes.Error, got.Status().Code)
		assert.Equal(t, "backend unavailable", got.Status().Description)
	})
}

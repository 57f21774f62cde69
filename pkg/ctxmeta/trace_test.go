package ctxmeta_test

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Gunvolt24/sqs_consumer/pkg/ctxmeta"
)

func TestTraceAndSpanIDs_FromActiveSpan(t *testing.T) {
	// Локальный TracerProvider — без глобальной настройки.
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "sqs.process_message")
	defer span.End()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	if !ok {
		t.Fatalf("TraceIDFromContext must return ok=true for an active span")
	}
	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	if !ok {
		t.Fatalf("SpanIDFromContext must return ok=true for an active span")
	}

	if got, want := traceID, span.SpanContext().TraceID().String(); got != want {
		t.Fatalf("traceID=%s, want %s", got, want)
	}
	if got, want := spanID, span.SpanContext().SpanID().String(); got != want {
		t.Fatalf("spanID=%s, want %s", got, want)
	}
}

func TestTraceAndSpanIDs_NoSpan(t *testing.T) {
	// nil-контекст тоже допустим
	for _, ctx := range []context.Context{context.Background(), nil} {
		if id, ok := ctxmeta.TraceIDFromContext(ctx); ok || id != "" {
			t.Fatalf("TraceIDFromContext => %q,%v; want \"\", false", id, ok)
		}
		if id, ok := ctxmeta.SpanIDFromContext(ctx); ok || id != "" {
			t.Fatalf("SpanIDFromContext => %q,%v; want \"\", false", id, ok)
		}
	}
}

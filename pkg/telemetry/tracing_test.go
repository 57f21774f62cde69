package telemetry_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/sqs_consumer/pkg/telemetry"
)

func TestTracer_NoopByDefault(t *testing.T) {
	_, span := telemetry.Tracer().Start(context.Background(), "noop")
	defer span.End()

	// Без SetupTracing глобальный провайдер не семплирует.
	if span.SpanContext().IsSampled() {
		t.Fatalf("span must not be sampled without a configured provider")
	}
}

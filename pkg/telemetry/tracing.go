package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName — имя трейсера для спанов цикла чтения очереди.
const InstrumentationName = "github.com/Gunvolt24/sqs_consumer"

// Tracer возвращает трейсер глобального провайдера.
// Без SetupTracing провайдер no-op, спаны ничего не стоят.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// Config — параметры экспорта трейсов.
type Config struct {
	ServiceName string
	Endpoint    string  // host:port OTLP/HTTP коллектора
	SampleRatio float64 // доля семплируемых корневых спанов, [0..1]
}

func (c Config) normalized() Config {
	if c.ServiceName == "" {
		c.ServiceName = "sqs-consumer"
	}
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	c.SampleRatio = max(0, min(c.SampleRatio, 1))
	return c
}

// SetupTracing настраивает OTLP/HTTP экспорт, семплинг и глобальные пропагаторы.
// Возвращает функцию корректного завершения провайдера.
func SetupTracing(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	cfg = cfg.normalized()

	// Экспортёр OTLP/HTTP без TLS.
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			attribute.String("messaging.system", "aws_sqs"),
		)),
	)

	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{},
		),
	)

	return traceProvider.Shutdown, nil
}

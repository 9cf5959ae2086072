package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Setup(ctx, "", nil)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}

	_, span := Tracer("test").Start(ctx, "noop")
	if span.SpanContext().IsValid() {
		t.Error("disabled tracing should produce invalid span contexts")
	}
	span.End()
}

func TestTracerRecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	_, span := Tracer("world").Start(context.Background(), "dungeon.generate")
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if ended[0].Name() != "dungeon.generate" {
		t.Errorf("span name = %q", ended[0].Name())
	}
	if got := ended[0].InstrumentationScope().Name; got != "dungeoncrawl/world" {
		t.Errorf("tracer name = %q", got)
	}
}

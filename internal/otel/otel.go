package otel

import (
	"context"
	"sync"

	"github.com/hanpama/tstypes/internal/eventbus"
	"github.com/hanpama/tstypes/internal/events"
	"github.com/hanpama/tstypes/internal/runid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const tracerName = "tstypes"

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := newSubscriber(tp.Tracer(tracerName))
	unsubscribe := sub.register()

	return func(ctx context.Context) error {
		unsubscribe()
		return tp.Shutdown(ctx)
	}, nil
}

// subscriber turns generate events into one span per run with an event
// per composed selection.
type subscriber struct {
	tracer trace.Tracer
	spans  sync.Map // run id -> trace.Span
}

func newSubscriber(tracer trace.Tracer) *subscriber {
	return &subscriber{tracer: tracer}
}

func (s *subscriber) register() (unsubscribe func()) {
	unsubs := []func(){
		eventbus.Subscribe(s.onStart),
		eventbus.Subscribe(s.onSelection),
		eventbus.Subscribe(s.onFinish),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func (s *subscriber) onStart(ctx context.Context, e events.GenerateStart) {
	rid, _ := runid.FromContext(ctx)
	_, span := s.tracer.Start(ctx, "tstypes.generate")
	span.SetAttributes(
		attribute.String("tstypes.run_id", rid),
		attribute.Int("tstypes.schema_count", len(e.Schemas)),
		attribute.Int("tstypes.document_count", len(e.Documents)),
		attribute.Int64("tstypes.config_hash", int64(e.ConfigHash)),
	)
	s.spans.Store(rid, span)
}

func (s *subscriber) onSelection(ctx context.Context, e events.SelectionComposed) {
	rid, _ := runid.FromContext(ctx)
	v, ok := s.spans.Load(rid)
	if !ok {
		return
	}
	v.(trace.Span).AddEvent("selection.composed", trace.WithAttributes(
		attribute.String("tstypes.definition", e.Definition),
		attribute.String("tstypes.path", e.Path),
		attribute.String("tstypes.type", e.Type),
	))
}

func (s *subscriber) onFinish(ctx context.Context, e events.GenerateFinish) {
	rid, _ := runid.FromContext(ctx)
	v, ok := s.spans.LoadAndDelete(rid)
	if !ok {
		return
	}
	span := v.(trace.Span)
	span.SetAttributes(
		attribute.Int("tstypes.type_count", e.Types),
		attribute.Int("tstypes.operation_count", e.Operations),
		attribute.Int64("tstypes.duration_ms", e.Duration.Milliseconds()),
	)
	if e.Err != nil {
		span.RecordError(e.Err)
		span.SetStatus(codes.Error, e.Err.Error())
	}
	span.End()
}

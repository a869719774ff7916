package config

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/shelfwise/circulation/circulation/shell"
	"github.com/shelfwise/circulation/eventstore/oteladapters"
	"github.com/shelfwise/circulation/eventstore/postgresengine"
)

const (
	serviceName          = "circulation"
	instrumentationScope = "github.com/shelfwise/circulation"
	metricExportInterval = 5 * time.Second
	shutdownTimeout      = 5 * time.Second
)

// Observability holds the OpenTelemetry providers, or nothing when OTel is disabled.
// Its zap logger is always present.
type Observability struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
	LoggerProvider *sdklog.LoggerProvider
	Resource       *resource.Resource
	logger         *zap.Logger
}

// NewObservability sets up OTLP gRPC exporters for traces, metrics and logs and registers the providers globally.
func NewObservability(ctx context.Context, cfg OTelConfig, logger *zap.Logger, version string) (*Observability, error) {
	obs := &Observability{logger: logger}

	if !cfg.Enabled {
		return obs, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(version),
		),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(cfg.TraceEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	metricExporter, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(cfg.MetricEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		_ = traceExporter.Shutdown(ctx)
		return nil, err
	}

	logExporter, err := otlploggrpc.New(
		ctx,
		otlploggrpc.WithEndpoint(cfg.LogEndpoint),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		_ = traceExporter.Shutdown(ctx)
		_ = metricExporter.Shutdown(ctx)
		return nil, err
	}

	obs.Resource = res
	obs.TracerProvider = trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)
	obs.MeterProvider = metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter, metric.WithInterval(metricExportInterval))),
		metric.WithResource(res),
	)
	obs.LoggerProvider = sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	otel.SetTracerProvider(obs.TracerProvider)
	otel.SetMeterProvider(obs.MeterProvider)
	global.SetLoggerProvider(obs.LoggerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return obs, nil
}

func (o *Observability) Enabled() bool {
	return o.TracerProvider != nil
}

// Observer is handed to the observable command and query wrappers.
func (o *Observability) Observer() shell.Observer {
	observer := shell.Observer{Logger: shell.NewZapLogger(o.logger)}

	if o.Enabled() {
		observer.Metrics = oteladapters.NewMetricsCollector(o.MeterProvider.Meter(instrumentationScope))
		observer.Tracing = oteladapters.NewTracingCollector(o.TracerProvider.Tracer(instrumentationScope))
		observer.ContextualLogger = oteladapters.NewSlogBridgeLoggerWithProvider(instrumentationScope, o.LoggerProvider)
	}

	return observer
}

// EventStoreOptions instruments the postgres engine the same way as the handlers.
func (o *Observability) EventStoreOptions() []postgresengine.Option {
	observer := o.Observer()
	options := []postgresengine.Option{postgresengine.WithLogger(observer.Logger)}

	if o.Enabled() {
		options = append(options,
			postgresengine.WithMetrics(observer.Metrics),
			postgresengine.WithTracing(observer.Tracing),
			postgresengine.WithContextualLogger(observer.ContextualLogger),
		)
	}

	return options
}

// Shutdown flushes pending telemetry.
func (o *Observability) Shutdown() error {
	if !o.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		o.TracerProvider.Shutdown(ctx),
		o.MeterProvider.Shutdown(ctx),
		o.LoggerProvider.Shutdown(ctx),
	)
}

// Package oteladapters implements the observability interfaces of eventstore with OpenTelemetry:
// spans via trace.Tracer, instruments via metric.Meter, and trace-correlated logs via the
// otelslog bridge or the otel log API.
package oteladapters

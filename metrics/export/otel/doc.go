// Package otel provides OpenTelemetry metric exporter bindings for authsrv
// operation counters.
//
// [NewExporter] registers an Int64ObservableCounter per counter. A single
// callback reads [authsrv.Service.MetricsSnapshot] on each collection cycle,
// so exporting adds no cost to the request path.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider. Callers supply the Meter.
//   - Mutate service state.
package otel

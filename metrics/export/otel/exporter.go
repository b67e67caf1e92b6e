package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"authsrv"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil metrics source")
)

type metricsSource interface {
	MetricsSnapshot() authsrv.MetricsSnapshot
}

type counterDef struct {
	id   authsrv.MetricID
	name string
	help string
}

var counterDefs = []counterDef{
	{authsrv.MetricRegisterSuccess, "authsrv_register_success_total", "Accounts created."},
	{authsrv.MetricRegisterDuplicate, "authsrv_register_duplicate_total", "Registrations rejected because the account already existed."},
	{authsrv.MetricLoginSuccess, "authsrv_login_success_total", "Authentications that issued a token."},
	{authsrv.MetricLoginFailure, "authsrv_login_failure_total", "Authentications rejected as invalid credentials."},
	{authsrv.MetricExternalUnresolved, "authsrv_external_unresolved_total", "External flows rejected by the identity provider."},
	{authsrv.MetricTokenIssued, "authsrv_token_issued_total", "Session tokens written to the store."},
	{authsrv.MetricTokenInspected, "authsrv_token_inspected_total", "Inspect calls that found a live token."},
}

type observedCounter struct {
	id         authsrv.MetricID
	instrument metric.Int64ObservableCounter
}

// Exporter observes the service counters through a registered OTel callback.
type Exporter struct {
	source       metricsSource
	registration metric.Registration
	counters     []observedCounter
}

// NewExporter registers observable counters on meter for every service
// metric, backed by source's snapshots.
func NewExporter(meter metric.Meter, source metricsSource) (*Exporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	exporter := &Exporter{
		source:   source,
		counters: make([]observedCounter, 0, len(counterDefs)),
	}

	observables := make([]metric.Observable, 0, len(counterDefs))
	for _, def := range counterDefs {
		ins, err := meter.Int64ObservableCounter(def.name, metric.WithDescription(def.help))
		if err != nil {
			return nil, fmt.Errorf("create observable counter %s: %w", def.name, err)
		}
		exporter.counters = append(exporter.counters, observedCounter{id: def.id, instrument: ins})
		observables = append(observables, ins)
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		snapshot := exporter.source.MetricsSnapshot()
		for _, c := range exporter.counters {
			observer.ObserveInt64(c.instrument, int64(snapshot.Counters[c.id]))
		}
		return nil
	}, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	exporter.registration = registration
	return exporter, nil
}

// Close unregisters the collection callback.
func (e *Exporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}

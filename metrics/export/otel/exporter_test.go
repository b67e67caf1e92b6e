package otel

import (
	"context"
	"sync"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"authsrv"
)

type fakeSource struct {
	mu       sync.RWMutex
	snapshot authsrv.MetricsSnapshot
}

func (f *fakeSource) MetricsSnapshot() authsrv.MetricsSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := authsrv.MetricsSnapshot{
		Counters: make(map[authsrv.MetricID]uint64, len(f.snapshot.Counters)),
	}
	for k, v := range f.snapshot.Counters {
		out.Counters[k] = v
	}
	return out
}

func newTestMeter(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return reader, provider
}

func TestExporterRegistersAndCollects(t *testing.T) {
	reader, provider := newTestMeter(t)
	meter := provider.Meter("authsrv-test")

	src := &fakeSource{
		snapshot: authsrv.MetricsSnapshot{
			Counters: map[authsrv.MetricID]uint64{
				authsrv.MetricLoginSuccess: 3,
			},
		},
	}

	exp, err := NewExporter(meter, src)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	defer func() {
		if err := exp.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(rm.ScopeMetrics) == 0 {
		t.Fatal("expected collected metrics, got none")
	}
}

func TestExporterRejectsNilSource(t *testing.T) {
	_, provider := newTestMeter(t)
	meter := provider.Meter("authsrv-test")

	if _, err := NewExporter(meter, nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestExporterConcurrentCollectNoPanic(t *testing.T) {
	reader, provider := newTestMeter(t)
	meter := provider.Meter("authsrv-test")

	src := &fakeSource{
		snapshot: authsrv.MetricsSnapshot{
			Counters: map[authsrv.MetricID]uint64{
				authsrv.MetricLoginSuccess: 1,
			},
		},
	}

	exp, err := NewExporter(meter, src)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	defer func() {
		if err := exp.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v uint64) {
			defer wg.Done()
			src.mu.Lock()
			src.snapshot.Counters[authsrv.MetricLoginSuccess] = v
			src.mu.Unlock()

			var rm metricdata.ResourceMetrics
			_ = reader.Collect(context.Background(), &rm)
		}(uint64(i + 1))
	}
	wg.Wait()
}

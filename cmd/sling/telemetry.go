package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/lixenwraith/sling/status"
)

const meterName = "github.com/lixenwraith/sling"

// telemetry owns the metric SDK; the registry is read only at collection time
type telemetry struct {
	provider *sdkmetric.MeterProvider
	reader   *sdkmetric.ManualReader
}

// point is one collected observation
type point struct {
	Instrument string
	Attrs      string
	Value      float64
}

// setupTelemetry installs a meter provider over reg and makes it the global provider
func setupTelemetry(reg *status.Registry, runID uuid.UUID) (*telemetry, error) {
	reader := sdkmetric.NewManualReader()
	res := resource.NewSchemaless(
		attribute.String("service.name", "sling"),
		attribute.String("service.version", version),
		attribute.String("service.instance.id", runID.String()),
	)
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	if err := reg.Observe(provider.Meter(meterName)); err != nil {
		return nil, fmt.Errorf("observe registry: %w", err)
	}
	otel.SetMeterProvider(provider)
	return &telemetry{provider: provider, reader: reader}, nil
}

// collect reads every registered gauge once
func (t *telemetry) collect(ctx context.Context) ([]point, error) {
	var rm metricdata.ResourceMetrics
	if err := t.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	var points []point
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Gauge[int64]:
				for _, dp := range data.DataPoints {
					points = append(points, point{
						Instrument: m.Name,
						Attrs:      dp.Attributes.Encoded(attribute.DefaultEncoder()),
						Value:      float64(dp.Value),
					})
				}
			case metricdata.Gauge[float64]:
				for _, dp := range data.DataPoints {
					points = append(points, point{
						Instrument: m.Name,
						Attrs:      dp.Attributes.Encoded(attribute.DefaultEncoder()),
						Value:      dp.Value,
					})
				}
			}
		}
	}
	return points, nil
}

// logSnapshot writes the final metric values to the debug log
func (t *telemetry) logSnapshot(ctx context.Context) {
	points, err := t.collect(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Metric snapshot failed")
		return
	}
	for _, p := range points {
		log.Info().Str("instrument", p.Instrument).Str("attrs", p.Attrs).Float64("value", p.Value).Msg("Metric")
	}
}

// shutdown stops the provider; further collections fail
func (t *telemetry) shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

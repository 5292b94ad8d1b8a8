package status

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names; each registry cell is one attribute set under them
const (
	InstrumentCounters = "sling.counter"
	InstrumentGauges   = "sling.gauge"
	InstrumentFlags    = "sling.flag"
	InstrumentLabels   = "sling.label"
)

// attrName keys the registry cell name on exported points
const attrName = "name"

// Observe registers observable gauges reading the registry at collection time
// Cells created after registration are picked up on the next collection
func (r *Registry) Observe(meter metric.Meter) error {
	_, err := meter.Int64ObservableGauge(InstrumentCounters,
		metric.WithDescription("Integer runtime counters"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			r.Ints.Range(func(name string, cell *atomic.Int64) {
				o.Observe(cell.Load(), metric.WithAttributes(attribute.String(attrName, name)))
			})
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", InstrumentCounters, err)
	}

	_, err = meter.Float64ObservableGauge(InstrumentGauges,
		metric.WithDescription("Float runtime gauges"),
		metric.WithFloat64Callback(func(_ context.Context, o metric.Float64Observer) error {
			r.Floats.Range(func(name string, cell *AtomicFloat) {
				o.Observe(cell.Get(), metric.WithAttributes(attribute.String(attrName, name)))
			})
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", InstrumentGauges, err)
	}

	_, err = meter.Int64ObservableGauge(InstrumentFlags,
		metric.WithDescription("Boolean state as 0/1"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			r.Bools.Range(func(name string, cell *atomic.Bool) {
				var v int64
				if cell.Load() {
					v = 1
				}
				o.Observe(v, metric.WithAttributes(attribute.String(attrName, name)))
			})
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", InstrumentFlags, err)
	}

	// Labels export as info-style points: constant 1, value carried as an attribute
	_, err = meter.Int64ObservableGauge(InstrumentLabels,
		metric.WithDescription("String state, value in the label attribute"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			r.Strings.Range(func(name string, cell *AtomicString) {
				o.Observe(1, metric.WithAttributes(
					attribute.String(attrName, name),
					attribute.String("value", cell.Load()),
				))
			})
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", InstrumentLabels, err)
	}
	return nil
}

package trace_test

import (
	"testing"

	"github.com/katalvlaran/elecnet/builder"
	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/trace"
)

// BenchmarkBusesOnRouteToTarget_Radial1000 traces end to end along a
// 1000-bus chain; every step shares its branch set.
func BenchmarkBusesOnRouteToTarget_Radial1000(b *testing.B) {
	m := builder.MustBuild(nil, builder.Radial(1000))
	from, to := m.Buses["999"], m.Buses["0"]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trace.BusesOnRouteToTarget(from, to)
	}
}

// BenchmarkTraceWithoutCrossingBuses_Star500 forks at the hub into 499
// copied branch sets.
func BenchmarkTraceWithoutCrossingBuses_Star500(b *testing.B) {
	m := builder.MustBuild(nil, builder.Star(500))
	hub := m.Buses[builder.CenterBusID]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trace.TraceWithoutCrossingBuses(hub, nil)
	}
}

// BenchmarkDirectLengthBetweenBuses_IEEE13 measures the composed route and
// callback traces on the 13-bus feeder.
func BenchmarkDirectLengthBetweenBuses_IEEE13(b *testing.B) {
	m := builder.MustBuild(nil, builder.IEEE13())
	var from, to *network.Bus = m.Buses["652"], m.Buses["RG60"]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trace.DirectLengthBetweenBuses(from, to)
	}
}

package trace_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/elecnet/builder"
	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/trace"
)

// ExampleBusesOnRouteToTarget traces the IEEE 13-bus feeder from the far end
// of the 684 lateral back to the regulator.
func ExampleBusesOnRouteToTarget() {
	m, err := builder.IEEE13Model()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	route, err := trace.BusesOnRouteToTarget(m.Buses["652"], m.Source)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	names := make([]string, len(route))
	for i, b := range route {
		names[i] = b.ID()
	}
	fmt.Println(strings.Join(names, " "))

	d, _ := trace.DirectLengthBetweenBuses(m.Buses["652"], m.Source)
	fmt.Printf("%.0f m\n", d)
	// Output:
	// 632 652 670 671 684 RG60
	// 6133 m
}

// ExampleTraceWithoutCrossingBuses lists what stays connected to the
// regulator if bus 671 is isolated.
func ExampleTraceWithoutCrossingBuses() {
	m, _ := builder.IEEE13Model()

	upstream, err := trace.TraceWithoutCrossingBuses(m.Source, []*network.Bus{m.Buses["671"]})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(trace.NewBusSet(upstream...).IDs())
	// Output:
	// [632 633 645 646 670 RG60]
}

// SPDX-License-Identifier: MIT

// Command gridtrace loads a feeder description and answers topology
// questions about it: routes between buses, the region reachable without
// crossing given buses, and line distance along a route.
//
//	gridtrace --network feeder.yaml info
//	gridtrace --network feeder.yaml route 675 RG60
//	gridtrace --network feeder.yaml reach 671 --exclude 670
//	gridtrace --network feeder.yaml length 611 RG60
//	gridtrace --network ieee13 experiment --scale 1.2
//
// The network name "ieee13" selects the built-in IEEE 13-bus feeder.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

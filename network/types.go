// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/elecnet/phased"
)

// Sentinel errors for network construction and queries.
var (
	// ErrNilElement indicates a nil element was passed to a wiring operation.
	ErrNilElement = errors.New("network: element is nil")

	// ErrForeignElement indicates the two elements belong to different networks.
	ErrForeignElement = errors.New("network: elements belong to different networks")

	// ErrUnknownHandle indicates a handle that does not address an element.
	ErrUnknownHandle = errors.New("network: unknown element handle")

	// ErrEmptyID indicates an element was created with an empty identifier.
	ErrEmptyID = errors.New("network: element ID is empty")

	// ErrDuplicateID indicates an identifier already used by an element of the same kind.
	ErrDuplicateID = errors.New("network: duplicate element ID")

	// ErrUnknownBus indicates a lookup of a bus ID that is not in the model.
	ErrUnknownBus = errors.New("network: unknown bus")

	// ErrPhaseCountMismatch indicates paired phase lists of different length,
	// or too few phases for the requested wiring.
	ErrPhaseCountMismatch = errors.New("network: phase count mismatch")

	// ErrMultiPhase indicates a single-phase operation on a multi-phase element.
	ErrMultiPhase = errors.New("network: operation requires a single-phase element")

	// ErrLineEndpoints indicates a line that does not connect exactly two distinct buses.
	ErrLineEndpoints = errors.New("network: line must connect exactly two buses")

	// ErrConversionBus indicates a load or generator not attached to exactly one bus.
	ErrConversionBus = errors.New("network: conversion element must connect to exactly one bus")
)

// Phase is re-exported for convenience.
type Phase = phased.Phase

// Handle addresses an element inside its Network. Handles are dense,
// start at zero and are never reused.
type Handle int

// Kind classifies a network element.
type Kind uint8

const (
	KindBus Kind = iota
	KindLine
	KindLoad
	KindGenerator
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBus:
		return "Bus"
	case KindLine:
		return "Line"
	case KindLoad:
		return "Load"
	case KindGenerator:
		return "Generator"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Connection is one end of a phase-level link: the target element and the
// phase of the target it lands on. Two connections are equal iff both
// fields are equal, so Connection can be compared with == and used as a
// map key.
type Connection struct {
	Target Handle
	Phase  Phase
}

// Point is a bus location in drawing coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

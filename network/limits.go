// SPDX-License-Identifier: MIT

package network

import "math"

// Limits tracks the running extent of observed data and maps values
// between that extent and a target range [LimitMin, LimitMax].
type Limits struct {
	AutoMin, AutoMax   float64
	LimitMin, LimitMax float64
	Count              int
}

// NewLimits returns Limits with no observations and a [0,1] target range.
func NewLimits() *Limits {
	l := &Limits{LimitMax: 1}
	l.Reset()

	return l
}

// Reset discards every observation.
func (l *Limits) Reset() {
	l.AutoMin = math.Inf(1)
	l.AutoMax = math.Inf(-1)
	l.Count = 0
}

// Observe widens the extent to include each of vs.
func (l *Limits) Observe(vs ...float64) {
	for _, v := range vs {
		if v > l.AutoMax {
			l.AutoMax = v
		}
		if v < l.AutoMin {
			l.AutoMin = v
		}
		l.Count++
	}
}

// Fraction returns how far v lies through the observed extent, 0 at
// AutoMin and 1 at AutoMax. A degenerate extent yields 0 below it and 1
// otherwise.
func (l *Limits) Fraction(v float64) float64 {
	if l.AutoMax == l.AutoMin {
		if v < l.AutoMax {
			return 0
		}
		return 1
	}

	return (v - l.AutoMin) / (l.AutoMax - l.AutoMin)
}

// Scale maps v from the observed extent onto [LimitMin, LimitMax].
func (l *Limits) Scale(v float64) float64 {
	return l.Fraction(v)*(l.LimitMax-l.LimitMin) + l.LimitMin
}

// Unscale is the inverse of Scale. A degenerate target range yields
// AutoMin below it and AutoMax otherwise.
func (l *Limits) Unscale(p float64) float64 {
	if l.LimitMax == l.LimitMin {
		if p < l.LimitMax {
			return l.AutoMin
		}
		return l.AutoMax
	}

	return (p-l.LimitMin)/(l.LimitMax-l.LimitMin)*(l.AutoMax-l.AutoMin) + l.AutoMin
}

// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewBuses indicates a size parameter below the constructor minimum.
var ErrTooFewBuses = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not complete, for example
// a nil constructor or an edge with an empty bus ID.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNoBuses indicates BuildNetwork finished without any bus to act as source.
var ErrNoBuses = errors.New("builder: network has no buses")

package builder_test

import "math/cmplx"

func cmplxAbs(c complex128) float64 { return cmplx.Abs(c) }

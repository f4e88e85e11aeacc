package phased_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elecnet/phased"
)

func TestStored_GetMissingPhase(t *testing.T) {
	s := phased.NewStored[float64]()
	_, err := s.Get(2)
	assert.ErrorIs(t, err, phased.ErrMissingPhase)

	require.NoError(t, s.Set(2, 4.5))
	v, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
}

func TestStored_AddExisting(t *testing.T) {
	s := phased.NewStored[int]()
	require.NoError(t, s.Add(1, 10))
	assert.ErrorIs(t, s.Add(1, 11), phased.ErrPhaseExists)

	v, _ := s.Get(1)
	assert.Equal(t, 10, v, "failed Add must not overwrite")
}

func TestStored_KeysSortedAndLive(t *testing.T) {
	s := phased.StoredFrom(map[phased.Phase]string{3: "c", 1: "a", 0: "n"})
	assert.Equal(t, []phased.Phase{0, 1, 3}, s.Keys())
	assert.Equal(t, []string{"n", "a", "c"}, s.Values())

	ok, err := s.Remove(0)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = s.Remove(0)
	assert.False(t, ok)
	assert.Equal(t, []phased.Phase{1, 3}, s.Keys())

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())
}

func TestStored_AcceptsUnconventionalPhases(t *testing.T) {
	s := phased.NewStored[int]()
	require.NoError(t, s.Set(-4, 1))
	require.NoError(t, s.Set(17, 2))
	assert.Equal(t, []phased.Phase{-4, 17}, s.Keys())
}

func TestStored_RangeStopsEarly(t *testing.T) {
	s := phased.Uniform(1, 1, 2, 3)
	var seen []phased.Phase
	s.Range(func(p phased.Phase, _ int) bool {
		seen = append(seen, p)
		return p < 2
	})
	assert.Equal(t, []phased.Phase{1, 2}, seen)
}

func TestEvaluated_ReadTransformsBacking(t *testing.T) {
	values := phased.NewStored[complex128]()
	require.NoError(t, values.Add(1, complex(10, 5)))
	eval := phased.NewEvaluated(
		func(c complex128) complex128 { return c / 5 },
		func(c complex128) complex128 { return c * 5 },
		values,
	)

	assert.Equal(t, 1, values.Len())
	assert.Equal(t, []complex128{complex(2, 1)}, eval.Values())
	assert.Equal(t, phased.VariantEvaluated, eval.Variant())
	assert.False(t, eval.ReadOnly())
}

func TestEvaluated_AddWritesThrough(t *testing.T) {
	values := phased.NewStored[complex128]()
	eval := phased.NewEvaluated(
		func(c complex128) complex128 { return c / 5 },
		func(c complex128) complex128 { return c * 5 },
		values,
	)
	require.NoError(t, eval.Add(2, complex(3, 10)))

	got, err := values.Get(2)
	require.NoError(t, err)
	assert.Equal(t, complex(15, 50), got)
	assert.ErrorIs(t, eval.Add(2, 0), phased.ErrPhaseExists)
}

func TestEvaluated_RoundTrip(t *testing.T) {
	base := 4160.0
	volts := phased.NewStored[complex128]()
	pu := phased.NewEvaluated(
		func(v complex128) complex128 { return v / complex(base, 0) },
		func(v complex128) complex128 { return v * complex(base, 0) },
		volts,
	)

	for _, x := range []complex128{1, cmplx.Rect(0.98, -2.094), complex(1.02, 0.013)} {
		require.NoError(t, pu.Set(1, x))
		got, err := pu.Get(1)
		require.NoError(t, err)
		assert.InDelta(t, real(x), real(got), 1e-12)
		assert.InDelta(t, imag(x), imag(got), 1e-12)
	}
}

func TestEvaluated_KeysFollowBacking(t *testing.T) {
	volts := phased.NewStored[float64]()
	view := phased.NewEvaluated(func(v float64) float64 { return v * 2 }, func(v float64) float64 { return v / 2 }, volts)
	assert.Empty(t, view.Keys())

	require.NoError(t, volts.Set(3, 1))
	assert.Equal(t, []phased.Phase{3}, view.Keys())
	assert.True(t, view.Has(3))

	ok, err := view.Remove(3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, volts.Has(3))

	_, err = view.Get(3)
	assert.ErrorIs(t, err, phased.ErrMissingPhase)
}

func TestReadOnly_MutationsFail(t *testing.T) {
	base := phased.Uniform(2.0, 1, 2)
	ro := phased.NewReadOnly(func(v float64) float64 { return v + 1 }, base)

	v, err := ro.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.True(t, ro.ReadOnly())
	assert.Equal(t, phased.VariantReadOnly, ro.Variant())

	assert.ErrorIs(t, ro.Set(1, 0), phased.ErrReadOnly)
	assert.ErrorIs(t, ro.Add(5, 0), phased.ErrReadOnly)
	_, err = ro.Remove(1)
	assert.ErrorIs(t, err, phased.ErrReadOnly)
	assert.ErrorIs(t, ro.Clear(), phased.ErrReadOnly)

	assert.Equal(t, 2, base.Len(), "failed mutations must leave the backing map intact")
}

type view struct{ n int }

func TestCachedReadOnly_Identity(t *testing.T) {
	base := phased.StoredFrom(map[phased.Phase]int{1: 10, 2: 20})
	calls := 0
	cached := phased.NewCachedReadOnly(func(n int) *view {
		calls++
		return &view{n: n}
	}, base)

	a, err := cached.Get(1)
	require.NoError(t, err)
	b, err := cached.Get(1)
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
	assert.Equal(t, phased.VariantCachedReadOnly, cached.Variant())

	// a plain read-only view builds a new object every read
	plain := phased.NewReadOnly(func(n int) *view { return &view{n: n} }, base)
	c, _ := plain.Get(1)
	d, _ := plain.Get(1)
	assert.NotSame(t, c, d)
	assert.Equal(t, c, d)
}

func TestCachedReadOnly_NeverInvalidates(t *testing.T) {
	base := phased.StoredFrom(map[phased.Phase]int{1: 10})
	cached := phased.NewCachedReadOnly(func(n int) *view { return &view{n: n} }, base)

	first, _ := cached.Get(1)
	require.NoError(t, base.Set(1, 11))
	second, _ := cached.Get(1)
	assert.NotSame(t, first, second)
	assert.Equal(t, 11, second.n)

	// the memo still holds the object produced for the old value
	require.NoError(t, base.Set(1, 10))
	third, _ := cached.Get(1)
	assert.Same(t, first, third)
}

func TestSumAndEqual(t *testing.T) {
	kva := phased.StoredFrom(map[phased.Phase]complex128{1: complex(1, 2), 2: complex(3, 4)})
	assert.Equal(t, complex(4, 6), phased.Sum(kva))
	assert.Equal(t, complex128(0), phased.Sum(phased.NewStored[complex128]()))

	a := phased.Uniform(1, 1, 2)
	b := phased.Uniform(1, 2, 1)
	assert.True(t, phased.Equal[int](a, b))
	require.NoError(t, b.Set(2, 5))
	assert.False(t, phased.Equal[int](a, b))
	require.NoError(t, b.Set(3, 1))
	assert.False(t, phased.Equal[int](a, b))
}

func TestNewEvaluated_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		phased.NewEvaluated[int, int](nil, func(v int) int { return v }, phased.NewStored[int]())
	})
	assert.Panics(t, func() {
		phased.NewCachedReadOnly[int, int](func(v int) int { return v }, nil)
	})
}

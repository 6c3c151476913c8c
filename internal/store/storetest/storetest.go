// Package storetest holds the behavioral suite every store.Store
// implementation must pass.
package storetest

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bills/internal/core"
	"bills/internal/store"
)

// Factory returns an empty store for a single subtest.
type Factory func(t *testing.T) store.Store

// Run executes the contract suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		s := newStore(t)
		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
		n, err := s.Len(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("add with existing name replaces record", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 800}))
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 950.5}))

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, core.Bill{Name: "Rent", Amount: 950.5}, got[0])
	})

	t.Run("list is ordered by name and stable", func(t *testing.T) {
		s := newStore(t)
		for _, b := range []core.Bill{{Name: "Water", Amount: 30}, {Name: "Electricity", Amount: 75.4}, {Name: "Internet", Amount: 60}} {
			require.NoError(t, s.Add(ctx, b))
		}

		first, err := s.List(ctx)
		require.NoError(t, err)
		second, err := s.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		names := make([]string, 0, len(first))
		for _, b := range first {
			names = append(names, b.Name)
		}
		assert.Equal(t, []string{"Electricity", "Internet", "Water"}, names)
	})

	t.Run("list returns copies", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Gym", Amount: 40}))
		got, err := s.List(ctx)
		require.NoError(t, err)
		got[0].Amount = 1

		again, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 40.0, again[0].Amount)
	})

	t.Run("remove reports presence", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Internet", Amount: 60}))

		ok, err := s.Remove(ctx, "Internet")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Remove(ctx, "Internet")
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("update existing bill", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Phone", Amount: 20}))

		ok, err := s.Update(ctx, "Phone", -5.75)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Bill{{Name: "Phone", Amount: -5.75}}, got)
	})

	t.Run("update missing bill leaves store unchanged", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Phone", Amount: 20}))

		ok, err := s.Update(ctx, "Rent", 900)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Bill{{Name: "Phone", Amount: 20}}, got)
		n, err := s.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Add(ctx, core.Bill{Name: "rent", Amount: 1}))
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 2}))
		n, err := s.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	// Stores keep any float64 they are given; rejecting non-finite user
	// input happens before the store.
	t.Run("non-finite amounts round-trip", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Add(ctx, core.Bill{Name: "A", Amount: math.NaN()}))
		require.NoError(t, s.Add(ctx, core.Bill{Name: "B", Amount: math.Inf(1)}))
		require.NoError(t, s.Add(ctx, core.Bill{Name: "C", Amount: 1e3}))

		ok, err := s.Update(ctx, "C", math.Inf(-1))
		require.NoError(t, err)
		require.True(t, ok)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.True(t, math.IsNaN(got[0].Amount), "A: %v", got[0].Amount)
		assert.True(t, math.IsInf(got[1].Amount, 1), "B: %v", got[1].Amount)
		assert.True(t, math.IsInf(got[2].Amount, -1), "C: %v", got[2].Amount)
	})

	t.Run("small and exponent amounts keep their value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Tiny", Amount: 0.25}))
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Huge", Amount: 1e21}))

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Bill{{Name: "Huge", Amount: 1e21}, {Name: "Tiny", Amount: 0.25}}, got)
	})
}

package store

import (
	"context"

	"bills/internal/core"
)

// Ports for bill storage backends.
type (
	Writer interface {
		// Add inserts the bill or fully replaces the one with the same name.
		Add(ctx context.Context, b core.Bill) error
		// Remove deletes the named bill and reports whether it existed.
		Remove(ctx context.Context, name string) (bool, error)
		// Update sets a new amount on an existing bill. It reports false
		// and changes nothing when the name is unknown.
		Update(ctx context.Context, name string, amount float64) (bool, error)
	}

	Reader interface {
		// List returns copies of all bills ordered by name.
		List(ctx context.Context) ([]core.Bill, error)
		Len(ctx context.Context) (int, error)
	}

	Store interface {
		Writer
		Reader
	}
)

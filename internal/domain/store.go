package domain

import "context"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

// BookingStore persists bookings for the lifetime of the process.
// Implementations must return copies so callers cannot mutate stored
// state without going through Save.
type BookingStore interface {
	// Save inserts or replaces the booking keyed by its ID.
	Save(ctx context.Context, booking Booking) error

	// Get returns the booking with the given ID.
	// Returns ErrBookingNotFound if no such booking exists.
	Get(ctx context.Context, id string) (Booking, error)

	// GetByReference returns the confirmed booking with the given public
	// reference. Returns ErrBookingNotFound if no such booking exists.
	GetByReference(ctx context.Context, reference string) (Booking, error)
}

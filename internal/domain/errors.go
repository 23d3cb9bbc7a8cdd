package domain

import "errors"

// Sentinel errors for the booking domain.
// Callers should use errors.Is to check for these, since they are
// typically wrapped with additional context.
var (
	// ErrInvalidRequest indicates the caller supplied invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrBookingNotFound indicates no booking exists for the given ID.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingConfirmed indicates a mutation was attempted on a booking
	// that has already reached the terminal Confirmed state.
	ErrBookingConfirmed = errors.New("booking already confirmed")

	// ErrBookingNotConfirmed indicates an operation that requires a
	// confirmed booking (e.g., ticket download) was attempted on a draft.
	ErrBookingNotConfirmed = errors.New("booking not confirmed")
)

// Package store provides the in-memory booking store.
// Bookings live for the lifetime of the process only; durable persistence
// is deliberately absent from this system.
package store

import (
	"context"
	"sync"

	"github.com/skyroutes/flight-booking-service/internal/domain"
)

// Memory is a thread-safe in-memory implementation of domain.BookingStore.
// Values are stored and returned by copy, so callers can only change
// persisted state through Save.
type Memory struct {
	mu          sync.RWMutex
	bookings    map[string]domain.Booking
	byReference map[string]string
}

// NewMemory creates an empty in-memory booking store.
func NewMemory() *Memory {
	return &Memory{
		bookings:    make(map[string]domain.Booking),
		byReference: make(map[string]string),
	}
}

// Save inserts or replaces the booking keyed by its ID.
func (m *Memory) Save(_ context.Context, booking domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings[booking.ID] = booking
	if booking.Reference != "" {
		m.byReference[booking.Reference] = booking.ID
	}
	return nil
}

// Get returns the booking with the given ID, or ErrBookingNotFound.
func (m *Memory) Get(_ context.Context, id string) (domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	booking, ok := m.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return booking, nil
}

// GetByReference returns the booking with the given public reference, or
// ErrBookingNotFound.
func (m *Memory) GetByReference(_ context.Context, reference string) (domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byReference[reference]
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	booking, ok := m.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}
	return booking, nil
}

// Len returns the number of stored bookings.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// Ensure Memory implements BookingStore at compile time.
var _ domain.BookingStore = (*Memory)(nil)

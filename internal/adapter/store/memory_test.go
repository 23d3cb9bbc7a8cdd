package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroutes/flight-booking-service/internal/domain"
)

func TestMemory_SaveAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	booking := domain.Booking{ID: "b-1", Status: domain.StatusDraft, Origin: "DEL", Destination: "GOI"}
	require.NoError(t, m.Save(ctx, booking))

	got, err := m.Get(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, booking, got)
	assert.Equal(t, 1, m.Len())

	// Save replaces
	booking.Passengers = 3
	require.NoError(t, m.Save(ctx, booking))
	got, err = m.Get(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Passengers)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_GetMissing(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestMemory_GetByReference(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	draft := domain.Booking{ID: "b-1", Status: domain.StatusDraft}
	require.NoError(t, m.Save(ctx, draft))

	_, err := m.GetByReference(ctx, "BK12345678")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound, "draft has no reference yet")

	confirmed := draft
	confirmed.Status = domain.StatusConfirmed
	confirmed.Reference = "BK12345678"
	require.NoError(t, m.Save(ctx, confirmed))

	got, err := m.GetByReference(ctx, "BK12345678")
	require.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, domain.Booking{ID: "b-1", Passengers: 1}))

	got, err := m.Get(ctx, "b-1")
	require.NoError(t, err)
	got.Passengers = 9

	fresh, err := m.Get(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Passengers, "mutating a returned booking must not change the store")
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := string(rune('a' + i%26))
		go func() {
			defer wg.Done()
			_ = m.Save(ctx, domain.Booking{ID: id})
		}()
		go func() {
			defer wg.Done()
			_, _ = m.Get(ctx, id)
		}()
	}
	wg.Wait()

	assert.Equal(t, 26, m.Len())
}

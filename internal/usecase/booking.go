package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skyroutes/flight-booking-service/internal/domain"
	"github.com/skyroutes/flight-booking-service/internal/infrastructure/timeutil"
)

// CreateBookingInput carries everything the results view hands to the
// booking pipeline: the selected flight and the one-shot search context.
type CreateBookingInput struct {
	Flight        domain.Flight
	Origin        string
	Destination   string
	DepartureDate string
	Passengers    int
}

// Validate checks the handoff before a draft is created.
func (in *CreateBookingInput) Validate() error {
	criteria := domain.SearchCriteria{
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureDate: in.DepartureDate,
		Passengers:    in.Passengers,
	}
	if err := criteria.Validate(); err != nil {
		return err
	}

	if in.Flight.Price <= 0 {
		return fmt.Errorf("%w: flight price must be positive", domain.ErrInvalidRequest)
	}
	if in.Flight.Stops < 0 || in.Flight.Stops > 1 {
		return fmt.Errorf("%w: flight stops must be 0 or 1", domain.ErrInvalidRequest)
	}
	if in.Flight.Class != domain.ClassEconomy && in.Flight.Class != domain.ClassBusiness {
		return fmt.Errorf("%w: flight class must be Economy or Business", domain.ErrInvalidRequest)
	}
	return nil
}

// UpdateBookingInput replaces the passenger and/or payment forms on a
// draft. Nil leaves the corresponding form untouched.
type UpdateBookingInput struct {
	Passenger *domain.PassengerDetails
	Payment   *domain.PaymentDetails
}

// BookingUseCase defines the interface for booking lifecycle operations.
type BookingUseCase interface {
	// Create opens a new draft booking for the selected flight.
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)

	// Update replaces the contact/payment forms on a draft.
	// Fails with ErrBookingConfirmed once the booking is confirmed.
	Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error)

	// Confirm transitions a draft to the terminal Confirmed state,
	// pricing it and minting the public reference.
	Confirm(ctx context.Context, id string) (*domain.Booking, error)

	// Get returns the booking with the given ID.
	Get(ctx context.Context, id string) (*domain.Booking, error)

	// GetByReference returns the booking with the given public reference.
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)

	// Ticket returns the booking if it is confirmed and therefore has a
	// printable ticket. Fails with ErrBookingNotConfirmed for drafts.
	Ticket(ctx context.Context, id string) (*domain.Booking, error)
}

// bookingUseCase implements BookingUseCase on top of a BookingStore.
type bookingUseCase struct {
	store domain.BookingStore
	clock timeutil.Clock
}

// NewBookingUseCase creates a BookingUseCase backed by the given store.
// A nil clock falls back to the system clock.
func NewBookingUseCase(store domain.BookingStore, clock timeutil.Clock) BookingUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &bookingUseCase{
		store: store,
		clock: clock,
	}
}

// Create implements BookingUseCase.Create.
func (uc *bookingUseCase) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	booking := domain.Booking{
		ID:            uuid.New().String(),
		Status:        domain.StatusDraft,
		Flight:        input.Flight,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		Passengers:    input.Passengers,
		CreatedAt:     uc.clock.Now(),
	}

	if err := uc.store.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	return &booking, nil
}

// Update implements BookingUseCase.Update.
func (uc *bookingUseCase) Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error) {
	booking, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.IsConfirmed() {
		return nil, domain.ErrBookingConfirmed
	}

	if input.Passenger != nil {
		booking.Passenger = *input.Passenger
	}
	if input.Payment != nil {
		booking.Payment = *input.Payment
	}

	if err := uc.store.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	return &booking, nil
}

// Confirm implements BookingUseCase.Confirm.
func (uc *bookingUseCase) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := booking.Confirm(uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}
	return &booking, nil
}

// Get implements BookingUseCase.Get.
func (uc *bookingUseCase) Get(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByReference implements BookingUseCase.GetByReference.
// Only confirmed bookings carry a reference, so drafts are unreachable here.
func (uc *bookingUseCase) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	booking, err := uc.store.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Ticket implements BookingUseCase.Ticket.
func (uc *bookingUseCase) Ticket(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.IsConfirmed() {
		return nil, domain.ErrBookingNotConfirmed
	}
	return &booking, nil
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)

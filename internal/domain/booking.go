package domain

import (
	"fmt"
	"strconv"
	"time"
)

// TaxRatePercent is the flat mock tax/fee rate applied to every fare,
// regardless of route, class or currency.
const TaxRatePercent = 15

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking lifecycle states. A booking starts as a draft and, once
// confirmed, is terminal: no further mutation is permitted.
const (
	StatusDraft     BookingStatus = "draft"
	StatusConfirmed BookingStatus = "confirmed"
)

// PassengerDetails holds the contact form for the lead passenger.
type PassengerDetails struct {
	// FirstName is required for confirmation
	FirstName string `json:"firstName"`

	// LastName is optional
	LastName string `json:"lastName"`

	// Email is required for confirmation
	Email string `json:"email"`

	// Phone is required for confirmation
	Phone string `json:"phone"`
}

// Validate checks the fields required before a booking may be confirmed.
// Only presence is checked; there is no payment processor or mail gateway
// behind this form.
func (p *PassengerDetails) Validate() error {
	if p.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidRequest)
	}
	if p.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	if p.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidRequest)
	}
	return nil
}

// PaymentDetails holds the card form. The fields are collected but never
// charged; there is no payment processor in this system.
type PaymentDetails struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Booking is a flight booking moving through the draft -> confirmed
// lifecycle. The selected flight is embedded because flights are ephemeral
// to one search and cannot be re-resolved later.
type Booking struct {
	// ID is the internal booking identifier (UUID)
	ID string `json:"id"`

	// Status is the current lifecycle state
	Status BookingStatus `json:"status"`

	// Flight is the selected flight, captured at booking time
	Flight Flight `json:"flight"`

	// Origin and Destination are the IATA codes of the booked route
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// DepartureDate is the travel date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of travellers (1-9)
	Passengers int `json:"passengers"`

	// Passenger is the lead passenger contact form
	Passenger PassengerDetails `json:"passenger"`

	// Payment is the collected (never charged) card form
	Payment PaymentDetails `json:"payment"`

	// Reference is the public booking reference, set on confirmation
	Reference string `json:"reference,omitempty"`

	// BaseFare is flight price x passengers, set on confirmation
	BaseFare int `json:"baseFare,omitempty"`

	// Taxes is the fee portion of the total, set on confirmation
	Taxes int `json:"taxes,omitempty"`

	// TotalPrice is the confirmed total, floor(price x passengers x 1.15)
	TotalPrice int `json:"totalPrice,omitempty"`

	// CreatedAt is when the draft was created
	CreatedAt time.Time `json:"createdAt"`

	// ConfirmedAt is when the booking was confirmed, nil while drafting
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
}

// IsConfirmed reports whether the booking has reached its terminal state.
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Confirm transitions the booking to the Confirmed state at the given time.
// It validates the required contact fields, prices the booking and mints
// the public reference. Confirming an already-confirmed booking fails with
// ErrBookingConfirmed and leaves the booking untouched.
func (b *Booking) Confirm(now time.Time) error {
	if b.IsConfirmed() {
		return ErrBookingConfirmed
	}
	if err := b.Passenger.Validate(); err != nil {
		return err
	}

	b.BaseFare = b.Flight.Price * b.Passengers
	b.TotalPrice = TotalPrice(b.Flight.Price, b.Passengers)
	b.Taxes = b.TotalPrice - b.BaseFare
	b.Reference = NewReference(now)
	b.Status = StatusConfirmed
	b.ConfirmedAt = &now
	return nil
}

// TotalPrice computes the all-in price for a fare and passenger count:
// floor(price * passengers * 1.15). Integer arithmetic keeps the floor
// exact for every input.
func TotalPrice(price, passengers int) int {
	return price * passengers * (100 + TaxRatePercent) / 100
}

// NewReference mints a booking reference from the given time: "BK"
// followed by the last 8 digits of the Unix-millisecond timestamp.
// Uniqueness is only probabilistic; two confirmations within the same
// millisecond collide. Acceptable for a demo system.
func NewReference(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "BK" + ms
}

// Package pdf renders confirmed bookings as printable e-tickets.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/skyroutes/flight-booking-service/internal/domain"
)

// RenderTicket generates the e-ticket PDF for a confirmed booking and
// returns the raw bytes; nothing touches the filesystem.
func RenderTicket(booking *domain.Booking, originCity, destinationCity string) ([]byte, error) {
	if !booking.IsConfirmed() {
		return nil, domain.ErrBookingNotConfirmed
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	// Header bar
	doc.SetFillColor(21, 34, 56)
	doc.Rect(0, 0, 210, 28, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(20, 8)
	doc.CellFormat(100, 10, "SkyRoutes", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetXY(20, 18)
	doc.CellFormat(170, 6, "E-Ticket / Booking Confirmation", "", 1, "L", false, 0, "")

	doc.SetY(36)
	doc.SetTextColor(0, 0, 0)

	// Reference banner
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(170, 10, "Booking Reference: "+booking.Reference, "", 1, "C", false, 0, "")
	doc.Ln(4)

	sectionHeader := func(title string) {
		doc.SetFillColor(21, 34, 56)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.Ln(2)
	}

	row := func(label, value string) {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// Flight details
	sectionHeader("Flight Details")
	row("Flight", fmt.Sprintf("%s %s", booking.Flight.Airline, booking.Flight.FlightNumber))
	row("Route", formatRoute(booking, originCity, destinationCity))
	row("Date", booking.DepartureDate)
	row("Departure - Arrival", fmt.Sprintf("%s - %s", booking.Flight.Departure, booking.Flight.Arrival))
	row("Duration", booking.Flight.Duration)
	row("Class", string(booking.Flight.Class))
	row("Stops", formatStops(booking.Flight.Stops))
	doc.Ln(4)

	// Passenger details
	sectionHeader("Passenger Details")
	row("Name", fmt.Sprintf("%s %s", booking.Passenger.FirstName, booking.Passenger.LastName))
	row("Email", booking.Passenger.Email)
	row("Phone", booking.Passenger.Phone)
	row("Passengers", fmt.Sprintf("%d", booking.Passengers))
	doc.Ln(4)

	// Fare breakdown
	sectionHeader("Fare Breakdown")
	row(fmt.Sprintf("Base Fare x %d", booking.Passengers), formatAmount(booking.BaseFare))
	row("Taxes & Fees", formatAmount(booking.Taxes))
	row("Total", formatAmount(booking.TotalPrice))
	doc.Ln(6)

	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(120, 120, 120)
	doc.MultiCell(170, 4, "This is a demo itinerary. No actual flight has been booked and no payment has been processed.", "", "C", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}
	return buf.Bytes(), nil
}

// formatRoute prefers city names, falling back to the raw codes when a
// route end is not in the catalog.
func formatRoute(b *domain.Booking, originCity, destinationCity string) string {
	origin := b.Origin
	if originCity != "" {
		origin = fmt.Sprintf("%s (%s)", originCity, b.Origin)
	}
	destination := b.Destination
	if destinationCity != "" {
		destination = fmt.Sprintf("%s (%s)", destinationCity, b.Destination)
	}
	return origin + " -> " + destination
}

func formatStops(stops int) string {
	if stops == 0 {
		return "Direct"
	}
	return fmt.Sprintf("%d stop", stops)
}

func formatAmount(amount int) string {
	return fmt.Sprintf("INR %d", amount)
}

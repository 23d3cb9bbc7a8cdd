// Package domain contains the core business entities and rules for the flight
// booking system. These entities are transport-agnostic and form the foundation
// upon which all other components are built.
package domain

import "fmt"

// FlightClass is the travel class of a generated flight.
type FlightClass string

// Travel classes offered by the inventory.
const (
	ClassEconomy  FlightClass = "Economy"
	ClassBusiness FlightClass = "Business"
)

// Flight represents a single candidate flight from the inventory.
// Flights are generated fresh per search invocation and are never persisted;
// they live only as long as the results view that requested them.
type Flight struct {
	// ID is a unique identifier within one result set (e.g., "FL1003")
	ID string `json:"id"`

	// Airline is the full airline name (e.g., "IndiGo")
	Airline string `json:"airline"`

	// FlightNumber is derived from the airline name (e.g., "IN103")
	FlightNumber string `json:"flightNumber"`

	// Departure is the departure time of day in HH:MM format
	Departure string `json:"departure"`

	// Arrival is the arrival time of day in HH:MM format
	Arrival string `json:"arrival"`

	// Duration is the human-readable flight duration (e.g., "5h 20m")
	Duration string `json:"duration"`

	// Price is the per-passenger fare in whole currency units
	Price int `json:"price"`

	// Class is the travel class (Economy or Business)
	Class FlightClass `json:"class"`

	// Stops is the number of stops (0 = direct flight)
	Stops int `json:"stops"`
}

// FormatTimeOfDay renders an hour/minute pair as "HH:MM".
// The hour wraps at midnight so late result rows stay valid times of day.
func FormatTimeOfDay(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour%24, minute)
}

// FormatSpan renders a duration as "Xh Ym".
func FormatSpan(hours, minutes int) string {
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

package domain

// AirportType classifies an airport as an international or domestic hub.
type AirportType string

// Airport classifications used by the catalog.
const (
	AirportInternational AirportType = "international"
	AirportDomestic      AirportType = "domestic"
)

// Airport is a catalog entry: the IATA identity of an airport plus a small
// destination guide (attractions, one-line description) for the city it
// serves.
type Airport struct {
	// Code is the IATA airport code (e.g., "DEL")
	Code string `json:"code"`

	// Name is the official airport name
	Name string `json:"name"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the country the airport is in
	Country string `json:"country"`

	// Lat and Lng are the airport coordinates in decimal degrees
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	// Type classifies the airport as international or domestic
	Type AirportType `json:"type"`

	// Attractions lists highlights of the destination city
	Attractions []string `json:"attractions"`

	// Description is a one-line tagline for the destination
	Description string `json:"description"`
}

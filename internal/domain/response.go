package domain

// SearchResponse represents the result of a flight search: the echoed
// criteria, resolved airport metadata for both ends of the route, search
// execution metadata, and the candidate flights sorted by price.
type SearchResponse struct {
	// SearchCriteria contains the original search parameters
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// OriginAirport is the catalog entry for the origin, nil if unknown
	OriginAirport *Airport `json:"origin_airport,omitempty"`

	// DestinationAirport is the catalog entry for the destination, nil if unknown
	DestinationAirport *Airport `json:"destination_airport,omitempty"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Flights contains the candidate flights, ascending by price
	Flights []Flight `json:"flights"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of flights returned
	TotalResults int `json:"total_results"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResponse builds a SearchResponse, normalising a nil flight
// slice to an empty one so the JSON output is always an array.
func NewSearchResponse(criteria SearchCriteria, flights []Flight, metadata SearchMetadata) SearchResponse {
	if flights == nil {
		flights = []Flight{}
	}
	metadata.TotalResults = len(flights)

	return SearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Flights:        flights,
	}
}

// Package catalog provides the static airport lookup table.
// The table is baked in at build time and is read-only shared data; there
// are no mutation operations.
package catalog

import (
	"strings"

	"github.com/skyroutes/flight-booking-service/internal/domain"
)

// airports holds the catalog entries in insertion order. ListByType and
// All preserve this order.
var airports = []domain.Airport{
	// Major international airports
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA", Lat: 40.6413, Lng: -73.7781, Type: domain.AirportInternational, Attractions: []string{"Statue of Liberty", "Central Park", "Times Square"}, Description: "The city that never sleeps"},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA", Lat: 33.9416, Lng: -118.4085, Type: domain.AirportInternational, Attractions: []string{"Hollywood Sign", "Santa Monica Pier", "Getty Center"}, Description: "Entertainment capital of the world"},
	{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "USA", Lat: 41.9742, Lng: -87.9073, Type: domain.AirportInternational, Attractions: []string{"Millennium Park", "Navy Pier", "Willis Tower"}, Description: "The Windy City"},
	{Code: "LHR", Name: "London Heathrow", City: "London", Country: "UK", Lat: 51.4700, Lng: -0.4543, Type: domain.AirportInternational, Attractions: []string{"Big Ben", "Tower Bridge", "British Museum"}, Description: "Historic capital with royal heritage"},
	{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France", Lat: 49.0097, Lng: 2.5479, Type: domain.AirportInternational, Attractions: []string{"Eiffel Tower", "Louvre Museum", "Arc de Triomphe"}, Description: "City of lights and romance"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Lat: 50.0379, Lng: 8.5622, Type: domain.AirportInternational, Attractions: []string{"Römerberg", "Main Tower", "Palmengarten"}, Description: "Financial hub of Europe"},
	{Code: "AMS", Name: "Amsterdam Schiphol", City: "Amsterdam", Country: "Netherlands", Lat: 52.3105, Lng: 4.7683, Type: domain.AirportInternational, Attractions: []string{"Van Gogh Museum", "Anne Frank House", "Canal Cruises"}, Description: "City of canals and culture"},
	{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE", Lat: 25.2532, Lng: 55.3644, Type: domain.AirportInternational, Attractions: []string{"Burj Khalifa", "Dubai Mall", "Palm Jumeirah"}, Description: "Luxury and modern architecture"},
	{Code: "SIN", Name: "Singapore Changi", City: "Singapore", Country: "Singapore", Lat: 1.3644, Lng: 103.9915, Type: domain.AirportInternational, Attractions: []string{"Marina Bay Sands", "Gardens by the Bay", "Sentosa Island"}, Description: "Garden city with futuristic skyline"},
	{Code: "HKG", Name: "Hong Kong International", City: "Hong Kong", Country: "China", Lat: 22.3080, Lng: 113.9185, Type: domain.AirportInternational, Attractions: []string{"Victoria Peak", "Temple Street Market", "Big Buddha"}, Description: "East meets West"},
	{Code: "NRT", Name: "Tokyo Narita", City: "Tokyo", Country: "Japan", Lat: 35.7720, Lng: 140.3929, Type: domain.AirportInternational, Attractions: []string{"Senso-ji Temple", "Tokyo Tower", "Shibuya Crossing"}, Description: "Blend of tradition and technology"},
	{Code: "ICN", Name: "Seoul Incheon", City: "Seoul", Country: "South Korea", Lat: 37.4602, Lng: 126.4407, Type: domain.AirportInternational, Attractions: []string{"Gyeongbokgung Palace", "N Seoul Tower", "Myeongdong"}, Description: "K-culture and ancient palaces"},
	{Code: "SYD", Name: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia", Lat: -33.9399, Lng: 151.1753, Type: domain.AirportInternational, Attractions: []string{"Sydney Opera House", "Harbour Bridge", "Bondi Beach"}, Description: "Iconic harbor city"},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Lat: -37.6690, Lng: 144.8410, Type: domain.AirportInternational, Attractions: []string{"Federation Square", "Royal Botanic Gardens", "Great Ocean Road"}, Description: "Cultural capital of Australia"},

	// Indian international airports
	{Code: "DEL", Name: "Indira Gandhi International", City: "New Delhi", Country: "India", Lat: 28.5562, Lng: 77.1000, Type: domain.AirportInternational, Attractions: []string{"Red Fort", "India Gate", "Qutub Minar"}, Description: "Capital city with Mughal heritage"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International", City: "Mumbai", Country: "India", Lat: 19.0896, Lng: 72.8656, Type: domain.AirportInternational, Attractions: []string{"Gateway of India", "Marine Drive", "Elephanta Caves"}, Description: "City of dreams and Bollywood"},
	{Code: "BLR", Name: "Kempegowda International", City: "Bangalore", Country: "India", Lat: 13.1986, Lng: 77.7066, Type: domain.AirportInternational, Attractions: []string{"Lalbagh Garden", "Bangalore Palace", "ISKCON Temple"}, Description: "Silicon Valley of India"},
	{Code: "MAA", Name: "Chennai International", City: "Chennai", Country: "India", Lat: 12.9941, Lng: 80.1709, Type: domain.AirportInternational, Attractions: []string{"Marina Beach", "Kapaleeshwarar Temple", "Fort St. George"}, Description: "Gateway to South India"},
	{Code: "HYD", Name: "Rajiv Gandhi International", City: "Hyderabad", Country: "India", Lat: 17.4627, Lng: 78.3268, Type: domain.AirportInternational, Attractions: []string{"Charminar", "Golconda Fort", "Ramoji Film City"}, Description: "City of pearls and biryani"},
	{Code: "CCU", Name: "Netaji Subhas Chandra Bose International", City: "Kolkata", Country: "India", Lat: 22.6549, Lng: 88.4467, Type: domain.AirportInternational, Attractions: []string{"Victoria Memorial", "Howrah Bridge", "Dakshineswar Temple"}, Description: "Cultural capital of India"},
	{Code: "COK", Name: "Cochin International", City: "Kochi", Country: "India", Lat: 10.1520, Lng: 76.4019, Type: domain.AirportInternational, Attractions: []string{"Fort Kochi", "Chinese Fishing Nets", "Backwaters"}, Description: "Queen of Arabian Sea"},

	// Indian domestic airports
	{Code: "GOI", Name: "Goa International", City: "Goa", Country: "India", Lat: 15.3800, Lng: 74.6333, Type: domain.AirportDomestic, Attractions: []string{"Beaches", "Portuguese Churches", "Spice Plantations"}, Description: "Beach paradise"},
	{Code: "PNQ", Name: "Pune Airport", City: "Pune", Country: "India", Lat: 18.5793, Lng: 73.9197, Type: domain.AirportDomestic, Attractions: []string{"Shaniwar Wada", "Aga Khan Palace", "Osho Ashram"}, Description: "Oxford of the East"},
	{Code: "AMD", Name: "Sardar Vallabhbhai Patel International", City: "Ahmedabad", Country: "India", Lat: 23.0772, Lng: 72.6347, Type: domain.AirportDomestic, Attractions: []string{"Sabarmati Ashram", "Akshardham Temple", "Kankaria Lake"}, Description: "Heritage city"},
	{Code: "JAI", Name: "Jaipur International", City: "Jaipur", Country: "India", Lat: 26.8242, Lng: 75.8122, Type: domain.AirportDomestic, Attractions: []string{"Hawa Mahal", "Amber Fort", "City Palace"}, Description: "Pink City of India"},
	{Code: "IXC", Name: "Chandigarh International", City: "Chandigarh", Country: "India", Lat: 30.6735, Lng: 76.7884, Type: domain.AirportDomestic, Attractions: []string{"Rock Garden", "Sukhna Lake", "Rose Garden"}, Description: "Planned city"},
	{Code: "TRV", Name: "Trivandrum International", City: "Thiruvananthapuram", Country: "India", Lat: 8.4821, Lng: 76.9200, Type: domain.AirportDomestic, Attractions: []string{"Padmanabhaswamy Temple", "Kovalam Beach", "Napier Museum"}, Description: "City of festivals"},
	{Code: "GAU", Name: "Lokpriya Gopinath Bordoloi International", City: "Guwahati", Country: "India", Lat: 26.1061, Lng: 91.5859, Type: domain.AirportDomestic, Attractions: []string{"Kamakhya Temple", "Brahmaputra River Cruise", "Assam State Museum"}, Description: "Gateway to Northeast"},
	{Code: "VNS", Name: "Lal Bahadur Shastri Airport", City: "Varanasi", Country: "India", Lat: 25.4524, Lng: 82.8592, Type: domain.AirportDomestic, Attractions: []string{"Ganges Ghats", "Kashi Vishwanath Temple", "Sarnath"}, Description: "Spiritual capital"},
	{Code: "IXB", Name: "Bagdogra Airport", City: "Bagdogra", Country: "India", Lat: 26.6812, Lng: 88.3286, Type: domain.AirportDomestic, Attractions: []string{"Darjeeling Tea Gardens", "Tiger Hill", "Mirik Lake"}, Description: "Gateway to Himalayas"},
	{Code: "LKO", Name: "Chaudhary Charan Singh International", City: "Lucknow", Country: "India", Lat: 26.7606, Lng: 80.8893, Type: domain.AirportDomestic, Attractions: []string{"Bara Imambara", "Rumi Darwaza", "British Residency"}, Description: "City of Nawabs"},
}

// byCode indexes the table by uppercase IATA code for O(1) lookup.
var byCode = func() map[string]*domain.Airport {
	m := make(map[string]*domain.Airport, len(airports))
	for i := range airports {
		m[airports[i].Code] = &airports[i]
	}
	return m
}()

// Lookup returns the airport with the given IATA code.
// Matching is case-insensitive. The boolean result is the not-found
// signal; Lookup never returns an error so callers can render a fallback.
func Lookup(code string) (domain.Airport, bool) {
	a, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return domain.Airport{}, false
	}
	return *a, true
}

// All returns every airport in table insertion order.
func All() []domain.Airport {
	out := make([]domain.Airport, len(airports))
	copy(out, airports)
	return out
}

// ListByType returns the airports of the given type, preserving table
// insertion order.
func ListByType(t domain.AirportType) []domain.Airport {
	out := make([]domain.Airport, 0, len(airports))
	for _, a := range airports {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

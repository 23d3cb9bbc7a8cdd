// Package content serves the static informational data of the site:
// promotional offers, seasonal deals and the FAQ. Like the airport
// catalog, the tables are baked in at build time and read-only.
package content

import "strings"

// Offer is a promotional fare discount redeemable with a promo code.
type Offer struct {
	// Title is the display name of the offer
	Title string `json:"title"`

	// Description is a one-line pitch
	Description string `json:"description"`

	// ValidUntil is the human-readable expiry ("Ongoing" if open-ended)
	ValidUntil string `json:"validUntil"`

	// Discount is the display discount label (e.g., "40% OFF")
	Discount string `json:"discount"`

	// Destinations lists the routes or cities the offer applies to
	Destinations []string `json:"destinations"`

	// Code is the promo code, unique across offers
	Code string `json:"code"`
}

// SeasonalDeal is a themed discount window on a group of routes.
type SeasonalDeal struct {
	Season   string `json:"season"`
	Routes   string `json:"routes"`
	Discount string `json:"discount"`
	Period   string `json:"period"`
}

var offers = []Offer{
	{
		Title:        "Holiday Season Special",
		Description:  "Get up to 40% off on international flights",
		ValidUntil:   "Dec 31, 2025",
		Discount:     "40% OFF",
		Destinations: []string{"Paris", "London", "New York"},
		Code:         "HOLIDAY40",
	},
	{
		Title:        "New Year Sale",
		Description:  "Start the year with amazing travel deals",
		ValidUntil:   "Jan 15, 2026",
		Discount:     "35% OFF",
		Destinations: []string{"Dubai", "Singapore", "Tokyo"},
		Code:         "NEWYEAR35",
	},
	{
		Title:        "Summer Escape",
		Description:  "Beat the heat with cool beach destinations",
		ValidUntil:   "Aug 31, 2026",
		Discount:     "30% OFF",
		Destinations: []string{"Maldives", "Bali", "Phuket"},
		Code:         "SUMMER30",
	},
	{
		Title:        "Weekend Getaway",
		Description:  "Special rates for weekend travelers",
		ValidUntil:   "Ongoing",
		Discount:     "25% OFF",
		Destinations: []string{"All Domestic Routes"},
		Code:         "WEEKEND25",
	},
}

var seasonalDeals = []SeasonalDeal{
	{Season: "Winter Wonderland", Routes: "Europe & North America", Discount: "Up to 50% off", Period: "Dec 2025 - Feb 2026"},
	{Season: "Spring Break", Routes: "Caribbean & Mexico", Discount: "Up to 45% off", Period: "Mar 2026 - Apr 2026"},
	{Season: "Monsoon Madness", Routes: "Southeast Asia", Discount: "Up to 40% off", Period: "Jun 2026 - Sep 2026"},
	{Season: "Festival of Lights", Routes: "India & Middle East", Discount: "Up to 35% off", Period: "Oct 2026 - Nov 2026"},
}

// Offers returns all promotional offers in display order.
func Offers() []Offer {
	out := make([]Offer, len(offers))
	copy(out, offers)
	return out
}

// SeasonalDeals returns all seasonal deals in display order.
func SeasonalDeals() []SeasonalDeal {
	out := make([]SeasonalDeal, len(seasonalDeals))
	copy(out, seasonalDeals)
	return out
}

// OfferByCode returns the offer with the given promo code.
// Matching is case-insensitive; the boolean result is the not-found signal.
func OfferByCode(code string) (Offer, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, o := range offers {
		if o.Code == code {
			return o, true
		}
	}
	return Offer{}, false
}

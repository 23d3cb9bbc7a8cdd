package content

// FAQEntry is a single question/answer pair on the FAQ page.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqs = []FAQEntry{
	{
		Question: "How do I book a flight?",
		Answer:   "Simply enter your departure and destination cities in the search form on our homepage, select your preferred dates, and click search. You'll see available flights and can complete your booking in just a few clicks.",
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We accept all major credit cards (Visa, MasterCard, American Express), debit cards, PayPal, and various digital wallets. All transactions are secured with industry-standard encryption.",
	},
	{
		Question: "Can I change or cancel my booking?",
		Answer:   "Yes, you can modify or cancel your booking through the 'My Bookings' section. Cancellation fees and change fees vary depending on the fare type and airline policy. Flexible fares typically allow free changes.",
	},
	{
		Question: "What is your baggage policy?",
		Answer:   "Baggage allowances vary by airline and fare class. Economy class typically includes 1 carry-on bag and 1 checked bag (up to 23kg). Business and First class passengers usually receive additional allowances. Check your booking confirmation for specific details.",
	},
	{
		Question: "How early should I arrive at the airport?",
		Answer:   "We recommend arriving at least 2 hours before domestic flights and 3 hours before international flights. This allows sufficient time for check-in, security screening, and boarding.",
	},
	{
		Question: "Do you offer travel insurance?",
		Answer:   "Yes, we offer comprehensive travel insurance options during the booking process. Coverage includes trip cancellation, medical emergencies, lost baggage, and flight delays.",
	},
	{
		Question: "What if my flight is delayed or cancelled?",
		Answer:   "In case of delays or cancellations, we'll notify you immediately via email and SMS. You'll be automatically rebooked on the next available flight, or you can request a full refund if you prefer not to travel.",
	},
	{
		Question: "Can I select my seat in advance?",
		Answer:   "Yes, seat selection is available during booking or anytime before your flight through 'My Bookings'. Some premium seats may require an additional fee, while standard seat selection is free for most fares.",
	},
	{
		Question: "Do you have a mobile app?",
		Answer:   "Yes, our mobile app is available for iOS and Android. You can search flights, manage bookings, check-in online, and receive real-time flight updates. Download it from the App Store or Google Play.",
	},
	{
		Question: "How do I add special meal requests?",
		Answer:   "Special meal requests (vegetarian, vegan, kosher, halal, etc.) can be added during booking or by contacting our customer service at least 24 hours before departure.",
	},
}

// FAQs returns all FAQ entries in display order.
func FAQs() []FAQEntry {
	out := make([]FAQEntry, len(faqs))
	copy(out, faqs)
	return out
}

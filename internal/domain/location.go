package domain

// Location is a pickup/dropoff point. AirportDelivery marks locations where
// the airport-delivery add-on is available; selecting a pickup location
// without it force-deselects that add-on in the draft.
type Location struct {
	ID              string `json:"id"` // stable slug, e.g. "tirana-airport"
	Name            string `json:"name"`
	AirportDelivery bool   `json:"airport_delivery"`
	Active          bool   `json:"active"`
}

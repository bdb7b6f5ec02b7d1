package domain

// AdditionalService is a purchasable booking add-on (GPS, child seat, ...).
// Catalog rows are reference data; bookings never keep a live reference to
// them, only a ServiceSnapshot value copy.
type AdditionalService struct {
	ID          string `json:"id"` // stable slug, e.g. "child-seat"
	Name        string `json:"name"`
	PricePerDay int64  `json:"price_per_day"`
	// IsIncluded services show up in the catalog but contribute zero cost
	// regardless of their listed price.
	IsIncluded bool `json:"is_included"`
	// QuantityCapable marks services that may be selected more than once
	// (currently only the child seat, but the flag is data, not code).
	QuantityCapable bool   `json:"quantity_capable"`
	MaxQuantity     int32  `json:"max_quantity"`
	Icon            string `json:"icon"`
	Active          bool   `json:"active"`
	CreatedOn       string `json:"created_on"`
	UpdatedOn       string `json:"updated_on"`
}

// ServiceSnapshot is the value copy of a service stored on a booking at the
// moment it is priced. Later catalog edits must never change what a past
// booking was charged, so the snapshot carries everything valuation needs.
type ServiceSnapshot struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PricePerDay     int64  `json:"price_per_day"`
	IsIncluded      bool   `json:"is_included"`
	QuantityCapable bool   `json:"quantity_capable"`
	Quantity        int32  `json:"quantity"`
}

// Snapshot copies the catalog row into booking-embedded form. Quantity is
// clamped to at least 1 and ignored for non-quantity-capable services.
func (s *AdditionalService) Snapshot(quantity int32) ServiceSnapshot {
	if quantity < 1 || !s.QuantityCapable {
		quantity = 1
	}
	if s.QuantityCapable && s.MaxQuantity > 0 && quantity > s.MaxQuantity {
		quantity = s.MaxQuantity
	}
	return ServiceSnapshot{
		ID:              s.ID,
		Name:            s.Name,
		PricePerDay:     s.PricePerDay,
		IsIncluded:      s.IsIncluded,
		QuantityCapable: s.QuantityCapable,
		Quantity:        quantity,
	}
}

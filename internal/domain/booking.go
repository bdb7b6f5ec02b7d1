package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID        int32  `json:"id"`
	Reference string `json:"reference"`

	VehicleID int32 `json:"vehicle_id"`
	// Vehicle snapshot fields — captured from the vehicle at submission
	// time. Totals are derived from these, not from live catalog prices.
	VehicleName        string `json:"vehicle_name"`
	VehiclePricePerDay int64  `json:"vehicle_price_per_day"`

	StartDate       string `json:"start_date"` // yyyy-mm-dd
	EndDate         string `json:"end_date"`   // yyyy-mm-dd
	PickupLocation  string `json:"pickup_location"`
	DropoffLocation string `json:"dropoff_location"`

	// Value copies of the selected add-ons, stored embedded on the row.
	Services []ServiceSnapshot `json:"services"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	// Server-computed, authoritative. Client-supplied totals are never
	// persisted.
	TotalDays     int64 `json:"total_days"`
	Subtotal      int64 `json:"subtotal"`
	ServicesTotal int64 `json:"services_total"`
	TotalPrice    int64 `json:"total_price"`
	// Operator-entered final price. When set it is the price of record and
	// TotalPrice equals it; the computed fields above remain for audit.
	TotalPriceOverride *int64 `json:"total_price_override,omitempty"`

	Status   BookingStatus `json:"status"`
	IsManual bool          `json:"is_manual"` // created by staff, not a public submission
	IsEdited bool          `json:"is_edited"` // mutated by staff after creation
	Notes    string        `json:"notes"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

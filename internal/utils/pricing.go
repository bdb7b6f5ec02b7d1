package utils

import (
	"time"

	"carrental-backend/internal/domain"
)

// Quote is the full valuation of a booking: day count, vehicle subtotal,
// add-on services total, and their sum. Amounts are whole currency units.
type Quote struct {
	Days          int64
	Subtotal      int64
	ServicesTotal int64
	TotalPrice    int64
}

// RentalDays returns the chargeable day count between two calendar dates.
// Partial days round up, and any zero or negative span floors to 1 so that
// a same-day (or momentarily inverted, mid-edit) range still prices as one
// day instead of producing a zero or negative charge. Range sanity is the
// validation layer's job, not this function's.
func RentalDays(start, end time.Time) int64 {
	start = truncateToDate(start)
	end = truncateToDate(end)

	days := int64(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// RentalDaysStr is RentalDays over yyyy-mm-dd strings, the format booking
// rows store dates in. Unparseable input falls back to the 1-day floor.
func RentalDaysStr(startDate, endDate string) int64 {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 1
	}
	return RentalDays(start, end)
}

// ServiceCost returns a single selected service's contribution to the
// services total. Included services cost nothing regardless of their listed
// price. Quantity multiplies the cost only for quantity-capable services;
// for everything else the effective quantity is 1.
func ServiceCost(svc domain.ServiceSnapshot, days int64) int64 {
	if svc.IsIncluded {
		return 0
	}
	qty := int64(1)
	if svc.QuantityCapable && svc.Quantity > 1 {
		qty = int64(svc.Quantity)
	}
	return svc.PricePerDay * days * qty
}

// Valuate prices a booking from first principles: the vehicle's day rate,
// the chargeable day count, and the selected service snapshots. Pure and
// deterministic; both the draft store and the submission gate call this,
// which is what keeps client display and persisted totals from diverging.
func Valuate(pricePerDay, days int64, services []domain.ServiceSnapshot) Quote {
	subtotal := pricePerDay * days

	var servicesTotal int64
	for _, svc := range services {
		servicesTotal += ServiceCost(svc, days)
	}

	return Quote{
		Days:          days,
		Subtotal:      subtotal,
		ServicesTotal: servicesTotal,
		TotalPrice:    subtotal + servicesTotal,
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

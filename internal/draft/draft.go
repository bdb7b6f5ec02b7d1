package draft

import (
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/utils"
)

// AirportDeliveryServiceID is the add-on that is only offered when the
// pickup location supports airport delivery.
const AirportDeliveryServiceID = "airport-delivery"

// Draft is a reservation in progress. It is an explicit state container:
// callers hold one per browsing session and mutate it only through the
// methods below, each of which synchronously recomputes the derived totals,
// so a reader can never observe a draft whose totals disagree with its
// inputs. Drafts are confined to a single goroutine and do no locking.
type Draft struct {
	Vehicle         *domain.Vehicle
	StartDate       time.Time
	EndDate         time.Time
	PickupLocation  *domain.Location
	DropoffLocation *domain.Location
	// Selected add-ons, unique by id, in selection order.
	Services []domain.ServiceSnapshot
	// Operator-entered final price. Cleared whenever the service selection
	// changes so a stale manual number can't survive a changed basket.
	PriceOverride *int64

	// Derived by recompute; zero until a vehicle and dates are chosen.
	TotalDays     int64
	Subtotal      int64
	ServicesTotal int64
	TotalPrice    int64
}

func New() *Draft {
	return &Draft{}
}

func (d *Draft) SetVehicle(v *domain.Vehicle) {
	d.Vehicle = v
	d.recompute()
}

func (d *Draft) SetDates(start, end time.Time) {
	d.StartDate = start
	d.EndDate = end
	d.recompute()
}

// SetPickupLocation records the pickup point and enforces the location rule:
// an airport-delivery selection cannot outlive a pickup location that does
// not support it. The check runs on every call, not just the first.
func (d *Draft) SetPickupLocation(loc *domain.Location) {
	d.PickupLocation = loc
	if loc == nil || !loc.AirportDelivery {
		if d.removeService(AirportDeliveryServiceID) {
			d.PriceOverride = nil
			d.recompute()
		}
	}
}

func (d *Draft) SetDropoffLocation(loc *domain.Location) {
	d.DropoffLocation = loc
}

// ToggleService adds the service if absent and removes it if present. Either
// way the selection changed, so any manual price override is cleared and the
// totals recomputed.
func (d *Draft) ToggleService(svc *domain.AdditionalService, quantity int32) {
	if !d.removeService(svc.ID) {
		d.Services = append(d.Services, svc.Snapshot(quantity))
	}
	d.PriceOverride = nil
	d.recompute()
}

// RemoveService drops a service by id. A no-op (and override-preserving) if
// the service was not selected.
func (d *Draft) RemoveService(id string) {
	if d.removeService(id) {
		d.PriceOverride = nil
		d.recompute()
	}
}

// HasService reports whether the service is currently selected.
func (d *Draft) HasService(id string) bool {
	for _, s := range d.Services {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SetPriceOverride records an operator-entered final price. Negative values
// are ignored; the gate rejects them too, this just keeps the draft sane.
func (d *Draft) SetPriceOverride(price int64) {
	if price < 0 {
		return
	}
	p := price
	d.PriceOverride = &p
}

func (d *Draft) ClearPriceOverride() {
	d.PriceOverride = nil
}

// EffectiveTotal is the price of record for display: the override when one
// is set, the computed total otherwise.
func (d *Draft) EffectiveTotal() int64 {
	if d.PriceOverride != nil {
		return *d.PriceOverride
	}
	return d.TotalPrice
}

// Reset returns the draft to its initial empty state.
func (d *Draft) Reset() {
	*d = Draft{}
}

func (d *Draft) removeService(id string) bool {
	for i, s := range d.Services {
		if s.ID == id {
			d.Services = append(d.Services[:i], d.Services[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Draft) recompute() {
	if d.Vehicle == nil || d.StartDate.IsZero() || d.EndDate.IsZero() {
		d.TotalDays = 0
		d.Subtotal = 0
		d.ServicesTotal = 0
		d.TotalPrice = 0
		return
	}

	q := utils.Valuate(d.Vehicle.PricePerDay, utils.RentalDays(d.StartDate, d.EndDate), d.Services)
	d.TotalDays = q.Days
	d.Subtotal = q.Subtotal
	d.ServicesTotal = q.ServicesTotal
	d.TotalPrice = q.TotalPrice
}

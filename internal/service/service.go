package service

import (
	"context"

	"carrental-backend/internal/domain"
)

// BookingSubmission is what a caller is allowed to tell the gate about a
// booking. It deliberately has no total/subtotal fields: client-computed
// prices never enter the code path that persists, they are re-derived from
// the vehicle's stored rate.
type BookingSubmission struct {
	VehicleID       int32
	StartDate       string // yyyy-mm-dd
	EndDate         string // yyyy-mm-dd
	PickupLocation  string
	DropoffLocation string
	// Snapshot copies of the selected add-ons as the client chose them from
	// a freshly fetched catalog. The gate prices these as submitted; it does
	// not re-resolve them against the live catalog.
	Services []domain.ServiceSnapshot

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string

	// Admin-only fields. The public HTTP payload type does not carry them.
	TotalPriceOverride *int64
	Status             domain.BookingStatus
	IsManual           bool
}

type BookingService interface {
	Create(ctx context.Context, sub *BookingSubmission) (*domain.Booking, error)
	Update(ctx context.Context, id int32, sub *BookingSubmission) (*domain.Booking, error)
	ChangeStatus(ctx context.Context, id int32, status domain.BookingStatus) (*domain.Booking, error)
	Get(ctx context.Context, id int32) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type CatalogService interface {
	ListVehicles(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error)
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	GetVehicleBySlug(ctx context.Context, slug string) (*domain.Vehicle, error)
	AddVehicle(ctx context.Context, v *domain.Vehicle) error
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int32) error

	ListActiveServices(ctx context.Context) ([]domain.AdditionalService, error)
	ListAllServices(ctx context.Context) ([]domain.AdditionalService, error)
	AddService(ctx context.Context, svc *domain.AdditionalService) error
	UpdateService(ctx context.Context, svc *domain.AdditionalService) error

	ListLocations(ctx context.Context) ([]domain.Location, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, booking *domain.Booking) error
}

// CacheInvalidator is the downstream view-revalidation hook: booking lists
// and dashboards cached outside this process are refreshed through it after
// a successful write. Failures are advisory.
type CacheInvalidator interface {
	InvalidateBookings(ctx context.Context)
}

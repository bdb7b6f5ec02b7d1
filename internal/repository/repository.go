package repository

import (
	"context"
	"errors"

	"carrental-backend/internal/domain"
)

// ErrNotFound is returned by Get* methods when no row matches.
var ErrNotFound = errors.New("record not found")

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.AdditionalService) error
	GetByID(ctx context.Context, id string) (*domain.AdditionalService, error)
	Update(ctx context.Context, svc *domain.AdditionalService) error
	ListActive(ctx context.Context) ([]domain.AdditionalService, error)
	ListAll(ctx context.Context) ([]domain.AdditionalService, error)
}

type LocationRepository interface {
	ListActive(ctx context.Context) ([]domain.Location, error)
	GetByID(ctx context.Context, id string) (*domain.Location, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	CompleteFinished(ctx context.Context, before string) (int64, error)
	CancelStalePending(ctx context.Context, createdBefore string) (int64, error)
}

type AdminUserRepository interface {
	Create(ctx context.Context, u *domain.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetByID(ctx context.Context, id int32) (*domain.AdminUser, error)
}

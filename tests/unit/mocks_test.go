package unit

import (
	"context"

	"carrental-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) GetBySlug(ctx context.Context, slug string) (*domain.Vehicle, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, onlyAvailable, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockServiceRepo
type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) Create(ctx context.Context, svc *domain.AdditionalService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}
func (m *MockServiceRepo) GetByID(ctx context.Context, id string) (*domain.AdditionalService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdditionalService), args.Error(1)
}
func (m *MockServiceRepo) Update(ctx context.Context, svc *domain.AdditionalService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}
func (m *MockServiceRepo) ListActive(ctx context.Context) ([]domain.AdditionalService, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdditionalService), args.Error(1)
}
func (m *MockServiceRepo) ListAll(ctx context.Context) ([]domain.AdditionalService, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdditionalService), args.Error(1)
}

// MockLocationRepo
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) ListActive(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}
func (m *MockLocationRepo) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) CompleteFinished(ctx context.Context, before string) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockBookingRepo) CancelStalePending(ctx context.Context, createdBefore string) (int64, error) {
	args := m.Called(ctx, createdBefore)
	return args.Get(0).(int64), args.Error(1)
}

// MockAdminUserRepo
type MockAdminUserRepo struct {
	mock.Mock
}

func (m *MockAdminUserRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockAdminUserRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}
func (m *MockAdminUserRepo) GetByID(ctx context.Context, id int32) (*domain.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// MockCacheInvalidator
type MockCacheInvalidator struct {
	mock.Mock
}

func (m *MockCacheInvalidator) InvalidateBookings(ctx context.Context) {
	m.Called(ctx)
}

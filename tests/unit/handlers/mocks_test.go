package handlers

import (
	"context"
	"io"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, sub *service.BookingSubmission) (*domain.Booking, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) Update(ctx context.Context, id int32, sub *service.BookingSubmission) (*domain.Booking, error) {
	args := m.Called(ctx, id, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ChangeStatus(ctx context.Context, id int32, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) Get(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListVehicles(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, onlyAvailable, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}
func (m *MockCatalogService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockCatalogService) GetVehicleBySlug(ctx context.Context, slug string) (*domain.Vehicle, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockCatalogService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockCatalogService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockCatalogService) DeleteVehicle(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCatalogService) ListActiveServices(ctx context.Context) ([]domain.AdditionalService, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdditionalService), args.Error(1)
}
func (m *MockCatalogService) ListAllServices(ctx context.Context) ([]domain.AdditionalService, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AdditionalService), args.Error(1)
}
func (m *MockCatalogService) AddService(ctx context.Context, svc *domain.AdditionalService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}
func (m *MockCatalogService) UpdateService(ctx context.Context, svc *domain.AdditionalService) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}
func (m *MockCatalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

// MockVehicleImageService
type MockVehicleImageService struct {
	mock.Mock
}

func (m *MockVehicleImageService) UploadVehicleImage(ctx context.Context, vehicleID int32, r io.Reader) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleImageService) OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.AdminUser), args.Error(2)
}

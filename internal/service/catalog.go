package service

import (
	"context"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type catalogService struct {
	vehicleRepo  repository.VehicleRepository
	serviceRepo  repository.ServiceRepository
	locationRepo repository.LocationRepository
}

func NewCatalogService(
	vehicleRepo repository.VehicleRepository,
	serviceRepo repository.ServiceRepository,
	locationRepo repository.LocationRepository,
) CatalogService {
	return &catalogService{
		vehicleRepo:  vehicleRepo,
		serviceRepo:  serviceRepo,
		locationRepo: locationRepo,
	}
}

func (s *catalogService) ListVehicles(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.vehicleRepo.List(ctx, onlyAvailable, page, pageSize)
}

func (s *catalogService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrVehicleNotFound
	}
	return v, err
}

func (s *catalogService) GetVehicleBySlug(ctx context.Context, slug string) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrVehicleNotFound
	}
	return v, err
}

func (s *catalogService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	return s.vehicleRepo.Create(ctx, v)
}

func (s *catalogService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	return s.vehicleRepo.Update(ctx, v)
}

func (s *catalogService) DeleteVehicle(ctx context.Context, id int32) error {
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *catalogService) ListActiveServices(ctx context.Context) ([]domain.AdditionalService, error) {
	return s.serviceRepo.ListActive(ctx)
}

func (s *catalogService) ListAllServices(ctx context.Context) ([]domain.AdditionalService, error) {
	return s.serviceRepo.ListAll(ctx)
}

func (s *catalogService) AddService(ctx context.Context, svc *domain.AdditionalService) error {
	return s.serviceRepo.Create(ctx, svc)
}

func (s *catalogService) UpdateService(ctx context.Context, svc *domain.AdditionalService) error {
	return s.serviceRepo.Update(ctx, svc)
}

func (s *catalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locationRepo.ListActive(ctx)
}

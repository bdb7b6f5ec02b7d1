package service

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/storage"
)

// VehicleImageService handles fleet photo uploads for the back office.
type VehicleImageService interface {
	UploadVehicleImage(ctx context.Context, vehicleID int32, r io.Reader) (*domain.Vehicle, error)
	OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type vehicleImageService struct {
	vehicleRepo repository.VehicleRepository
	store       storage.ImageStore
}

func NewVehicleImageService(vehicleRepo repository.VehicleRepository, store storage.ImageStore) VehicleImageService {
	return &vehicleImageService{vehicleRepo: vehicleRepo, store: store}
}

func (s *vehicleImageService) UploadVehicleImage(ctx context.Context, vehicleID int32, r io.Reader) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	key, err := s.store.Save(ctx, r)
	if err != nil {
		return nil, err
	}

	// Replace rather than accumulate: drop the previous image if there was one.
	if old := imageKeyFromURL(vehicle.ImageURL); old != "" {
		if err := s.store.Delete(ctx, old); err != nil {
			logger.Warn("failed to delete previous vehicle image", "vehicle_id", vehicleID, "key", old, "error", err)
		}
	}

	vehicle.ImageURL = "/api/images/" + key
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("vehicle image updated", "vehicle_id", vehicleID, "key", key)
	return vehicle, nil
}

func (s *vehicleImageService) OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.store.Open(ctx, key)
}

func imageKeyFromURL(url string) string {
	if !strings.HasPrefix(url, "/api/images/") {
		return ""
	}
	return path.Base(url)
}

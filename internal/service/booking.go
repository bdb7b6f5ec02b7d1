package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	emailSvc    EmailService
	cache       CacheInvalidator
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	emailSvc EmailService,
	cache CacheInvalidator,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		emailSvc:    emailSvc,
		cache:       cache,
	}
}

// Create is the submission gate. Whatever the caller computed for display is
// ignored: the vehicle's current rate is re-read by id, the day count and
// totals re-derived with the same pricing functions the draft uses, and only
// those server-derived numbers are persisted. A rate change between draft
// time and submit time therefore shows up in the persisted total; that is
// accepted behavior, not a defect.
func (s *bookingService) Create(ctx context.Context, sub *BookingSubmission) (*domain.Booking, error) {
	b, err := s.derive(ctx, sub)
	if err != nil {
		return nil, err
	}

	b.Reference = newReference()
	b.Status = domain.BookingStatusPending
	b.IsManual = sub.IsManual
	if sub.IsManual && sub.Status != "" {
		if !domain.ValidBookingStatus(sub.Status) {
			return nil, ErrInvalidStatus
		}
		b.Status = sub.Status
	}

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking created",
		"reference", b.Reference, "vehicle_id", b.VehicleID,
		"days", b.TotalDays, "total", b.TotalPrice, "manual", b.IsManual)

	s.cache.InvalidateBookings(ctx)

	if !b.IsManual && b.CustomerEmail != "" {
		if err := s.emailSvc.SendBookingConfirmation(ctx, b); err != nil {
			logger.Warn("failed to send booking confirmation", "reference", b.Reference, "error", err)
		}
	}

	return b, nil
}

// Update re-runs the gate for an existing booking: the edited payload goes
// through the same authoritative recompute as a fresh submission.
func (s *bookingService) Update(ctx context.Context, id int32, sub *BookingSubmission) (*domain.Booking, error) {
	existing, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	b, err := s.derive(ctx, sub)
	if err != nil {
		return nil, err
	}

	b.ID = existing.ID
	b.Reference = existing.Reference
	b.IsManual = existing.IsManual
	b.IsEdited = true
	b.Status = existing.Status
	if sub.Status != "" {
		if !domain.ValidBookingStatus(sub.Status) {
			return nil, ErrInvalidStatus
		}
		b.Status = sub.Status
	}

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	logger.Info("booking updated", "reference", b.Reference, "total", b.TotalPrice, "override", b.TotalPriceOverride != nil)

	s.cache.InvalidateBookings(ctx)
	return b, nil
}

func (s *bookingService) ChangeStatus(ctx context.Context, id int32, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	s.cache.InvalidateBookings(ctx)
	return s.Get(ctx, id)
}

func (s *bookingService) Get(ctx context.Context, id int32) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (s *bookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByReference(ctx, reference)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (s *bookingService) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.bookingRepo.List(ctx, status, page, pageSize)
}

// derive builds the persistable record from a submission: vehicle re-fetch,
// duration, valuation, override precedence. Nothing is written here.
func (s *bookingService) derive(ctx context.Context, sub *BookingSubmission) (*domain.Booking, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, sub.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to fetch vehicle %d: %w", sub.VehicleID, err)
	}
	if !vehicle.Available && !sub.IsManual {
		return nil, ErrVehicleUnavailable
	}

	days := utils.RentalDaysStr(sub.StartDate, sub.EndDate)
	quote := utils.Valuate(vehicle.PricePerDay, days, sub.Services)

	b := &domain.Booking{
		VehicleID:          vehicle.ID,
		VehicleName:        vehicle.Name,
		VehiclePricePerDay: vehicle.PricePerDay,
		StartDate:          sub.StartDate,
		EndDate:            sub.EndDate,
		PickupLocation:     sub.PickupLocation,
		DropoffLocation:    sub.DropoffLocation,
		Services:           sub.Services,
		CustomerName:       sub.CustomerName,
		CustomerEmail:      sub.CustomerEmail,
		CustomerPhone:      sub.CustomerPhone,
		Notes:              sub.Notes,
		TotalDays:          quote.Days,
		Subtotal:           quote.Subtotal,
		ServicesTotal:      quote.ServicesTotal,
		TotalPrice:         quote.TotalPrice,
	}

	// An operator-entered override becomes the price of record; the
	// computed subtotal and services total stay on the row for audit.
	if sub.TotalPriceOverride != nil {
		if *sub.TotalPriceOverride < 0 {
			return nil, ErrInvalidOverride
		}
		override := *sub.TotalPriceOverride
		b.TotalPriceOverride = &override
		b.TotalPrice = override
	}

	return b, nil
}

func newReference() string {
	// Short, uppercase, URL-safe booking code derived from a v4 UUID.
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

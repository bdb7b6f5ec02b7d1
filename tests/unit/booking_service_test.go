package unit

import (
	"context"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBookingFixture() (*MockBookingRepo, *MockVehicleRepo, *MockEmailService, *MockCacheInvalidator, service.BookingService) {
	bookingRepo := new(MockBookingRepo)
	vehicleRepo := new(MockVehicleRepo)
	emailSvc := new(MockEmailService)
	cache := new(MockCacheInvalidator)
	svc := service.NewBookingService(bookingRepo, vehicleRepo, emailSvc, cache)
	return bookingRepo, vehicleRepo, emailSvc, cache, svc
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	vehicle := &domain.Vehicle{
		ID:          1,
		Slug:        "vw-golf",
		Name:        "VW Golf",
		PricePerDay: 200,
		Available:   true,
	}

	t.Run("Totals Come From Stored Rate, Not The Caller", func(t *testing.T) {
		bookingRepo, vehicleRepo, emailSvc, cache, svc := newBookingFixture()

		vehicleRepo.On("GetByID", ctx, int32(1)).Return(vehicle, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cache.On("InvalidateBookings", ctx).Return()
		emailSvc.On("SendBookingConfirmation", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		// The submission carries no price fields at all. Whatever the browser
		// showed the customer, persisted totals are 200/day * 3 days.
		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID:     1,
			StartDate:     "2026-06-01",
			EndDate:       "2026-06-04",
			CustomerName:  "Ana Ferreira",
			CustomerEmail: "ana@example.com",
		})
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, int64(3), res.TotalDays)
		assert.Equal(t, int64(600), res.Subtotal)
		assert.Equal(t, int64(600), res.TotalPrice)
		assert.Equal(t, "VW Golf", res.VehicleName)
		assert.Equal(t, int64(200), res.VehiclePricePerDay)
		assert.Equal(t, domain.BookingStatusPending, res.Status)
		assert.Regexp(t, `^BK-[0-9A-F]{8}$`, res.Reference)

		emailSvc.AssertNumberOfCalls(t, "SendBookingConfirmation", 1)
		cache.AssertNumberOfCalls(t, "InvalidateBookings", 1)
	})

	t.Run("Included Services Are Free, Quantity Multiplies", func(t *testing.T) {
		bookingRepo, vehicleRepo, emailSvc, cache, svc := newBookingFixture()

		vehicleRepo.On("GetByID", ctx, int32(1)).Return(vehicle, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cache.On("InvalidateBookings", ctx).Return()
		emailSvc.On("SendBookingConfirmation", ctx, mock.Anything).Return(nil)

		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID:     1,
			StartDate:     "2026-06-01",
			EndDate:       "2026-06-03",
			CustomerEmail: "ana@example.com",
			Services: []domain.ServiceSnapshot{
				{ID: "basic-insurance", Name: "Basic Insurance", PricePerDay: 15, IsIncluded: true, Quantity: 1},
				{ID: "child-seat", Name: "Child Seat", PricePerDay: 5, QuantityCapable: true, Quantity: 2},
				{ID: "gps", Name: "GPS", PricePerDay: 10, Quantity: 4}, // not quantity-capable
			},
		})
		assert.NoError(t, err)
		// 2 days: subtotal 400; services 0 + 5*2*2 + 10*2 = 40
		assert.Equal(t, int64(400), res.Subtotal)
		assert.Equal(t, int64(40), res.ServicesTotal)
		assert.Equal(t, int64(440), res.TotalPrice)
		assert.Equal(t, res.Subtotal+res.ServicesTotal, res.TotalPrice)
	})

	t.Run("Same Day Charges One Day", func(t *testing.T) {
		bookingRepo, vehicleRepo, emailSvc, cache, svc := newBookingFixture()

		vehicleRepo.On("GetByID", ctx, int32(1)).Return(vehicle, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cache.On("InvalidateBookings", ctx).Return()
		emailSvc.On("SendBookingConfirmation", ctx, mock.Anything).Return(nil)

		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID:     1,
			StartDate:     "2026-06-01",
			EndDate:       "2026-06-01",
			CustomerEmail: "ana@example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.TotalDays)
		assert.Equal(t, int64(200), res.TotalPrice)
	})

	t.Run("Override Becomes The Price Of Record", func(t *testing.T) {
		bookingRepo, vehicleRepo, _, cache, svc := newBookingFixture()

		vehicleRepo.On("GetByID", ctx, int32(1)).Return(vehicle, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cache.On("InvalidateBookings", ctx).Return()

		override := int64(500)
		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID:          1,
			StartDate:          "2026-06-01",
			EndDate:            "2026-06-04",
			IsManual:           true,
			TotalPriceOverride: &override,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(500), res.TotalPrice)
		// Computed figures survive on the row for audit.
		assert.Equal(t, int64(600), res.Subtotal)
		assert.NotNil(t, res.TotalPriceOverride)
		assert.Equal(t, int64(500), *res.TotalPriceOverride)
	})

	t.Run("Negative Override Rejected", func(t *testing.T) {
		bookingRepo, vehicleRepo, _, _, svc := newBookingFixture()

		vehicleRepo.On("GetByID", ctx, int32(1)).Return(vehicle, nil)

		override := int64(-1)
		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID:          1,
			StartDate:          "2026-06-01",
			EndDate:            "2026-06-04",
			IsManual:           true,
			TotalPriceOverride: &override,
		})
		assert.ErrorIs(t, err, service.ErrInvalidOverride)
		assert.Nil(t, res)
		bookingRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unknown Vehicle", func(t *testing.T) {
		bookingRepo, vehicleRepo, _, _, svc := newBookingFixture()

		vehicleRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID: 99,
			StartDate: "2026-06-01",
			EndDate:   "2026-06-04",
		})
		assert.ErrorIs(t, err, service.ErrVehicleNotFound)
		assert.Nil(t, res)
		bookingRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unavailable Vehicle Blocks Public, Not Manual", func(t *testing.T) {
		bookingRepo, vehicleRepo, _, cache, svc := newBookingFixture()

		parked := &domain.Vehicle{ID: 2, Name: "Fiat 500", PricePerDay: 100, Available: false}
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(parked, nil)

		_, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID: 2,
			StartDate: "2026-06-01",
			EndDate:   "2026-06-02",
		})
		assert.ErrorIs(t, err, service.ErrVehicleUnavailable)

		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cache.On("InvalidateBookings", ctx).Return()

		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID: 2,
			StartDate: "2026-06-01",
			EndDate:   "2026-06-02",
			IsManual:  true,
		})
		assert.NoError(t, err)
		assert.True(t, res.IsManual)
	})

	t.Run("Manual Creation With Confirmed Status", func(t *testing.T) {
		bookingRepo, vehicleRepo, emailSvc, cache, svc := newBookingFixture()

		vehicleRepo.On("GetByID", ctx, int32(1)).Return(vehicle, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cache.On("InvalidateBookings", ctx).Return()

		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID:     1,
			StartDate:     "2026-06-01",
			EndDate:       "2026-06-04",
			CustomerEmail: "walkin@example.com",
			IsManual:      true,
			Status:        domain.BookingStatusConfirmed,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
		// No confirmation mail for operator-entered bookings.
		emailSvc.AssertNotCalled(t, "SendBookingConfirmation")
	})

	t.Run("Email Failure Does Not Fail The Booking", func(t *testing.T) {
		bookingRepo, vehicleRepo, emailSvc, cache, svc := newBookingFixture()

		vehicleRepo.On("GetByID", ctx, int32(1)).Return(vehicle, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cache.On("InvalidateBookings", ctx).Return()
		emailSvc.On("SendBookingConfirmation", ctx, mock.Anything).Return(assert.AnError)

		res, err := svc.Create(ctx, &service.BookingSubmission{
			VehicleID:     1,
			StartDate:     "2026-06-01",
			EndDate:       "2026-06-02",
			CustomerEmail: "ana@example.com",
		})
		assert.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestBookingService_Update(t *testing.T) {
	ctx := context.Background()

	existing := &domain.Booking{
		ID:        7,
		Reference: "BK-AAAA1111",
		VehicleID: 1,
		Status:    domain.BookingStatusConfirmed,
		IsManual:  true,
	}

	t.Run("Edit Re-Derives And Marks Edited", func(t *testing.T) {
		bookingRepo, vehicleRepo, _, cache, svc := newBookingFixture()

		// Rate went up since the original booking; the edit prices at today's rate.
		vehicleRepo.On("GetByID", ctx, int32(1)).Return(&domain.Vehicle{
			ID: 1, Name: "VW Golf", PricePerDay: 250, Available: true,
		}, nil)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(existing, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		cache.On("InvalidateBookings", ctx).Return()

		res, err := svc.Update(ctx, 7, &service.BookingSubmission{
			VehicleID: 1,
			StartDate: "2026-06-01",
			EndDate:   "2026-06-03",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(500), res.TotalPrice)
		assert.Equal(t, "BK-AAAA1111", res.Reference)
		assert.True(t, res.IsEdited)
		assert.True(t, res.IsManual)
		assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
	})

	t.Run("Unknown Booking", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()

		bookingRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		res, err := svc.Update(ctx, 99, &service.BookingSubmission{VehicleID: 1})
		assert.ErrorIs(t, err, service.ErrBookingNotFound)
		assert.Nil(t, res)
	})
}

func TestBookingService_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookingRepo, _, _, cache, svc := newBookingFixture()

		bookingRepo.On("UpdateStatus", ctx, int32(7), domain.BookingStatusCancelled).Return(nil)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(&domain.Booking{
			ID: 7, Status: domain.BookingStatusCancelled,
		}, nil)
		cache.On("InvalidateBookings", ctx).Return()

		res, err := svc.ChangeStatus(ctx, 7, domain.BookingStatusCancelled)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, res.Status)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()

		res, err := svc.ChangeStatus(ctx, 7, domain.BookingStatus("SHIPPED"))
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
		assert.Nil(t, res)
		bookingRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Unknown Booking", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()

		bookingRepo.On("UpdateStatus", ctx, int32(99), domain.BookingStatusConfirmed).Return(repository.ErrNotFound)

		res, err := svc.ChangeStatus(ctx, 99, domain.BookingStatusConfirmed)
		assert.ErrorIs(t, err, service.ErrBookingNotFound)
		assert.Nil(t, res)
	})
}

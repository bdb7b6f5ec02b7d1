package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.ServiceRepository
	repository.LocationRepository
	repository.BookingRepository
	repository.AdminUserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		VehicleRepository:   NewVehicleRepository(db),
		ServiceRepository:   NewServiceRepository(db),
		LocationRepository:  NewLocationRepository(db),
		BookingRepository:   NewBookingRepository(db),
		AdminUserRepository: NewAdminUserRepository(db),
	}
}

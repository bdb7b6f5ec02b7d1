package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type locationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) ListActive(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT id, name, airport_delivery, active FROM locations WHERE active = true ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.AirportDelivery, &loc.Active); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	loc := &domain.Location{}
	query := `SELECT id, name, airport_delivery, active FROM locations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&loc.ID, &loc.Name, &loc.AirportDelivery, &loc.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return loc, nil
}

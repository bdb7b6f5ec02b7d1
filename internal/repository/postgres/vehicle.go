package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, slug, name, category, seats, COALESCE(transmission, ''), price_per_day, available, COALESCE(image_url, ''), created_on, updated_on, deleted_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (slug, name, category, seats, transmission, price_per_day, available, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, v.Slug, v.Name, v.Category, v.Seats, v.Transmission, v.PricePerDay, v.Available, v.ImageURL, now, now).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Slug, &v.Name, &v.Category, &v.Seats, &v.Transmission, &v.PricePerDay, &v.Available, &v.ImageURL, &v.CreatedOn, &v.UpdatedOn, &v.DeletedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE slug = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, slug).Scan(&v.ID, &v.Slug, &v.Name, &v.Category, &v.Seats, &v.Transmission, &v.PricePerDay, &v.Available, &v.ImageURL, &v.CreatedOn, &v.UpdatedOn, &v.DeletedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET slug=$1, name=$2, category=$3, seats=$4, transmission=$5, price_per_day=$6, available=$7, image_url=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, v.Slug, v.Name, v.Category, v.Seats, v.Transmission, v.PricePerDay, v.Available, v.ImageURL, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	query := `UPDATE vehicles SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, onlyAvailable bool, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE deleted_on IS NULL`
	if onlyAvailable {
		query += ` AND available = true`
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY name LIMIT $1 OFFSET $2"
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Slug, &v.Name, &v.Category, &v.Seats, &v.Transmission, &v.PricePerDay, &v.Available, &v.ImageURL, &v.CreatedOn, &v.UpdatedOn, &v.DeletedOn); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}

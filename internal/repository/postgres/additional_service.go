package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type serviceRepository struct {
	db *sql.DB
}

func NewServiceRepository(db *sql.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

const serviceColumns = `id, name, price_per_day, is_included, quantity_capable, max_quantity, COALESCE(icon, ''), active, created_on, updated_on`

func (r *serviceRepository) Create(ctx context.Context, svc *domain.AdditionalService) error {
	query := `INSERT INTO additional_services (id, name, price_per_day, is_included, quantity_capable, max_quantity, icon, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, svc.ID, svc.Name, svc.PricePerDay, svc.IsIncluded, svc.QuantityCapable, svc.MaxQuantity, svc.Icon, svc.Active, now, now)
	return err
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.AdditionalService, error) {
	svc := &domain.AdditionalService{}
	query := `SELECT ` + serviceColumns + ` FROM additional_services WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&svc.ID, &svc.Name, &svc.PricePerDay, &svc.IsIncluded, &svc.QuantityCapable, &svc.MaxQuantity, &svc.Icon, &svc.Active, &svc.CreatedOn, &svc.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.AdditionalService) error {
	query := `UPDATE additional_services SET name=$1, price_per_day=$2, is_included=$3, quantity_capable=$4, max_quantity=$5, icon=$6, active=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, svc.Name, svc.PricePerDay, svc.IsIncluded, svc.QuantityCapable, svc.MaxQuantity, svc.Icon, svc.Active, time.Now(), svc.ID)
	return err
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]domain.AdditionalService, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM additional_services WHERE active = true ORDER BY name`)
}

func (r *serviceRepository) ListAll(ctx context.Context) ([]domain.AdditionalService, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM additional_services ORDER BY name`)
}

func (r *serviceRepository) list(ctx context.Context, query string) ([]domain.AdditionalService, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.AdditionalService
	for rows.Next() {
		var svc domain.AdditionalService
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.PricePerDay, &svc.IsIncluded, &svc.QuantityCapable, &svc.MaxQuantity, &svc.Icon, &svc.Active, &svc.CreatedOn, &svc.UpdatedOn); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

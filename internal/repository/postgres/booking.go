package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, reference, vehicle_id, vehicle_name, vehicle_price_per_day, start_date, end_date,
	pickup_location, dropoff_location, services, customer_name, COALESCE(customer_email, ''), COALESCE(customer_phone, ''),
	total_days, subtotal, services_total, total_price, total_price_override, status, is_manual, is_edited, COALESCE(notes, ''),
	created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	services, err := marshalServices(b.Services)
	if err != nil {
		return err
	}
	query := `INSERT INTO bookings (reference, vehicle_id, vehicle_name, vehicle_price_per_day, start_date, end_date,
	              pickup_location, dropoff_location, services, customer_name, customer_email, customer_phone,
	              total_days, subtotal, services_total, total_price, total_price_override, status, is_manual, is_edited, notes,
	              created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	          RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		b.Reference, b.VehicleID, b.VehicleName, b.VehiclePricePerDay, b.StartDate, b.EndDate,
		b.PickupLocation, b.DropoffLocation, services, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.TotalDays, b.Subtotal, b.ServicesTotal, b.TotalPrice, b.TotalPriceOverride, b.Status, b.IsManual, b.IsEdited, b.Notes,
		now, now,
	).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`
	return r.get(ctx, query, reference)
}

func (r *bookingRepository) get(ctx context.Context, query string, arg interface{}) (*domain.Booking, error) {
	b := &domain.Booking{}
	var services []byte
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&b.ID, &b.Reference, &b.VehicleID, &b.VehicleName, &b.VehiclePricePerDay, &b.StartDate, &b.EndDate,
		&b.PickupLocation, &b.DropoffLocation, &services, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.TotalDays, &b.Subtotal, &b.ServicesTotal, &b.TotalPrice, &b.TotalPriceOverride, &b.Status, &b.IsManual, &b.IsEdited, &b.Notes,
		&b.CreatedOn, &b.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if b.Services, err = unmarshalServices(services); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	services, err := marshalServices(b.Services)
	if err != nil {
		return err
	}
	query := `UPDATE bookings SET vehicle_id=$1, vehicle_name=$2, vehicle_price_per_day=$3, start_date=$4, end_date=$5,
	              pickup_location=$6, dropoff_location=$7, services=$8, customer_name=$9, customer_email=$10, customer_phone=$11,
	              total_days=$12, subtotal=$13, services_total=$14, total_price=$15, total_price_override=$16,
	              status=$17, is_edited=$18, notes=$19, updated_on=$20
	          WHERE id=$21`
	_, err = r.db.ExecContext(ctx, query,
		b.VehicleID, b.VehicleName, b.VehiclePricePerDay, b.StartDate, b.EndDate,
		b.PickupLocation, b.DropoffLocation, services, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.TotalDays, b.Subtotal, b.ServicesTotal, b.TotalPrice, b.TotalPriceOverride,
		b.Status, b.IsEdited, b.Notes, time.Now(), b.ID,
	)
	return err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var services []byte
		if err := rows.Scan(
			&b.ID, &b.Reference, &b.VehicleID, &b.VehicleName, &b.VehiclePricePerDay, &b.StartDate, &b.EndDate,
			&b.PickupLocation, &b.DropoffLocation, &services, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
			&b.TotalDays, &b.Subtotal, &b.ServicesTotal, &b.TotalPrice, &b.TotalPriceOverride, &b.Status, &b.IsManual, &b.IsEdited, &b.Notes,
			&b.CreatedOn, &b.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		if b.Services, err = unmarshalServices(services); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, count, rows.Err()
}

func (r *bookingRepository) CompleteFinished(ctx context.Context, before string) (int64, error) {
	query := `UPDATE bookings SET status=$1, updated_on=$2 WHERE status=$3 AND end_date < $4`
	res, err := r.db.ExecContext(ctx, query, domain.BookingStatusCompleted, time.Now(), domain.BookingStatusConfirmed, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) CancelStalePending(ctx context.Context, createdBefore string) (int64, error) {
	query := `UPDATE bookings SET status=$1, updated_on=$2 WHERE status=$3 AND created_on < $4`
	res, err := r.db.ExecContext(ctx, query, domain.BookingStatusCancelled, time.Now(), domain.BookingStatusPending, createdBefore)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Service snapshots are denormalized onto the booking row as JSON so later
// catalog edits cannot rewrite what a past booking was charged.
func marshalServices(services []domain.ServiceSnapshot) ([]byte, error) {
	if services == nil {
		services = []domain.ServiceSnapshot{}
	}
	data, err := json.Marshal(services)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal service snapshots: %w", err)
	}
	return data, nil
}

func unmarshalServices(data []byte) ([]domain.ServiceSnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var services []domain.ServiceSnapshot
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("failed to unmarshal service snapshots: %w", err)
	}
	return services, nil
}

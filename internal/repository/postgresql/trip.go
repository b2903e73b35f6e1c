package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/YaminiCharan14/linen/internal/db"
	"github.com/YaminiCharan14/linen/internal/repository"
	"github.com/YaminiCharan14/linen/internal/storage"
)

type TripRepo struct {
	db db.DB
}

func NewTripRepo(db db.DB) storage.TripRepository {
	return &TripRepo{db: db}
}

func (r *TripRepo) Create(ctx context.Context, t *repository.Trip) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO trips (
            trip_name, trip_number, planned_date, vehicle_id, driver_id, branch_id, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, t.TripName, t.TripNumber, t.PlannedDate, t.VehicleID, t.DriverID, t.BranchID, t.Status, t.CreatedAt).Scan(&id)
	return id, err
}

func (r *TripRepo) GetByID(ctx context.Context, id int64) (*repository.Trip, error) {
	var t repository.Trip
	err := r.db.Get(ctx, &t, "SELECT * FROM trips WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TripRepo) Search(ctx context.Context, start, end time.Time, branchID string) ([]*repository.Trip, error) {
	query := "SELECT * FROM trips WHERE planned_date >= $1 AND planned_date <= $2"
	args := []interface{}{start, end}

	if branchID != "" {
		query += " AND branch_id = $3"
		args = append(args, branchID)
	}
	query += " ORDER BY planned_date ASC"

	var trips []*repository.Trip
	err := r.db.Select(ctx, &trips, query, args...)
	return trips, err
}

func (r *TripRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM visits WHERE trip_id = $1", id); err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, "DELETE FROM trips WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *TripRepo) AddVisit(ctx context.Context, v *repository.Visit) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO visits (
            trip_id, visit_name, customer_id, order_id, planned_time, position
        ) VALUES ($1, $2, $3, $4, $5,
            (SELECT COALESCE(MAX(position), 0) + 1 FROM visits WHERE trip_id = $1))
        RETURNING id
    `, v.TripID, v.VisitName, v.CustomerID, v.OrderID, v.PlannedTime).Scan(&id)
	return id, err
}

func (r *TripRepo) GetVisits(ctx context.Context, tripID int64) ([]*repository.Visit, error) {
	var visits []*repository.Visit
	err := r.db.Select(ctx, &visits, `
        SELECT * FROM visits
        WHERE trip_id = $1
        ORDER BY position ASC
    `, tripID)
	return visits, err
}

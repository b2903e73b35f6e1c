package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/YaminiCharan14/linen/internal/db"
	"github.com/YaminiCharan14/linen/internal/repository"
	"github.com/YaminiCharan14/linen/internal/storage"
)

type RejectionRepo struct {
	db db.DB
}

func NewRejectionRepo(db db.DB) storage.RejectionRepository {
	return &RejectionRepo{db: db}
}

func (r *RejectionRepo) Create(ctx context.Context, req *repository.RejectionRequest) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO rejection_requests (
            order_id, product_id, product_name, quantity, issue_type,
            requested_date, requested_by, remarks, images, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `, req.OrderID, req.ProductID, req.ProductName, req.Quantity, req.IssueType,
		req.RequestedDate, req.RequestedBy, req.Remarks, req.Images, req.Status, req.CreatedAt).Scan(&id)
	return id, err
}

func (r *RejectionRepo) GetByID(ctx context.Context, id int64) (*repository.RejectionRequest, error) {
	var req repository.RejectionRequest
	err := r.db.Get(ctx, &req, "SELECT * FROM rejection_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RejectionRepo) ListByOrder(ctx context.Context, orderID string) ([]*repository.RejectionRequest, error) {
	var reqs []*repository.RejectionRequest
	err := r.db.Select(ctx, &reqs, `
        SELECT * FROM rejection_requests
        WHERE order_id = $1
        ORDER BY created_at DESC
    `, orderID)
	return reqs, err
}

func (r *RejectionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM rejection_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *RejectionRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, "UPDATE rejection_requests SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

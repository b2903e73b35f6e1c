package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/YaminiCharan14/linen/internal/db"
	"github.com/YaminiCharan14/linen/internal/order"
	"github.com/YaminiCharan14/linen/internal/repository"
	"github.com/YaminiCharan14/linen/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, o *repository.Order, items []repository.OrderItem) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO orders (
            id, order_reference_id, customer_id, order_type, branch_id, order_date,
            notes, status, leasing_order_type, pickup_date, delivery_date, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, o.ID, o.OrderReferenceID, o.CustomerID, o.OrderType, o.BranchID, o.OrderDate,
		o.Notes, o.Status, o.LeasingOrderType, o.PickupDate, o.DeliveryDate, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return err
	}
	return r.insertItemsTx(ctx, tx, o.ID, items)
}

func (r *OrderRepo) insertItemsTx(ctx context.Context, tx db.Tx, orderID string, items []repository.OrderItem) error {
	for _, item := range items {
		_, err := tx.Exec(ctx, `
            INSERT INTO order_items (
                order_id, list_kind, position, product_id, quantity, remarks, rental_duration
            ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        `, orderID, item.ListKind, item.Position, item.ProductID, item.Quantity, item.Remarks, item.RentalDuration)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*repository.Order, error) {
	var o repository.Order
	err := r.db.Get(ctx, &o, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) GetByReferenceID(ctx context.Context, referenceID string) (*repository.Order, error) {
	var o repository.Order
	err := r.db.Get(ctx, &o, "SELECT * FROM orders WHERE order_reference_id = $1", referenceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) GetItems(ctx context.Context, orderID string) ([]repository.OrderItem, error) {
	var items []repository.OrderItem
	err := r.db.Select(ctx, &items, `
        SELECT * FROM order_items
        WHERE order_id = $1
        ORDER BY list_kind, position
    `, orderID)
	return items, err
}

// UpdateTx replaces the order row and its item lists wholesale. The
// item table carries no identity the draft editor could track, so a
// delete-and-reinsert keeps positions authoritative.
func (r *OrderRepo) UpdateTx(ctx context.Context, tx db.Tx, o *repository.Order, items []repository.OrderItem) error {
	tag, err := tx.Exec(ctx, `
        UPDATE orders
        SET
            order_reference_id = $1,
            customer_id = $2,
            order_type = $3,
            branch_id = $4,
            order_date = $5,
            notes = $6,
            leasing_order_type = $7,
            pickup_date = $8,
            delivery_date = $9,
            updated_at = $10
        WHERE id = $11
    `, o.OrderReferenceID, o.CustomerID, o.OrderType, o.BranchID, o.OrderDate,
		o.Notes, o.LeasingOrderType, o.PickupDate, o.DeliveryDate, o.UpdatedAt, o.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}

	if _, err := tx.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", o.ID); err != nil {
		return err
	}
	return r.insertItemsTx(ctx, tx, o.ID, items)
}

func (r *OrderRepo) DeleteTx(ctx context.Context, tx db.Tx, id string) error {
	if _, err := tx.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) List(ctx context.Context) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, "SELECT * FROM orders ORDER BY created_at DESC")
	return orders, err
}

func (r *OrderRepo) Search(ctx context.Context, filter order.SearchFilter) ([]*repository.Order, error) {
	query := "SELECT * FROM orders WHERE 1=1"
	args := []interface{}{}

	addArg := func(clause string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}

	if filter.StartDate != nil {
		addArg(" AND order_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addArg(" AND order_date <= $%d", *filter.EndDate)
	}
	if filter.Status != "" {
		addArg(" AND status = $%d", filter.Status)
	}
	if filter.OrderType != "" {
		addArg(" AND order_type = $%d", string(filter.OrderType))
	}
	if filter.CustomerID != "" {
		addArg(" AND customer_id = $%d", filter.CustomerID)
	}
	if filter.BranchID != "" {
		addArg(" AND branch_id = $%d", filter.BranchID)
	}

	query += " ORDER BY order_date DESC"

	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, query, args...)
	return orders, err
}

func (r *OrderRepo) SetCompletedTx(ctx context.Context, tx db.Tx, orderID string, completedTime time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE orders
        SET status = 'COMPLETED', completed_at = $1, updated_at = $2
        WHERE id = $3
    `, completedTime, time.Now().UTC(), orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) IncompleteByCustomer(ctx context.Context, customerID string) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM orders
        WHERE customer_id = $1 AND status <> 'COMPLETED'
        ORDER BY order_date DESC
    `, customerID)
	return orders, err
}

func (r *OrderRepo) GetAllActive(ctx context.Context) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM orders
        WHERE status <> 'COMPLETED'
        ORDER BY created_at ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to get active orders: %w", err)
	}
	return orders, nil
}

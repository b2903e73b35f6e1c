package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YaminiCharan14/linen/internal/db"
	"github.com/YaminiCharan14/linen/internal/metrics"
	"github.com/YaminiCharan14/linen/internal/order"
	"github.com/YaminiCharan14/linen/internal/repository"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
)

// LinenStorage is the persistence facade for orders, rejections and
// trips. Every mutation that something downstream cares about also
// enqueues an audit event into the outbox inside the same transaction.
type LinenStorage struct {
	db            db.DB
	orderRepo     OrderRepository
	rejectionRepo RejectionRepository
	tripRepo      TripRepository
	settingsRepo  SettingsRepository
	outboxRepo    OutboxTaskRepository
	auditTopic    string
	logger        *zap.Logger
}

func NewLinenStorage(
	database db.DB,
	orderRepo OrderRepository,
	rejectionRepo RejectionRepository,
	tripRepo TripRepository,
	settingsRepo SettingsRepository,
	outboxRepo OutboxTaskRepository,
	auditTopic string,
	logger *zap.Logger,
) *LinenStorage {
	return &LinenStorage{
		db:            database,
		orderRepo:     orderRepo,
		rejectionRepo: rejectionRepo,
		tripRepo:      tripRepo,
		settingsRepo:  settingsRepo,
		outboxRepo:    outboxRepo,
		auditTopic:    auditTopic,
		logger:        logger,
	}
}

func (s *LinenStorage) inTx(ctx context.Context, fn func(tx db.Tx) error) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (s *LinenStorage) enqueueAuditTx(ctx context.Context, tx db.Tx, event repository.AuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}
	return s.outboxRepo.CreateTx(ctx, tx, &repository.OutboxTask{
		Payload: payload,
		Topic:   s.auditTopic,
	})
}

// enqueueAudit is for mutations that run outside an order transaction.
// A lost audit event is logged, never surfaced to the caller.
func (s *LinenStorage) enqueueAudit(ctx context.Context, event repository.AuditEvent) {
	err := s.inTx(ctx, func(tx db.Tx) error {
		return s.enqueueAuditTx(ctx, tx, event)
	})
	if err != nil {
		s.logger.Warn("failed to enqueue audit event",
			zap.String("action", event.Action), zap.Error(err))
	}
}

func (s *LinenStorage) CreateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	now := time.Now().UTC()

	row, items := orderToRow(&o, now, now)
	err := s.inTx(ctx, func(tx db.Tx) error {
		if err := s.orderRepo.CreateTx(ctx, tx, row, items); err != nil {
			return err
		}
		return s.enqueueAuditTx(ctx, tx, repository.AuditEvent{
			Timestamp: now,
			Action:    "ORDER_CREATED",
			OrderID:   o.ID,
			Detail:    string(o.OrderType),
		})
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(o.OrderType)).Inc()
	return &o, nil
}

func (s *LinenStorage) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	row, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.orderRepo.GetItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	o := rowToOrder(row, items)
	return &o, nil
}

func (s *LinenStorage) GetOrderByReference(ctx context.Context, referenceID string) (*order.Order, error) {
	row, err := s.orderRepo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	items, err := s.orderRepo.GetItems(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	o := rowToOrder(row, items)
	return &o, nil
}

func (s *LinenStorage) UpdateOrder(ctx context.Context, o order.Order) (*order.Order, error) {
	existing, err := s.orderRepo.GetByID(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status == StatusCompleted {
		return nil, fmt.Errorf("order %s is completed and cannot be edited", o.ID)
	}
	o.Status = existing.Status

	now := time.Now().UTC()
	row, items := orderToRow(&o, existing.CreatedAt, now)
	err = s.inTx(ctx, func(tx db.Tx) error {
		if err := s.orderRepo.UpdateTx(ctx, tx, row, items); err != nil {
			return err
		}
		return s.enqueueAuditTx(ctx, tx, repository.AuditEvent{
			Timestamp: now,
			Action:    "ORDER_UPDATED",
			OrderID:   o.ID,
		})
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_order").Inc()
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	metrics.OrdersUpdatedTotal.Inc()
	return &o, nil
}

func (s *LinenStorage) DeleteOrder(ctx context.Context, id string) error {
	now := time.Now().UTC()
	err := s.inTx(ctx, func(tx db.Tx) error {
		if err := s.orderRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}
		return s.enqueueAuditTx(ctx, tx, repository.AuditEvent{
			Timestamp: now,
			Action:    "ORDER_DELETED",
			OrderID:   id,
		})
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_order").Inc()
		return err
	}
	return nil
}

func (s *LinenStorage) ListOrders(ctx context.Context) ([]order.Order, error) {
	rows, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return rowsToOrders(rows), nil
}

func (s *LinenStorage) SearchOrders(ctx context.Context, filter order.SearchFilter) ([]order.Order, error) {
	rows, err := s.orderRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search orders: %w", err)
	}
	return rowsToOrders(rows), nil
}

// RecordOrderComplete marks a pickup or delivery as done in the field.
// Completed orders drop out of the incomplete list and become read-only.
func (s *LinenStorage) RecordOrderComplete(ctx context.Context, orderID string, completedTime time.Time) error {
	err := s.inTx(ctx, func(tx db.Tx) error {
		if err := s.orderRepo.SetCompletedTx(ctx, tx, orderID, completedTime); err != nil {
			return err
		}
		return s.enqueueAuditTx(ctx, tx, repository.AuditEvent{
			Timestamp: time.Now().UTC(),
			Action:    "ORDER_COMPLETED",
			OrderID:   orderID,
		})
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("record_complete").Inc()
		return err
	}

	metrics.OrdersCompletedTotal.Inc()
	return nil
}

func (s *LinenStorage) IncompleteOrders(ctx context.Context, customerID string) ([]order.Order, error) {
	rows, err := s.orderRepo.IncompleteByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incomplete orders: %w", err)
	}
	return rowsToOrders(rows), nil
}

// ActiveOrders feeds the in-memory cache on startup.
func (s *LinenStorage) ActiveOrders(ctx context.Context) ([]order.Order, error) {
	rows, err := s.orderRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return rowsToOrders(rows), nil
}

func (s *LinenStorage) GetSetting(ctx context.Context, key string) (string, error) {
	return s.settingsRepo.Get(ctx, key)
}

func (s *LinenStorage) SetSetting(ctx context.Context, key, value string) error {
	return s.settingsRepo.Set(ctx, key, value)
}

func orderToRow(o *order.Order, createdAt, updatedAt time.Time) (*repository.Order, []repository.OrderItem) {
	row := &repository.Order{
		ID:               o.ID,
		OrderReferenceID: o.OrderReferenceID,
		CustomerID:       o.CustomerID,
		OrderType:        string(o.OrderType),
		BranchID:         o.BranchID,
		OrderDate:        o.OrderDate,
		Notes:            o.Notes,
		Status:           o.Status,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}

	var items []repository.OrderItem
	appendItems := func(kind string, lineItems []order.LineItem) {
		for i, item := range lineItems {
			items = append(items, repository.OrderItem{
				OrderID:        o.ID,
				ListKind:       kind,
				Position:       i,
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				Remarks:        item.Remarks,
				RentalDuration: item.RentalDuration,
			})
		}
	}

	// The detail block is selected by the type tag; a block that does not
	// match OrderType is dropped rather than persisted unreadably.
	switch o.OrderType {
	case order.TypeLeasing:
		if o.Leasing != nil {
			leasingType := string(o.Leasing.LeasingOrderType)
			row.LeasingOrderType = &leasingType
			row.PickupDate = o.Leasing.PickupDate
			row.DeliveryDate = o.Leasing.DeliveryDate
			appendItems(repository.ListKindPickup, o.Leasing.PickupItems)
			appendItems(repository.ListKindDelivery, o.Leasing.DeliveryItems)
		}
	case order.TypeRental:
		if o.Rental != nil {
			row.DeliveryDate = o.Rental.DeliveryDate
			appendItems(repository.ListKindFlat, o.Rental.Items)
		}
	case order.TypeWashing:
		if o.Washing != nil {
			row.PickupDate = o.Washing.PickupDate
			row.DeliveryDate = o.Washing.DeliveryDate
			appendItems(repository.ListKindFlat, o.Washing.Items)
		}
	}

	return row, items
}

func rowToOrder(row *repository.Order, items []repository.OrderItem) order.Order {
	o := order.Order{
		ID:               row.ID,
		OrderReferenceID: row.OrderReferenceID,
		CustomerID:       row.CustomerID,
		OrderType:        order.OrderType(row.OrderType),
		BranchID:         row.BranchID,
		OrderDate:        row.OrderDate,
		Notes:            row.Notes,
		Status:           row.Status,
	}

	itemsByKind := func(kind string) []order.LineItem {
		lineItems := []order.LineItem{}
		for _, item := range items {
			if item.ListKind != kind {
				continue
			}
			lineItems = append(lineItems, order.LineItem{
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				Remarks:        item.Remarks,
				RentalDuration: item.RentalDuration,
			})
		}
		return lineItems
	}

	switch order.OrderType(row.OrderType) {
	case order.TypeLeasing:
		leasingType := order.DeliveryType("")
		if row.LeasingOrderType != nil {
			leasingType = order.DeliveryType(*row.LeasingOrderType)
		}
		o.Leasing = &order.LeasingDetails{
			LeasingOrderType: leasingType,
			PickupDate:       row.PickupDate,
			DeliveryDate:     row.DeliveryDate,
			PickupItems:      itemsByKind(repository.ListKindPickup),
			DeliveryItems:    itemsByKind(repository.ListKindDelivery),
		}
	case order.TypeRental:
		o.Rental = &order.RentalDetails{
			DeliveryDate: row.DeliveryDate,
			Items:        itemsByKind(repository.ListKindFlat),
		}
	case order.TypeWashing:
		o.Washing = &order.WashingDetails{
			PickupDate:   row.PickupDate,
			DeliveryDate: row.DeliveryDate,
			Items:        itemsByKind(repository.ListKindFlat),
		}
	}

	return o
}

// rowsToOrders converts list results. Item lists are left empty; list
// views only show header fields, the full order is fetched on open.
func rowsToOrders(rows []*repository.Order) []order.Order {
	orders := make([]order.Order, len(rows))
	for i, row := range rows {
		orders[i] = rowToOrder(row, nil)
	}
	return orders
}

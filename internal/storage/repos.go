package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/YaminiCharan14/linen/internal/db"
	"github.com/YaminiCharan14/linen/internal/order"
	"github.com/YaminiCharan14/linen/internal/repository"
)

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, o *repository.Order, items []repository.OrderItem) error
	GetByID(ctx context.Context, id string) (*repository.Order, error)
	GetByReferenceID(ctx context.Context, referenceID string) (*repository.Order, error)
	GetItems(ctx context.Context, orderID string) ([]repository.OrderItem, error)
	UpdateTx(ctx context.Context, tx db.Tx, o *repository.Order, items []repository.OrderItem) error
	DeleteTx(ctx context.Context, tx db.Tx, id string) error
	List(ctx context.Context) ([]*repository.Order, error)
	Search(ctx context.Context, filter order.SearchFilter) ([]*repository.Order, error)
	SetCompletedTx(ctx context.Context, tx db.Tx, orderID string, completedTime time.Time) error
	IncompleteByCustomer(ctx context.Context, customerID string) ([]*repository.Order, error)
	GetAllActive(ctx context.Context) ([]*repository.Order, error)
}

type RejectionRepository interface {
	Create(ctx context.Context, r *repository.RejectionRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.RejectionRequest, error)
	ListByOrder(ctx context.Context, orderID string) ([]*repository.RejectionRequest, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type TripRepository interface {
	Create(ctx context.Context, t *repository.Trip) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.Trip, error)
	Search(ctx context.Context, start, end time.Time, branchID string) ([]*repository.Trip, error)
	Delete(ctx context.Context, id int64) error
	AddVisit(ctx context.Context, v *repository.Visit) (int64, error)
	GetVisits(ctx context.Context, tripID int64) ([]*repository.Visit, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, tx db.Tx, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Order struct {
	ID               string     `db:"id"`
	OrderReferenceID string     `db:"order_reference_id"`
	CustomerID       string     `db:"customer_id"`
	OrderType        string     `db:"order_type"`
	BranchID         string     `db:"branch_id"`
	OrderDate        time.Time  `db:"order_date"`
	Notes            string     `db:"notes"`
	Status           string     `db:"status"`
	LeasingOrderType *string    `db:"leasing_order_type"`
	PickupDate       *time.Time `db:"pickup_date"`
	DeliveryDate     *time.Time `db:"delivery_date"`
	CompletedAt      *time.Time `db:"completed_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// OrderItem is one line of an order. ListKind separates the leasing
// pickup/delivery lists from the flat rental/washing list; Position
// preserves display order.
type OrderItem struct {
	ID             int64  `db:"id"`
	OrderID        string `db:"order_id"`
	ListKind       string `db:"list_kind"`
	Position       int    `db:"position"`
	ProductID      int64  `db:"product_id"`
	Quantity       int    `db:"quantity"`
	Remarks        string `db:"remarks"`
	RentalDuration int    `db:"rental_duration"`
}

const (
	ListKindPickup   = "PICKUP"
	ListKindDelivery = "DELIVERY"
	ListKindFlat     = "FLAT"
)

type RejectionRequest struct {
	ID            int64     `db:"id"`
	OrderID       string    `db:"order_id"`
	ProductID     int64     `db:"product_id"`
	ProductName   string    `db:"product_name"`
	Quantity      int       `db:"quantity"`
	IssueType     string    `db:"issue_type"`
	RequestedDate time.Time `db:"requested_date"`
	RequestedBy   string    `db:"requested_by"`
	Remarks       string    `db:"remarks"`
	Images        []string  `db:"images"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type Trip struct {
	ID          int64     `db:"id"`
	TripName    string    `db:"trip_name"`
	TripNumber  string    `db:"trip_number"`
	PlannedDate time.Time `db:"planned_date"`
	VehicleID   string    `db:"vehicle_id"`
	DriverID    *string   `db:"driver_id"`
	BranchID    string    `db:"branch_id"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type Visit struct {
	ID          int64      `db:"id"`
	TripID      int64      `db:"trip_id"`
	VisitName   string     `db:"visit_name"`
	CustomerID  string     `db:"customer_id"`
	OrderID     *string    `db:"order_id"`
	PlannedTime *time.Time `db:"planned_time"`
	Position    int        `db:"position"`
}

// Setting is session-scoped client state kept server side: the branch
// id stamped on orders, one-time coachmark flags and the like.
type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}

package reservation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrNoCustomer       = errors.New("customer id is missing")
	ErrNothingToReserve = errors.New("order id or delivery items missing")
)

// StatusReserved is the inventory status populate filters on.
const StatusReserved = "RESERVED"

type InventoryFilter struct {
	ProductID int64  `json:"productId"`
	Status    string `json:"status"`
	Quantity  int    `json:"quantity"`
}

type InventoryItem struct {
	ID string `json:"id"`
}

type ProductInventory struct {
	ProductID      int64           `json:"productId"`
	InventoryItems []InventoryItem `json:"inventoryItems"`
}

// Entry binds specific inventory units to one delivery item. The id list
// may be shorter than Quantity, or empty if populate was never called.
type Entry struct {
	ProductID        int64    `json:"productId"`
	Quantity         int      `json:"quantity"`
	InventoryItemIDs []string `json:"inventoryItemIds"`
}

type Reservation struct {
	OrderID string  `json:"orderId"`
	Items   []Entry `json:"items"`
}

type DeliveryItem struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

//go:generate mockgen -source ./workflow.go -destination=./mocks/reservation.go -package=mock_reservation

// InventoryService is the remote inventory API.
type InventoryService interface {
	CustomerInventoryItems(ctx context.Context, customerID string, filters []InventoryFilter) ([]ProductInventory, error)
	SaveOrderInventoryReservation(ctx context.Context, req Reservation) error
}

// Workflow drives the reserve-items dialog for one order: per-item
// populate lookups followed by a single batch reservation.
type Workflow struct {
	inv    InventoryService
	logger *zap.Logger

	customerID string
	orderID    string
	items      []DeliveryItem

	ids    map[int64][]string
	counts map[int64]int
}

func NewWorkflow(inv InventoryService, customerID, orderID string, items []DeliveryItem, logger *zap.Logger) *Workflow {
	return &Workflow{
		inv:        inv,
		logger:     logger,
		customerID: customerID,
		orderID:    orderID,
		items:      items,
		ids:        make(map[int64][]string),
		counts:     make(map[int64]int),
	}
}

// Populate looks up the customer's reserved inventory for one product and
// records at most quantity matching item ids. Calling it again for the
// same product overwrites the prior result. Returns the populated count.
func (w *Workflow) Populate(ctx context.Context, productID int64, quantity int) (int, error) {
	if w.customerID == "" {
		return 0, ErrNoCustomer
	}

	filters := []InventoryFilter{{
		ProductID: productID,
		Status:    StatusReserved,
		Quantity:  quantity,
	}}

	results, err := w.inv.CustomerInventoryItems(ctx, w.customerID, filters)
	if err != nil {
		w.logger.Error("Failed to populate inventory for product",
			zap.Int64("product_id", productID), zap.Error(err))
		return 0, fmt.Errorf("populate product %d: %w", productID, err)
	}

	var available []InventoryItem
	if len(results) > 0 {
		available = results[0].InventoryItems
	}
	if len(available) > quantity {
		available = available[:quantity]
	}

	itemIDs := make([]string, 0, len(available))
	for _, item := range available {
		itemIDs = append(itemIDs, item.ID)
	}

	w.ids[productID] = itemIDs
	w.counts[productID] = len(itemIDs)
	return len(itemIDs), nil
}

// PopulatedQuantity reports the recorded count for a product and whether
// populate has run for it at all.
func (w *Workflow) PopulatedQuantity(productID int64) (int, bool) {
	count, ok := w.counts[productID]
	return count, ok
}

// Reserve submits one batch reservation covering every delivery item,
// using whatever ids were populated for each. Items never populated go
// out with an empty id list; that is accepted, not blocked. Populated
// state survives a failed submit so the user can retry.
func (w *Workflow) Reserve(ctx context.Context) error {
	if w.orderID == "" || len(w.items) == 0 {
		return ErrNothingToReserve
	}

	req := Reservation{OrderID: w.orderID, Items: make([]Entry, 0, len(w.items))}
	for _, item := range w.items {
		itemIDs := w.ids[item.ProductID]
		if itemIDs == nil {
			itemIDs = []string{}
		}
		req.Items = append(req.Items, Entry{
			ProductID:        item.ProductID,
			Quantity:         item.Quantity,
			InventoryItemIDs: itemIDs,
		})
	}

	if err := w.inv.SaveOrderInventoryReservation(ctx, req); err != nil {
		w.logger.Error("Failed to save reservation",
			zap.String("order_id", w.orderID), zap.Error(err))
		return fmt.Errorf("reserve order %s: %w", w.orderID, err)
	}
	return nil
}

package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/YaminiCharan14/linen/internal/reservation"
)

// InventoryClient talks to the inventory service. It satisfies
// reservation.InventoryService.
type InventoryClient struct {
	*Client
}

func NewInventoryClient(baseURL string, headers func() http.Header) *InventoryClient {
	return &InventoryClient{Client: New(baseURL, headers)}
}

var _ reservation.InventoryService = (*InventoryClient)(nil)

func (c *InventoryClient) CustomerInventoryItems(ctx context.Context, customerID string, filters []reservation.InventoryFilter) ([]reservation.ProductInventory, error) {
	payload := struct {
		Filters []reservation.InventoryFilter `json:"filters"`
	}{Filters: filters}

	var result []reservation.ProductInventory
	path := fmt.Sprintf("/customers/%s/inventory-items", customerID)
	if err := c.doJSON(ctx, http.MethodPost, path, payload, &result, requestOpts{}); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *InventoryClient) SaveOrderInventoryReservation(ctx context.Context, req reservation.Reservation) error {
	return c.doJSON(ctx, http.MethodPost, "/order-reservations", req, nil, requestOpts{})
}

package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/YaminiCharan14/linen/internal/order"
)

// ProductClient talks to the product service.
type ProductClient struct {
	*Client
}

func NewProductClient(baseURL string, headers func() http.Header) *ProductClient {
	return &ProductClient{Client: New(baseURL, headers)}
}

// ReservedProductsByCustomer returns the customer's reserved assortment,
// used to auto-seed leasing delivery items.
func (c *ProductClient) ReservedProductsByCustomer(ctx context.Context, customerID string) ([]order.ReservedProduct, error) {
	var products []order.ReservedProduct
	path := fmt.Sprintf("/customers/%s/reserved-products", customerID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &products, requestOpts{}); err != nil {
		return nil, err
	}
	return products, nil
}

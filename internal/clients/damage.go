package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const damageBasePath = "/damage-assessment/item-damage-request"

// DamageRequest is one item-damage claim in the damage-assessment
// sub-API.
type DamageRequest struct {
	ID         int64     `json:"id"`
	CustomerID string    `json:"customerId"`
	ProductID  int64     `json:"productId"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	SourceID   string    `json:"sourceId"`
	SourceType string    `json:"sourceType"`
	Notes      string    `json:"notes"`
	Images     []string  `json:"images"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type DamageRequestPage struct {
	Content       []DamageRequest `json:"content"`
	TotalElements int             `json:"totalElements"`
}

type DamageListFilter struct {
	Page       int
	Size       int
	Status     string
	CustomerID string
}

// DamageClient talks to the damage-assessment sub-API. Every call is
// tagged with the ambient warehouse (data-center) id header.
type DamageClient struct {
	*Client
	warehouseID string
}

func NewDamageClient(baseURL, warehouseID string, headers func() http.Header) *DamageClient {
	return &DamageClient{
		Client:      New(baseURL, headers),
		warehouseID: warehouseID,
	}
}

func (c *DamageClient) opts() requestOpts {
	return requestOpts{warehouseID: c.warehouseID}
}

func (c *DamageClient) List(ctx context.Context, filter DamageListFilter) (*DamageRequestPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(filter.Page))
	size := filter.Size
	if size == 0 {
		size = 10
	}
	params.Set("size", strconv.Itoa(size))
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.CustomerID != "" {
		params.Set("customerId", filter.CustomerID)
	}

	var page DamageRequestPage
	path := damageBasePath + "/list?" + params.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &page, c.opts()); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *DamageClient) Get(ctx context.Context, id int64) (*DamageRequest, error) {
	var req DamageRequest
	path := fmt.Sprintf("%s/%d", damageBasePath, id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &req, c.opts()); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *DamageClient) Create(ctx context.Context, req DamageRequest) (*DamageRequest, error) {
	if req.CustomerID == "" || req.ProductID == 0 || req.Quantity == 0 || req.SourceID == "" || req.SourceType == "" {
		return nil, fmt.Errorf("missing required fields for creating damage request")
	}

	var created DamageRequest
	if err := c.doJSON(ctx, http.MethodPost, damageBasePath+"/create", req, &created, c.opts()); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *DamageClient) Update(ctx context.Context, id int64, req DamageRequest) (*DamageRequest, error) {
	var updated DamageRequest
	path := fmt.Sprintf("%s/%d", damageBasePath, id)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &updated, c.opts()); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *DamageClient) Approve(ctx context.Context, id int64) (*DamageRequest, error) {
	var updated DamageRequest
	path := fmt.Sprintf("%s/%d/approve", damageBasePath, id)
	if err := c.doJSON(ctx, http.MethodPost, path, struct{}{}, &updated, c.opts()); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *DamageClient) Reject(ctx context.Context, id int64) (*DamageRequest, error) {
	var updated DamageRequest
	path := fmt.Sprintf("%s/%d/reject", damageBasePath, id)
	if err := c.doJSON(ctx, http.MethodPost, path, struct{}{}, &updated, c.opts()); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *DamageClient) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", damageBasePath, id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, c.opts())
}

package rejection

import "context"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusResolved Status = "RESOLVED"
)

type IssueType string

const (
	IssueDamaged   IssueType = "DAMAGED"
	IssueStained   IssueType = "STAINED"
	IssueWrongItem IssueType = "WRONG_ITEM"
	IssueOthers    IssueType = "OTHERS"
)

// Request is a filed rejection of delivered items. ProductName is
// denormalized for display.
type Request struct {
	ID            int64     `json:"id"`
	OrderID       string    `json:"orderId,omitempty"`
	ProductID     int64     `json:"productId"`
	ProductName   string    `json:"productName"`
	Quantity      int       `json:"quantity"`
	IssueType     IssueType `json:"issueType"`
	RequestedDate string    `json:"requestedDate"`
	RequestedBy   string    `json:"requestedBy"`
	Remarks       string    `json:"remarks"`
	Images        []string  `json:"images"`
	Status        Status    `json:"status"`
}

// CreateRequest is the create-rejection payload shape.
type CreateRequest struct {
	ProductID     int64     `json:"productId"`
	Quantity      int       `json:"quantity"`
	Images        []string  `json:"images"`
	IssueType     IssueType `json:"issueType"`
	RequestedDate string    `json:"requestedDate"`
	RequestedBy   string    `json:"requestedBy"`
	Remarks       string    `json:"remarks"`
}

// DeliveryItem is the slice of an order the workflow operates on.
type DeliveryItem struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

//go:generate mockgen -source ./types.go -destination=./mocks/rejection.go -package=mock_rejection

// Service is the remote rejection API consumed by the workflow.
type Service interface {
	CreateRejectionRequest(ctx context.Context, orderID string, req CreateRequest) (*Request, error)
	DeleteRejectionRequest(ctx context.Context, id int64) error
	UpdateRejectionRequestStatus(ctx context.Context, id int64, status Status) (*Request, error)
}

// Uploader stores one image and returns its URL.
type Uploader interface {
	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
}

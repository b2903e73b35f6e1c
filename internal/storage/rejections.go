package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/YaminiCharan14/linen/internal/metrics"
	"github.com/YaminiCharan14/linen/internal/rejection"
	"github.com/YaminiCharan14/linen/internal/repository"
)

// requestedDateLayout matches the date-with-midnight-time strings the
// rejection form submits.
const requestedDateLayout = "2006-01-02T15:04:05"

// CreateRejectionRequest files a rejection against an order's delivered
// items. New requests always start out PENDING.
func (s *LinenStorage) CreateRejectionRequest(ctx context.Context, orderID string, req rejection.CreateRequest) (*rejection.Request, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	requestedDate, err := time.Parse(requestedDateLayout, req.RequestedDate)
	if err != nil {
		return nil, fmt.Errorf("invalid requested date %q: %w", req.RequestedDate, err)
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	row := &repository.RejectionRequest{
		OrderID:       orderID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		IssueType:     string(req.IssueType),
		RequestedDate: requestedDate,
		RequestedBy:   req.RequestedBy,
		Remarks:       req.Remarks,
		Images:        images,
		Status:        string(rejection.StatusPending),
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.rejectionRepo.Create(ctx, row)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_rejection").Inc()
		return nil, fmt.Errorf("failed to create rejection request: %w", err)
	}
	row.ID = id

	s.enqueueAudit(ctx, repository.AuditEvent{
		Timestamp: row.CreatedAt,
		Action:    "REJECTION_FILED",
		OrderID:   orderID,
		EntityID:  fmt.Sprint(id),
		Actor:     req.RequestedBy,
		Detail:    string(req.IssueType),
	})
	metrics.RejectionsFiledTotal.Inc()

	result := rowToRejection(row)
	return &result, nil
}

func (s *LinenStorage) DeleteRejectionRequest(ctx context.Context, id int64) error {
	if err := s.rejectionRepo.Delete(ctx, id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("delete_rejection").Inc()
		return err
	}

	s.enqueueAudit(ctx, repository.AuditEvent{
		Timestamp: time.Now().UTC(),
		Action:    "REJECTION_DELETED",
		EntityID:  fmt.Sprint(id),
	})
	metrics.RejectionsDeletedTotal.Inc()
	return nil
}

func (s *LinenStorage) UpdateRejectionRequestStatus(ctx context.Context, id int64, status rejection.Status) (*rejection.Request, error) {
	if err := s.rejectionRepo.UpdateStatus(ctx, id, string(status)); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_rejection_status").Inc()
		return nil, err
	}

	row, err := s.rejectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.enqueueAudit(ctx, repository.AuditEvent{
		Timestamp: time.Now().UTC(),
		Action:    "REJECTION_STATUS_CHANGED",
		OrderID:   row.OrderID,
		EntityID:  fmt.Sprint(id),
		Detail:    string(status),
	})

	result := rowToRejection(row)
	return &result, nil
}

func (s *LinenStorage) ListRejections(ctx context.Context, orderID string) ([]rejection.Request, error) {
	rows, err := s.rejectionRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rejection requests: %w", err)
	}

	requests := make([]rejection.Request, len(rows))
	for i, row := range rows {
		requests[i] = rowToRejection(row)
	}
	return requests, nil
}

func rowToRejection(row *repository.RejectionRequest) rejection.Request {
	return rejection.Request{
		ID:            row.ID,
		OrderID:       row.OrderID,
		ProductID:     row.ProductID,
		ProductName:   row.ProductName,
		Quantity:      row.Quantity,
		IssueType:     rejection.IssueType(row.IssueType),
		RequestedDate: row.RequestedDate.Format(requestedDateLayout),
		RequestedBy:   row.RequestedBy,
		Remarks:       row.Remarks,
		Images:        row.Images,
		Status:        rejection.Status(row.Status),
	}
}

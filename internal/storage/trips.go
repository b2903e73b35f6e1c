package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/YaminiCharan14/linen/internal/repository"
)

const TripStatusPlanned = "PLANNED"

// TripDetail is a trip with its ordered visit sequence.
type TripDetail struct {
	Trip   *repository.Trip    `json:"trip"`
	Visits []*repository.Visit `json:"visits"`
}

func (s *LinenStorage) CreateTrip(ctx context.Context, t *repository.Trip) (int64, error) {
	if t.Status == "" {
		t.Status = TripStatusPlanned
	}
	t.CreatedAt = time.Now().UTC()

	id, err := s.tripRepo.Create(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("failed to create trip: %w", err)
	}

	s.enqueueAudit(ctx, repository.AuditEvent{
		Timestamp: t.CreatedAt,
		Action:    "TRIP_CREATED",
		EntityID:  fmt.Sprint(id),
		Detail:    t.TripNumber,
	})
	return id, nil
}

func (s *LinenStorage) GetTrip(ctx context.Context, id int64) (*TripDetail, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	visits, err := s.tripRepo.GetVisits(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip visits: %w", err)
	}
	return &TripDetail{Trip: trip, Visits: visits}, nil
}

func (s *LinenStorage) SearchTrips(ctx context.Context, start, end time.Time, branchID string) ([]*repository.Trip, error) {
	trips, err := s.tripRepo.Search(ctx, start, end, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to search trips: %w", err)
	}
	return trips, nil
}

func (s *LinenStorage) DeleteTrip(ctx context.Context, id int64) error {
	if err := s.tripRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.enqueueAudit(ctx, repository.AuditEvent{
		Timestamp: time.Now().UTC(),
		Action:    "TRIP_DELETED",
		EntityID:  fmt.Sprint(id),
	})
	return nil
}

func (s *LinenStorage) AddVisit(ctx context.Context, v *repository.Visit) (int64, error) {
	if _, err := s.tripRepo.GetByID(ctx, v.TripID); err != nil {
		return 0, err
	}
	id, err := s.tripRepo.AddVisit(ctx, v)
	if err != nil {
		return 0, fmt.Errorf("failed to add visit: %w", err)
	}
	return id, nil
}

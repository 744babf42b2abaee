package bids

import (
	"context"
	"fmt"
)

// Store is the slice of the bid repository the service needs.
type Store interface {
	Exists(ctx context.Context, email, jobID string) (bool, error)
	Insert(ctx context.Context, bid *Bid) error
	ListForUser(ctx context.Context, email string, asBuyer bool) ([]Bid, error)
	UpdateStatus(ctx context.Context, id, status string) (*UpdateOutcome, error)
}

// JobCounter is implemented by the jobs repository.
type JobCounter interface {
	IncrementBidCount(ctx context.Context, jobID string, delta int) error
}

type Service struct {
	repo Store
	jobs JobCounter
}

func NewService(repo Store, jobs JobCounter) *Service {
	return &Service{repo: repo, jobs: jobs}
}

// PlaceBid inserts the bid and bumps the job's bid counter. A bid already
// placed by the same email on the same job is rejected with ErrDuplicateBid
// before anything is written. The pre-check and the insert are two separate
// store operations; a concurrent duplicate that slips between them is caught
// by the unique index and surfaces as the same error.
func (s *Service) PlaceBid(ctx context.Context, bid *Bid) error {
	exists, err := s.repo.Exists(ctx, bid.Email, bid.JobID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateBid
	}

	if err := s.repo.Insert(ctx, bid); err != nil {
		return err
	}

	// The insert is not rolled back when the increment fails; the bid exists
	// with a stale counter.
	if err := s.jobs.IncrementBidCount(ctx, bid.JobID, 1); err != nil {
		return fmt.Errorf("bid placed but bid count update failed: %w", err)
	}

	return nil
}

func (s *Service) ListForUser(ctx context.Context, email string, asBuyer bool) ([]Bid, error) {
	return s.repo.ListForUser(ctx, email, asBuyer)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*UpdateOutcome, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

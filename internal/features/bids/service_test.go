package bids

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBidStore struct {
	bids      map[string]Bid // keyed by email+"|"+jobId
	byID      map[string]Bid
	insertErr error
}

func newFakeBidStore() *fakeBidStore {
	return &fakeBidStore{bids: map[string]Bid{}, byID: map[string]Bid{}}
}

func (f *fakeBidStore) Exists(_ context.Context, email, jobID string) (bool, error) {
	_, ok := f.bids[email+"|"+jobID]
	return ok, nil
}

func (f *fakeBidStore) Insert(_ context.Context, bid *Bid) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	key := bid.Email + "|" + bid.JobID
	if _, ok := f.bids[key]; ok {
		return ErrDuplicateBid
	}
	bid.ID = primitive.NewObjectID()
	f.bids[key] = *bid
	f.byID[bid.ID.Hex()] = *bid
	return nil
}

func (f *fakeBidStore) ListForUser(_ context.Context, email string, asBuyer bool) ([]Bid, error) {
	out := []Bid{}
	for _, bid := range f.bids {
		if asBuyer && bid.Buyer == email {
			out = append(out, bid)
		}
		if !asBuyer && bid.Email == email {
			out = append(out, bid)
		}
	}
	return out, nil
}

func (f *fakeBidStore) UpdateStatus(_ context.Context, id, status string) (*UpdateOutcome, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidBidID
	}
	bid, ok := f.byID[id]
	if !ok {
		return &UpdateOutcome{}, nil
	}
	bid.Status = status
	f.byID[id] = bid
	f.bids[bid.Email+"|"+bid.JobID] = bid
	return &UpdateOutcome{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeCounter struct {
	counts map[string]int
	err    error
}

func (f *fakeCounter) IncrementBidCount(_ context.Context, jobID string, delta int) error {
	if f.err != nil {
		return f.err
	}
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[jobID] += delta
	return nil
}

func TestPlaceBid_FirstBidIncrementsCounter(t *testing.T) {
	store := newFakeBidStore()
	counter := &fakeCounter{}
	svc := NewService(store, counter)
	jobID := primitive.NewObjectID().Hex()

	bid := &Bid{Email: "b@x.com", JobID: jobID}
	require.NoError(t, svc.PlaceBid(context.Background(), bid))
	require.False(t, bid.ID.IsZero())
	require.Equal(t, 1, counter.counts[jobID])
}

func TestPlaceBid_DuplicateRejectedWithoutSideEffects(t *testing.T) {
	store := newFakeBidStore()
	counter := &fakeCounter{}
	svc := NewService(store, counter)
	jobID := primitive.NewObjectID().Hex()

	require.NoError(t, svc.PlaceBid(context.Background(), &Bid{Email: "b@x.com", JobID: jobID}))

	err := svc.PlaceBid(context.Background(), &Bid{Email: "b@x.com", JobID: jobID})
	require.ErrorIs(t, err, ErrDuplicateBid)
	require.Len(t, store.bids, 1)
	require.Equal(t, 1, counter.counts[jobID], "counter must stay unchanged on rejection")
}

func TestPlaceBid_DuplicateKeyOnInsertRejected(t *testing.T) {
	// A concurrent duplicate passing the pre-check gets stopped by the unique
	// index; the repository maps that to ErrDuplicateBid.
	store := newFakeBidStore()
	store.insertErr = ErrDuplicateBid
	counter := &fakeCounter{}
	svc := NewService(store, counter)

	err := svc.PlaceBid(context.Background(), &Bid{Email: "b@x.com", JobID: primitive.NewObjectID().Hex()})
	require.ErrorIs(t, err, ErrDuplicateBid)
	require.Empty(t, counter.counts)
}

func TestPlaceBid_CounterFailureSurfacesButBidStays(t *testing.T) {
	store := newFakeBidStore()
	counter := &fakeCounter{err: errors.New("connection reset")}
	svc := NewService(store, counter)

	err := svc.PlaceBid(context.Background(), &Bid{Email: "b@x.com", JobID: primitive.NewObjectID().Hex()})
	require.Error(t, err)
	require.Len(t, store.bids, 1, "failed increment does not roll back the insert")
}

func TestListForUser_BidderVsBuyer(t *testing.T) {
	store := newFakeBidStore()
	svc := NewService(store, &fakeCounter{})
	ctx := context.Background()

	require.NoError(t, svc.PlaceBid(ctx, &Bid{Email: "b@x.com", JobID: primitive.NewObjectID().Hex(), Buyer: "a@x.com"}))
	require.NoError(t, svc.PlaceBid(ctx, &Bid{Email: "c@x.com", JobID: primitive.NewObjectID().Hex(), Buyer: "b@x.com"}))

	placed, err := svc.ListForUser(ctx, "b@x.com", false)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	require.Equal(t, "b@x.com", placed[0].Email)

	received, err := svc.ListForUser(ctx, "b@x.com", true)
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.Equal(t, "b@x.com", received[0].Buyer)
}

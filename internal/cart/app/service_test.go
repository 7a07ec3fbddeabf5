package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	"github.com/dwikikusuma/naija-assistant/pkg/logger"
)

// fakeRepo is a minimal single-user store for service tests.
type fakeRepo struct {
	items []domain.CartItem
	err   error
}

func (f *fakeRepo) Get(context.Context, string) ([]domain.CartItem, error) { return f.items, f.err }

func (f *fakeRepo) AddItem(_ context.Context, _ string, item domain.CartItem) ([]domain.CartItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items = append(f.items, item)
	return f.items, nil
}

func (f *fakeRepo) RemoveItem(context.Context, string, int64) ([]domain.CartItem, error) {
	return f.items, f.err
}

func (f *fakeRepo) SetItemQuantity(context.Context, string, int64, int32) ([]domain.CartItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeRepo) Clear(context.Context, string) error {
	f.items = nil
	return f.err
}

type recordingPublisher struct {
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt domain.Event) error {
	p.events = append(p.events, evt)
	return p.err
}

func newTestService(repo CartRepo, pub EventPublisher) *Service {
	svc := NewService(repo, WithPublisher(pub), WithLogger(logger.Discard()))
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("zero quantity -> invalid", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &recordingPublisher{})
		_, err := svc.AddItem(ctx, "u1", domain.CartItem{ProductID: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("blank user -> invalid", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &recordingPublisher{})
		_, err := svc.AddItem(ctx, " ", domain.CartItem{ProductID: 1, Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidUser)
	})

	t.Run("missing merchant -> default vendor and event", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := newTestService(&fakeRepo{}, pub)

		items, err := svc.AddItem(ctx, "u1", domain.CartItem{ProductID: 1, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultMerchant, items[0].Merchant)

		require.Len(t, pub.events, 1)
		assert.Equal(t, domain.EventItemAdded, pub.events[0].Type)
		assert.Equal(t, int32(2), pub.events[0].Quantity)
		assert.False(t, pub.events[0].At.IsZero())
	})

	t.Run("publish failure does not fail add", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("broker down")}
		svc := newTestService(&fakeRepo{}, pub)

		_, err := svc.AddItem(ctx, "u1", domain.CartItem{ProductID: 1, Quantity: 1})
		assert.NoError(t, err)
	})

	t.Run("repo failure -> error, no event", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := newTestService(&fakeRepo{err: errors.New("locked")}, pub)

		_, err := svc.AddItem(ctx, "u1", domain.CartItem{ProductID: 1, Quantity: 1})
		assert.Error(t, err)
		assert.Empty(t, pub.events)
	})
}

func TestSetItemQuantityEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("non-positive -> removed event", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := newTestService(&fakeRepo{}, pub)
		_, err := svc.SetItemQuantity(ctx, "u1", 1, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.EventItemRemoved, pub.events[0].Type)
	})

	t.Run("positive -> quantity_updated event", func(t *testing.T) {
		pub := &recordingPublisher{}
		svc := newTestService(&fakeRepo{}, pub)
		_, err := svc.SetItemQuantity(ctx, "u1", 1, 4)
		require.NoError(t, err)
		assert.Equal(t, domain.EventQuantityUpdated, pub.events[0].Type)
		assert.Equal(t, int32(4), pub.events[0].Quantity)
	})

	t.Run("not found propagates", func(t *testing.T) {
		svc := newTestService(&fakeRepo{err: domain.ErrNotFound}, &recordingPublisher{})
		_, err := svc.SetItemQuantity(ctx, "u1", 1, 4)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestClearCart(t *testing.T) {
	pub := &recordingPublisher{}
	repo := &fakeRepo{items: []domain.CartItem{{ProductID: 1, Quantity: 1}}}
	svc := newTestService(repo, pub)

	items, err := svc.ClearCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, domain.EventCleared, pub.events[0].Type)
}

func TestComputeTotals(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: 1, Price: 2500, Quantity: 2},
		{ProductID: 2, Price: 1800, Quantity: 1},
	}
	got := domain.ComputeTotals(items, 1500)
	assert.Equal(t, domain.Totals{ItemCount: 3, Subtotal: 6800, Shipping: 1500, Total: 8300}, got)

	assert.Equal(t, domain.Totals{}, domain.ComputeTotals(nil, 1500), "no shipping on empty cart")
}

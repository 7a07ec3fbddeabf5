package app

import (
	"context"

	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
)

// CartRepo implementations must make each mutation atomic per user so that
// concurrent adds of the same product sum their quantities.
type CartRepo interface {
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	// AddItem merges by ProductID: an existing line has its quantity
	// incremented by item.Quantity.
	AddItem(ctx context.Context, userID string, item domain.CartItem) ([]domain.CartItem, error)
	// RemoveItem is a no-op for products not in the cart.
	RemoveItem(ctx context.Context, userID string, productID int64) ([]domain.CartItem, error)
	// SetItemQuantity removes the line when quantity <= 0 and returns
	// domain.ErrNotFound when the line does not exist.
	SetItemQuantity(ctx context.Context, userID string, productID int64, quantity int32) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, evt domain.Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.Event) error { return nil }

package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dwikikusuma/naija-assistant/internal/cart/app"
	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
)

var _ app.CartRepo = (*CartRepo)(nil)

type userCart struct {
	mu    sync.Mutex
	items []domain.CartItem
}

// CartRepo is a process-local cart store. Each user's cart has its own lock,
// so read-modify-write on one cart never blocks another user.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string]*userCart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string]*userCart)}
}

// cart returns the user's cart, creating it when create is set. The lookup
// is double-checked so concurrent first adds share one cart.
func (r *CartRepo) cart(userID string, create bool) *userCart {
	r.mu.RLock()
	c, ok := r.carts[userID]
	r.mu.RUnlock()
	if ok || !create {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok = r.carts[userID]; ok {
		return c
	}
	c = &userCart{}
	r.carts[userID] = c
	return c
}

func (r *CartRepo) Get(_ context.Context, userID string) ([]domain.CartItem, error) {
	c := r.cart(userID, false)
	if c == nil {
		return []domain.CartItem{}, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.items), nil
}

func (r *CartRepo) AddItem(_ context.Context, userID string, item domain.CartItem) ([]domain.CartItem, error) {
	c := r.cart(userID, true)
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := indexOf(c.items, item.ProductID); i >= 0 {
		qty, err := domain.MergeQuantity(c.items[i].Quantity, item.Quantity)
		if err != nil {
			return nil, err
		}
		c.items[i].Quantity = qty
	} else {
		c.items = append(c.items, item)
	}
	return snapshot(c.items), nil
}

func (r *CartRepo) RemoveItem(_ context.Context, userID string, productID int64) ([]domain.CartItem, error) {
	c := r.cart(userID, false)
	if c == nil {
		return []domain.CartItem{}, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := indexOf(c.items, productID); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
	return snapshot(c.items), nil
}

func (r *CartRepo) SetItemQuantity(_ context.Context, userID string, productID int64, quantity int32) ([]domain.CartItem, error) {
	c := r.cart(userID, false)
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexOf(c.items, productID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	if quantity <= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	} else {
		c.items[i].Quantity = quantity
	}
	return snapshot(c.items), nil
}

func (r *CartRepo) Clear(_ context.Context, userID string) error {
	c := r.cart(userID, false)
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return nil
}

func indexOf(items []domain.CartItem, productID int64) int {
	return slices.IndexFunc(items, func(it domain.CartItem) bool { return it.ProductID == productID })
}

func snapshot(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

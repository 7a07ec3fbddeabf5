package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNotFound        = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidUser     = errors.New("user id is required")
)

// DefaultMerchant is shown when a product carries no merchant.
const DefaultMerchant = "Unknown Vendor"

// CartItem is one line of a user's cart. A cart holds at most one line per
// ProductID and Quantity is always >= 1.
type CartItem struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
	Image     string  `json:"image"`
	Merchant  string  `json:"merchant"`
}

// MergeQuantity adds a new quantity onto an existing line. A sum that does
// not fit the line's int32 quantity is ErrInvalidQuantity.
func MergeQuantity(current, add int32) (int32, error) {
	sum := int64(current) + int64(add)
	if sum > math.MaxInt32 {
		return 0, fmt.Errorf("%w: merged quantity %d exceeds %d", ErrInvalidQuantity, sum, math.MaxInt32)
	}
	return int32(sum), nil
}

type Totals struct {
	ItemCount int64   `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
}

// ComputeTotals sums the lines. Shipping is only charged on non-empty carts.
func ComputeTotals(items []CartItem, shippingFee float64) Totals {
	var t Totals
	for _, it := range items {
		t.ItemCount += int64(it.Quantity)
		t.Subtotal += it.Price * float64(it.Quantity)
	}
	if len(items) > 0 {
		t.Shipping = shippingFee
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}

type EventType string

const (
	EventItemAdded       EventType = "added"
	EventItemRemoved     EventType = "removed"
	EventQuantityUpdated EventType = "quantity_updated"
	EventCleared         EventType = "cleared"
)

// Event describes a successful cart mutation.
type Event struct {
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id"`
	ProductID int64     `json:"product_id,omitempty"`
	Quantity  int32     `json:"quantity,omitempty"`
	At        time.Time `json:"at"`
}

package app

import (
	"context"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
	cartdomain "github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

// Gateway is the assistant's view of the catalog and cart store.
// FindProductByExactName returns catalogdomain.ErrNotFound on a miss and
// UpdateCartQuantity returns cartdomain.ErrNotFound for an absent line.
type Gateway interface {
	FindProductByExactName(ctx context.Context, name string) (catalogdomain.Product, error)
	SearchProducts(ctx context.Context, query string, f catalogdomain.Filter) ([]catalogdomain.Product, error)
	GetCart(ctx context.Context, userID string) ([]cartdomain.CartItem, error)
	AddToCart(ctx context.Context, userID string, item cartdomain.CartItem) ([]cartdomain.CartItem, error)
	RemoveFromCart(ctx context.Context, userID string, productID int64) ([]cartdomain.CartItem, error)
	UpdateCartQuantity(ctx context.Context, userID string, productID int64, quantity int32) ([]cartdomain.CartItem, error)
	ClearCart(ctx context.Context, userID string) ([]cartdomain.CartItem, error)
}

// Classifier is the NLU provider. Failures wrap domain.ErrClassification.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.Classification, error)
}

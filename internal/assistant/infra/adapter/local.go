// Package adapter implements the assistant's Gateway over the catalog and
// cart services, either in-process or through their gRPC APIs.
package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/naija-assistant/internal/cart/app"
	cartdomain "github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

// Local calls the services directly.
type Local struct {
	catalog *catalogapp.Service
	cart    *cartapp.Service
}

func NewLocal(catalog *catalogapp.Service, cart *cartapp.Service) *Local {
	return &Local{catalog: catalog, cart: cart}
}

func (l *Local) FindProductByExactName(ctx context.Context, name string) (catalogdomain.Product, error) {
	return l.catalog.FindByExactName(ctx, name)
}

func (l *Local) GetProduct(ctx context.Context, id int64) (catalogdomain.Product, error) {
	return l.catalog.GetProduct(ctx, id)
}

func (l *Local) SearchProducts(ctx context.Context, query string, f catalogdomain.Filter) ([]catalogdomain.Product, error) {
	return l.catalog.SearchProducts(ctx, query, f)
}

func (l *Local) ListCategories(ctx context.Context) ([]string, error) {
	return l.catalog.ListCategories(ctx)
}

func (l *Local) CreateProduct(ctx context.Context, p catalogdomain.Product) (catalogdomain.Product, error) {
	return l.catalog.CreateProduct(ctx, p)
}

func (l *Local) GetCart(ctx context.Context, userID string) ([]cartdomain.CartItem, error) {
	return l.cart.GetCart(ctx, userID)
}

func (l *Local) AddToCart(ctx context.Context, userID string, item cartdomain.CartItem) ([]cartdomain.CartItem, error) {
	return l.cart.AddItem(ctx, userID, item)
}

func (l *Local) RemoveFromCart(ctx context.Context, userID string, productID int64) ([]cartdomain.CartItem, error) {
	return l.cart.RemoveItem(ctx, userID, productID)
}

func (l *Local) UpdateCartQuantity(ctx context.Context, userID string, productID int64, quantity int32) ([]cartdomain.CartItem, error) {
	return l.cart.SetItemQuantity(ctx, userID, productID, quantity)
}

func (l *Local) ClearCart(ctx context.Context, userID string) ([]cartdomain.CartItem, error) {
	return l.cart.ClearCart(ctx, userID)
}

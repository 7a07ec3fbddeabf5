package app

import (
	"context"

	"github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	// GetByTitle matches the whole title, ignoring case.
	GetByTitle(ctx context.Context, title string) (domain.Product, error)
	// List returns the full catalog in catalog order.
	List(ctx context.Context) ([]domain.Product, error)
}

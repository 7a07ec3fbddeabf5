package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	"github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

var _ app.ProductRepo = (*ProductRepo)(nil)

// ProductRepo keeps the catalog in memory in insertion order.
type ProductRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	nextID   int64
}

func NewProductRepo(seed ...domain.Product) *ProductRepo {
	r := &ProductRepo{nextID: 1}
	for _, p := range seed {
		r.products = append(r.products, clone(p))
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *ProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, clone(p))
	return clone(p), nil
}

func (r *ProductRepo) Get(_ context.Context, id int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (r *ProductRepo) GetByTitle(_ context.Context, title string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := domain.TitleKey(title)
	for _, p := range r.products {
		if domain.TitleKey(p.Title) == key {
			return clone(p), nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (r *ProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, clone(p))
	}
	return out, nil
}

func clone(p domain.Product) domain.Product {
	p.Categories = slices.Clone(p.Categories)
	if p.Rating != nil {
		r := *p.Rating
		p.Rating = &r
	}
	return p
}

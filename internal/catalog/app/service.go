package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateProduct lists a new product. The repository assigns the id. A title
// already in the catalog (ignoring case) is rejected so exact-name lookups
// stay unambiguous.
func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Title = strings.TrimSpace(p.Title)

	switch {
	case p.Title == "":
		return domain.Product{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	case p.Price < 0:
		return domain.Product{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	case len(p.Categories) == 0:
		return domain.Product{}, fmt.Errorf("%w: at least one category is required", ErrInvalidInput)
	}

	_, err := s.repo.GetByTitle(ctx, p.Title)
	if err == nil {
		return domain.Product{}, fmt.Errorf("%w: %q is already listed", ErrInvalidInput, p.Title)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Product{}, err
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// FindByExactName looks a product up by its full title. Returns
// domain.ErrNotFound when no title matches.
func (s *Service) FindByExactName(ctx context.Context, name string) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, domain.ErrNotFound
	}
	return s.repo.GetByTitle(ctx, name)
}

// SearchProducts runs the fuzzy catalog search. The only error a caller
// should expect besides storage faults is domain.ErrInvalidFilter.
func (s *Service) SearchProducts(ctx context.Context, query string, f domain.Filter) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Search(products, query, f, Categories(products))
}

func (s *Service) ListProducts(ctx context.Context, f domain.Filter) ([]domain.Product, error) {
	return s.SearchProducts(ctx, "", f)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	set := Categories(products)
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

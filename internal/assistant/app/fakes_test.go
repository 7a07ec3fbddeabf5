package app

import (
	"context"
	"slices"
	"strings"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
	cartdomain "github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

// fakeGateway counts every call so tests can assert which paths touch the
// store. err, when set, is returned from every method; panicMsg makes every
// method panic.
type fakeGateway struct {
	products []catalogdomain.Product
	carts    map[string][]cartdomain.CartItem
	err      error
	panicMsg string
	calls    map[string]int
}

func newFakeGateway(products ...catalogdomain.Product) *fakeGateway {
	return &fakeGateway{
		products: products,
		carts:    map[string][]cartdomain.CartItem{},
		calls:    map[string]int{},
	}
}

func (g *fakeGateway) enter(name string) error {
	g.calls[name]++
	if g.panicMsg != "" {
		panic(g.panicMsg)
	}
	return g.err
}

func (g *fakeGateway) totalCalls() int {
	n := 0
	for _, c := range g.calls {
		n += c
	}
	return n
}

func (g *fakeGateway) FindProductByExactName(_ context.Context, name string) (catalogdomain.Product, error) {
	if err := g.enter("FindProductByExactName"); err != nil {
		return catalogdomain.Product{}, err
	}
	for _, p := range g.products {
		if strings.EqualFold(p.Title, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return catalogdomain.Product{}, catalogdomain.ErrNotFound
}

func (g *fakeGateway) SearchProducts(_ context.Context, query string, f catalogdomain.Filter) ([]catalogdomain.Product, error) {
	if err := g.enter("SearchProducts"); err != nil {
		return nil, err
	}
	return catalogapp.Search(g.products, query, f, catalogapp.Categories(g.products))
}

func (g *fakeGateway) GetCart(_ context.Context, userID string) ([]cartdomain.CartItem, error) {
	if err := g.enter("GetCart"); err != nil {
		return nil, err
	}
	return slices.Clone(g.carts[userID]), nil
}

func (g *fakeGateway) AddToCart(_ context.Context, userID string, item cartdomain.CartItem) ([]cartdomain.CartItem, error) {
	if err := g.enter("AddToCart"); err != nil {
		return nil, err
	}
	items := g.carts[userID]
	if i := slices.IndexFunc(items, func(it cartdomain.CartItem) bool { return it.ProductID == item.ProductID }); i >= 0 {
		items[i].Quantity += item.Quantity
	} else {
		items = append(items, item)
	}
	g.carts[userID] = items
	return slices.Clone(items), nil
}

func (g *fakeGateway) RemoveFromCart(_ context.Context, userID string, productID int64) ([]cartdomain.CartItem, error) {
	if err := g.enter("RemoveFromCart"); err != nil {
		return nil, err
	}
	g.carts[userID] = slices.DeleteFunc(g.carts[userID], func(it cartdomain.CartItem) bool { return it.ProductID == productID })
	return slices.Clone(g.carts[userID]), nil
}

func (g *fakeGateway) UpdateCartQuantity(_ context.Context, userID string, productID int64, quantity int32) ([]cartdomain.CartItem, error) {
	if err := g.enter("UpdateCartQuantity"); err != nil {
		return nil, err
	}
	return nil, cartdomain.ErrNotFound
}

func (g *fakeGateway) ClearCart(_ context.Context, userID string) ([]cartdomain.CartItem, error) {
	if err := g.enter("ClearCart"); err != nil {
		return nil, err
	}
	delete(g.carts, userID)
	return []cartdomain.CartItem{}, nil
}

type fakeClassifier struct {
	out      domain.Classification
	err      error
	panicMsg string
}

func (c fakeClassifier) Classify(context.Context, string) (domain.Classification, error) {
	if c.panicMsg != "" {
		panic(c.panicMsg)
	}
	return c.out, c.err
}

func rating(v float64) *float64 { return &v }

func groceries() []catalogdomain.Product {
	return []catalogdomain.Product{
		{ID: 1, Title: "Ankara Fabric Tote Bag", Price: 4500, Categories: []string{"fashion"}, Merchant: "Lagos Crafts"},
		{ID: 13, Title: "Garri", Price: 2500, Categories: []string{"food"}, Rating: rating(4.3), Merchant: "Mama Nkechi Foods"},
		{ID: 14, Title: "Yellow Garri (2kg)", Price: 3200, Categories: []string{"food"}, Merchant: "Ijebu Market Store"},
		{ID: 15, Title: "Ijebu Garri (1kg)", Price: 2500, Categories: []string{"food"}, Rating: rating(4.6)},
		{ID: 16, Title: "Garri Flakes Pack", Price: 1900, Categories: []string{"food"}},
		{ID: 17, Title: "Palm Oil (1L)", Price: 2800, Categories: []string{"food"}},
	}
}

func entities(pairs ...string) []domain.Entity {
	out := make([]domain.Entity, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Entity{Text: pairs[i], Label: pairs[i+1]})
	}
	return out
}

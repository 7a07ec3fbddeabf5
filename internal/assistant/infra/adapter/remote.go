package adapter

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	cartv1 "github.com/dwikikusuma/naija-assistant/api/cartv1"
	catalogv1 "github.com/dwikikusuma/naija-assistant/api/catalogv1"
	cartdomain "github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	cartgrpc "github.com/dwikikusuma/naija-assistant/internal/cart/grpc"
	catalogapp "github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
	cataloggrpc "github.com/dwikikusuma/naija-assistant/internal/catalog/grpc"
)

// Remote talks to a store process. Status codes are mapped back to the
// catalog and cart sentinels so callers keep using errors.Is.
type Remote struct {
	catalog catalogv1.CatalogServiceClient
	cart    cartv1.CartServiceClient
}

func NewRemote(cc grpc.ClientConnInterface) *Remote {
	return &Remote{
		catalog: catalogv1.NewCatalogServiceClient(cc),
		cart:    cartv1.NewCartServiceClient(cc),
	}
}

// DialStore opens a plaintext connection to the store at addr.
func DialStore(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial store %s: %w", addr, err)
	}
	return conn, nil
}

func (r *Remote) FindProductByExactName(ctx context.Context, name string) (catalogdomain.Product, error) {
	res, err := r.catalog.FindProductByName(ctx, &catalogv1.FindProductByNameRequest{Name: name})
	if err != nil {
		return catalogdomain.Product{}, catalogErr(err, catalogapp.ErrInvalidInput)
	}
	return cataloggrpc.FromProto(res.Product), nil
}

func (r *Remote) GetProduct(ctx context.Context, id int64) (catalogdomain.Product, error) {
	res, err := r.catalog.GetProduct(ctx, &catalogv1.GetProductRequest{Id: id})
	if err != nil {
		return catalogdomain.Product{}, catalogErr(err, catalogapp.ErrInvalidInput)
	}
	return cataloggrpc.FromProto(res.Product), nil
}

func (r *Remote) SearchProducts(ctx context.Context, query string, f catalogdomain.Filter) ([]catalogdomain.Product, error) {
	res, err := r.catalog.SearchProducts(ctx, &catalogv1.SearchProductsRequest{
		Query:    query,
		Category: f.Category,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
		SortBy:   string(f.SortBy),
	})
	if err != nil {
		return nil, catalogErr(err, catalogdomain.ErrInvalidFilter)
	}
	out := make([]catalogdomain.Product, 0, len(res.Products))
	for _, p := range res.Products {
		out = append(out, cataloggrpc.FromProto(p))
	}
	return out, nil
}

func (r *Remote) ListCategories(ctx context.Context) ([]string, error) {
	res, err := r.catalog.ListCategories(ctx, &catalogv1.ListCategoriesRequest{})
	if err != nil {
		return nil, catalogErr(err, catalogapp.ErrInvalidInput)
	}
	if res.Categories == nil {
		return []string{}, nil
	}
	return res.Categories, nil
}

func (r *Remote) CreateProduct(ctx context.Context, p catalogdomain.Product) (catalogdomain.Product, error) {
	res, err := r.catalog.CreateProduct(ctx, &catalogv1.CreateProductRequest{Product: cataloggrpc.ToProto(p)})
	if err != nil {
		return catalogdomain.Product{}, catalogErr(err, catalogapp.ErrInvalidInput)
	}
	return cataloggrpc.FromProto(res.Product), nil
}

func (r *Remote) GetCart(ctx context.Context, userID string) ([]cartdomain.CartItem, error) {
	return cartResult(r.cart.GetCart(ctx, &cartv1.UserId{Id: userID}))
}

func (r *Remote) AddToCart(ctx context.Context, userID string, item cartdomain.CartItem) ([]cartdomain.CartItem, error) {
	return cartResult(r.cart.AddItem(ctx, &cartv1.AddItemRequest{UserId: userID, Item: cartgrpc.ItemToProto(item)}))
}

func (r *Remote) RemoveFromCart(ctx context.Context, userID string, productID int64) ([]cartdomain.CartItem, error) {
	return cartResult(r.cart.RemoveItem(ctx, &cartv1.RemoveItemRequest{UserId: userID, ProductId: productID}))
}

func (r *Remote) UpdateCartQuantity(ctx context.Context, userID string, productID int64, quantity int32) ([]cartdomain.CartItem, error) {
	return cartResult(r.cart.SetItemQuantity(ctx, &cartv1.SetItemQuantityRequest{UserId: userID, ProductId: productID, Quantity: quantity}))
}

func (r *Remote) ClearCart(ctx context.Context, userID string) ([]cartdomain.CartItem, error) {
	return cartResult(r.cart.ClearCart(ctx, &cartv1.UserId{Id: userID}))
}

func cartResult(c *cartv1.Cart, err error) ([]cartdomain.CartItem, error) {
	if err != nil {
		return nil, cartErr(err)
	}
	return cartgrpc.ItemsFromProto(c), nil
}

func catalogErr(err error, invalid error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return catalogdomain.ErrNotFound
	case codes.InvalidArgument:
		return withMessage(invalid, st.Message())
	}
	return err
}

func cartErr(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return cartdomain.ErrNotFound
	case codes.InvalidArgument:
		if st.Message() == cartdomain.ErrInvalidUser.Error() {
			return cartdomain.ErrInvalidUser
		}
		return withMessage(cartdomain.ErrInvalidQuantity, st.Message())
	}
	return err
}

// withMessage wraps sentinel with the server's message, which usually
// already starts with the sentinel text.
func withMessage(sentinel error, msg string) error {
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()); ok {
		return fmt.Errorf("%w%s", sentinel, rest)
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

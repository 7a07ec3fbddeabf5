// Package httpapi serves the assistant and the catalog/cart browsing
// endpoints over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
	cartdomain "github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

const headerUserID = "X-User-ID"

type Assistant interface {
	Handle(ctx context.Context, userID, text string) domain.Response
}

type Store interface {
	GetProduct(ctx context.Context, id int64) (catalogdomain.Product, error)
	SearchProducts(ctx context.Context, query string, f catalogdomain.Filter) ([]catalogdomain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, p catalogdomain.Product) (catalogdomain.Product, error)
	GetCart(ctx context.Context, userID string) ([]cartdomain.CartItem, error)
	AddToCart(ctx context.Context, userID string, item cartdomain.CartItem) ([]cartdomain.CartItem, error)
	RemoveFromCart(ctx context.Context, userID string, productID int64) ([]cartdomain.CartItem, error)
	UpdateCartQuantity(ctx context.Context, userID string, productID int64, quantity int32) ([]cartdomain.CartItem, error)
	ClearCart(ctx context.Context, userID string) ([]cartdomain.CartItem, error)
}

type Options struct {
	Assistant     Assistant
	Store         Store
	Logger        *slog.Logger
	DefaultUserID string
	ShippingFee   float64
}

type Handler struct {
	assistant   Assistant
	store       Store
	log         *slog.Logger
	defaultUser string
	shipping    float64
}

func New(opts Options) *Handler {
	h := &Handler{
		assistant:   opts.Assistant,
		store:       opts.Store,
		log:         opts.Logger,
		defaultUser: opts.DefaultUserID,
		shipping:    opts.ShippingFee,
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	if h.defaultUser == "" {
		h.defaultUser = "default_user"
	}
	return h
}

// Routes returns the mux wrapped in request id and access log middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	mux.HandleFunc("POST /assistant", h.handleAssistant)

	mux.HandleFunc("GET /products", h.handleListProducts)
	mux.HandleFunc("POST /products", h.handleCreateProduct)
	mux.HandleFunc("GET /products/{id}", h.handleGetProduct)
	mux.HandleFunc("GET /categories", h.handleListCategories)
	mux.HandleFunc("POST /search", h.handleSearch)

	mux.HandleFunc("GET /cart/{userID}", h.handleGetCart)
	mux.HandleFunc("POST /cart/{userID}/add", h.handleAddToCart)
	mux.HandleFunc("PUT /cart/{userID}/update", h.handleUpdateCart)
	mux.HandleFunc("DELETE /cart/{userID}/remove/{productID}", h.handleRemoveFromCart)
	mux.HandleFunc("DELETE /cart/{userID}/clear", h.handleClearCart)

	return withRequestID(withAccessLog(h.log, mux))
}

type assistantRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

func (h *Handler) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := decode(r, &req); err != nil {
		h.writeErr(w, r, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeErr(w, r, fmt.Errorf("%w: message is required", errBadRequest))
		return
	}

	userID := firstNonEmpty(req.UserID, r.Header.Get(headerUserID), h.defaultUser)
	writeJSON(w, http.StatusOK, h.assistant.Handle(r.Context(), userID, req.Message))
}

type searchRequest struct {
	Query    string   `json:"query"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	SortBy   string   `json:"sort_by,omitempty"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decode(r, &req); err != nil {
		h.writeErr(w, r, err)
		return
	}
	f := catalogdomain.Filter{
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		SortBy:   catalogdomain.SortBy(req.SortBy),
	}
	h.search(w, r, req.Query, f)
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := catalogdomain.Filter{
		Category: q.Get("category"),
		SortBy:   catalogdomain.SortBy(q.Get("sort_by")),
	}
	var err error
	if f.MinPrice, err = optionalFloat(q.Get("min_price")); err != nil {
		h.writeErr(w, r, err)
		return
	}
	if f.MaxPrice, err = optionalFloat(q.Get("max_price")); err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.search(w, r, q.Get("q"), f)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, query string, f catalogdomain.Filter) {
	products, err := h.store.SearchProducts(r.Context(), query, f)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	if products == nil {
		products = []catalogdomain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	p, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var p catalogdomain.Product
	if err := decode(r, &p); err != nil {
		h.writeErr(w, r, err)
		return
	}
	p.ID = 0

	created, err := h.store.CreateProduct(r.Context(), p)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "product listed",
		slog.Int64("product_id", created.ID),
		slog.String("title", created.Title),
	)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": cats})
}

type cartResponse struct {
	UserID string                `json:"user_id"`
	Items  []cartdomain.CartItem `json:"items"`
	cartdomain.Totals
}

func (h *Handler) writeCart(w http.ResponseWriter, userID string, items []cartdomain.CartItem) {
	if items == nil {
		items = []cartdomain.CartItem{}
	}
	writeJSON(w, http.StatusOK, cartResponse{
		UserID: userID,
		Items:  items,
		Totals: cartdomain.ComputeTotals(items, h.shipping),
	})
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	items, err := h.store.GetCart(r.Context(), userID)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.writeCart(w, userID, items)
}

type cartItemRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  *int32 `json:"quantity,omitempty"`
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	var req cartItemRequest
	if err := decode(r, &req); err != nil {
		h.writeErr(w, r, err)
		return
	}
	qty := int32(1)
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	p, err := h.store.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	merchant := p.Merchant
	if merchant == "" {
		merchant = cartdomain.DefaultMerchant
	}

	items, err := h.store.AddToCart(r.Context(), userID, cartdomain.CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Quantity:  qty,
		Image:     p.Image,
		Merchant:  merchant,
	})
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.writeCart(w, userID, items)
}

func (h *Handler) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	var req cartItemRequest
	if err := decode(r, &req); err != nil {
		h.writeErr(w, r, err)
		return
	}
	if req.Quantity == nil {
		h.writeErr(w, r, fmt.Errorf("%w: quantity is required", errBadRequest))
		return
	}

	items, err := h.store.UpdateCartQuantity(r.Context(), userID, req.ProductID, *req.Quantity)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.writeCart(w, userID, items)
}

func (h *Handler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	productID, err := pathInt(r, "productID")
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	items, err := h.store.RemoveFromCart(r.Context(), userID, productID)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.writeCart(w, userID, items)
}

func (h *Handler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	items, err := h.store.ClearCart(r.Context(), userID)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	h.writeCart(w, userID, items)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid json body: %v", errBadRequest, err)
	}
	return nil
}

func pathInt(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	return v, nil
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", errBadRequest, s)
	}
	return &v, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

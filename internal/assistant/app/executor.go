package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
	cartdomain "github.com/dwikikusuma/naija-assistant/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

const maxSimilar = 3

const (
	GreetingMessage = "Hello! I'm your shopping assistant. I can search for products, add items to your cart, " +
		"remove items from your cart, or show you your cart. What would you like to do?"
	GenericErrorMessage = "Sorry, something went wrong while handling your request. Please try again."
	EmptyCartMessage    = "Your cart is empty. Browse our products to find something you like!"
)

type Executor struct {
	gw  Gateway
	log *slog.Logger
}

func NewExecutor(gw Gateway, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{gw: gw, log: log}
}

// Execute runs the action against the gateway. It never fails: gateway
// errors and panics become the generic error outcome and are logged with the
// request's intent and entities.
func (e *Executor) Execute(ctx context.Context, req domain.Request, a domain.Action) (out domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = e.fail(ctx, req, a, fmt.Errorf("panic: %v", r))
		}
	}()

	switch a := a.(type) {
	case domain.Greet:
		return domain.Outcome{Message: GreetingMessage}
	case domain.AddToCart:
		return e.addToCart(ctx, req, a)
	case domain.RemoveFromCart:
		return e.removeFromCart(ctx, req, a)
	case domain.Search:
		return e.search(ctx, req, a)
	case domain.ViewCart:
		return e.viewCart(ctx, req, a)
	case domain.AskClarify:
		return domain.Outcome{Message: clarifyMessage(a)}
	case domain.Decline:
		return domain.Outcome{Message: fmt.Sprintf(
			"Sorry, I didn't understand that request (intent: %q). Try asking me to find a product, add one to your cart, or show your cart.",
			a.RawIntent)}
	}
	return e.fail(ctx, req, a, fmt.Errorf("unhandled action %T", a))
}

func (e *Executor) addToCart(ctx context.Context, req domain.Request, a domain.AddToCart) domain.Outcome {
	p, err := e.gw.FindProductByExactName(ctx, a.ProductName)
	if errors.Is(err, catalogdomain.ErrNotFound) {
		return domain.Outcome{Message: fmt.Sprintf(
			"Sorry, I couldn't find %q in our catalog. Try searching for it to see similar products.", a.ProductName)}
	}
	if err != nil {
		return e.fail(ctx, req, a, err)
	}

	item := cartdomain.CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Quantity:  1,
		Image:     p.Image,
		Merchant:  merchantOf(p),
	}
	if _, err := e.gw.AddToCart(ctx, req.UserID, item); err != nil {
		return e.fail(ctx, req, a, err)
	}

	e.log.DebugContext(ctx, "item added to cart",
		slog.String("user_id", req.UserID),
		slog.Int64("product_id", p.ID),
		slog.String("requested_store", a.StoreName),
	)
	return domain.Outcome{Message: fmt.Sprintf("Added %s from %s to your cart for %s.", p.Title, item.Merchant, naira(p.Price))}
}

func (e *Executor) removeFromCart(ctx context.Context, req domain.Request, a domain.RemoveFromCart) domain.Outcome {
	p, err := e.gw.FindProductByExactName(ctx, a.ProductName)
	if errors.Is(err, catalogdomain.ErrNotFound) {
		return domain.Outcome{Message: fmt.Sprintf("Sorry, I couldn't find %q in your cart.", a.ProductName)}
	}
	if err != nil {
		return e.fail(ctx, req, a, err)
	}

	if _, err := e.gw.RemoveFromCart(ctx, req.UserID, p.ID); err != nil {
		return e.fail(ctx, req, a, err)
	}
	return domain.Outcome{Message: fmt.Sprintf("Removed %s from your cart.", p.Title)}
}

func (e *Executor) search(ctx context.Context, req domain.Request, a domain.Search) domain.Outcome {
	p, err := e.gw.FindProductByExactName(ctx, a.ProductName)
	if err == nil {
		return domain.Outcome{Message: fmt.Sprintf("I found %s from %s for %s.", p.Title, merchantOf(p), naira(p.Price))}
	}
	if !errors.Is(err, catalogdomain.ErrNotFound) {
		return e.fail(ctx, req, a, err)
	}

	similar, err := e.gw.SearchProducts(ctx, a.ProductName, catalogdomain.Filter{})
	if err != nil {
		return e.fail(ctx, req, a, err)
	}
	if len(similar) == 0 {
		return domain.Outcome{Message: fmt.Sprintf("Sorry, I couldn't find any products matching %q.", a.ProductName)}
	}

	names := make([]string, 0, maxSimilar)
	for _, s := range similar[:min(len(similar), maxSimilar)] {
		names = append(names, s.Title)
	}
	return domain.Outcome{Message: fmt.Sprintf(
		"I couldn't find %q exactly, but here are some similar products: %s.", a.ProductName, joinNames(names))}
}

func (e *Executor) viewCart(ctx context.Context, req domain.Request, a domain.ViewCart) domain.Outcome {
	items, err := e.gw.GetCart(ctx, req.UserID)
	if err != nil {
		return e.fail(ctx, req, a, err)
	}
	if len(items) == 0 {
		return domain.Outcome{Message: EmptyCartMessage}
	}

	t := cartdomain.ComputeTotals(items, 0)
	noun := "items"
	if t.ItemCount == 1 {
		noun = "item"
	}
	return domain.Outcome{
		Message:    fmt.Sprintf("You have %d %s in your cart, totalling %s. Taking you to your cart.", t.ItemCount, noun, naira(t.Subtotal)),
		Navigation: &domain.Navigation{Path: domain.CartPath, Action: domain.ActionNavigate},
	}
}

func (e *Executor) fail(ctx context.Context, req domain.Request, a domain.Action, err error) domain.Outcome {
	e.log.ErrorContext(ctx, "assistant action failed",
		slog.String("intent", req.RawIntent),
		slog.Any("entities", req.Entities),
		slog.String("action", actionName(a)),
		slog.String("user_id", req.UserID),
		slog.Any("err", err),
	)
	return domain.Outcome{Message: GenericErrorMessage}
}

func clarifyMessage(a domain.AskClarify) string {
	switch a.Operation {
	case domain.OpAdd:
		return "Which product would you like to add, and from which store? For example: \"add Garri from Mama Nkechi Foods\"."
	case domain.OpRemove:
		return "Which product would you like to remove from your cart?"
	case domain.OpSearch:
		return "What product are you looking for?"
	}
	return fmt.Sprintf("I need a bit more detail to %s: please mention the %s.", a.Operation, strings.Join(a.Needs, " and "))
}

func merchantOf(p catalogdomain.Product) string {
	if p.Merchant == "" {
		return cartdomain.DefaultMerchant
	}
	return p.Merchant
}

func actionName(a domain.Action) string {
	if a == nil {
		return "none"
	}
	return a.Name()
}

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartv1 "github.com/dwikikusuma/naija-assistant/api/cartv1"
	"github.com/dwikikusuma/naija-assistant/internal/cart/app"
	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
)

type Server struct {
	cartv1.UnimplementedCartServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetCart(ctx context.Context, req *cartv1.UserId) (*cartv1.Cart, error) {
	items, err := s.svc.GetCart(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(req.Id, items), nil
}

func (s *Server) AddItem(ctx context.Context, req *cartv1.AddItemRequest) (*cartv1.Cart, error) {
	if req.Item == nil {
		return nil, status.Error(codes.InvalidArgument, "missing item")
	}
	items, err := s.svc.AddItem(ctx, req.UserId, ItemFromProto(req.Item))
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(req.UserId, items), nil
}

func (s *Server) RemoveItem(ctx context.Context, req *cartv1.RemoveItemRequest) (*cartv1.Cart, error) {
	items, err := s.svc.RemoveItem(ctx, req.UserId, req.ProductId)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(req.UserId, items), nil
}

func (s *Server) SetItemQuantity(ctx context.Context, req *cartv1.SetItemQuantityRequest) (*cartv1.Cart, error) {
	items, err := s.svc.SetItemQuantity(ctx, req.UserId, req.ProductId, req.Quantity)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(req.UserId, items), nil
}

func (s *Server) ClearCart(ctx context.Context, req *cartv1.UserId) (*cartv1.Cart, error) {
	items, err := s.svc.ClearCart(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toProto(req.Id, items), nil
}

func toProto(userID string, items []domain.CartItem) *cartv1.Cart {
	out := make([]*cartv1.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, ItemToProto(it))
	}
	return &cartv1.Cart{UserId: userID, Items: out}
}

func ItemToProto(it domain.CartItem) *cartv1.CartItem {
	return &cartv1.CartItem{
		ProductId: it.ProductID,
		Title:     it.Title,
		Price:     it.Price,
		Quantity:  it.Quantity,
		Image:     it.Image,
		Merchant:  it.Merchant,
	}
}

func ItemFromProto(it *cartv1.CartItem) domain.CartItem {
	return domain.CartItem{
		ProductID: it.ProductId,
		Title:     it.Title,
		Price:     it.Price,
		Quantity:  it.Quantity,
		Image:     it.Image,
		Merchant:  it.Merchant,
	}
}

// ItemsFromProto converts a cart message back to domain lines, never nil.
func ItemsFromProto(c *cartv1.Cart) []domain.CartItem {
	out := []domain.CartItem{}
	if c == nil {
		return out
	}
	for _, it := range c.Items {
		if it != nil {
			out = append(out, ItemFromProto(it))
		}
	}
	return out
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidUser):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogv1 "github.com/dwikikusuma/naija-assistant/api/catalogv1"
	"github.com/dwikikusuma/naija-assistant/internal/catalog/app"
	"github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

type Server struct {
	catalogv1.UnimplementedCatalogServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.ProductResponse, error) {
	p, err := s.svc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ProductResponse{Product: ToProto(p)}, nil
}

func (s *Server) FindProductByName(ctx context.Context, req *catalogv1.FindProductByNameRequest) (*catalogv1.ProductResponse, error) {
	p, err := s.svc.FindByExactName(ctx, req.Name)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ProductResponse{Product: ToProto(p)}, nil
}

func (s *Server) SearchProducts(ctx context.Context, req *catalogv1.SearchProductsRequest) (*catalogv1.SearchProductsResponse, error) {
	sortBy, err := domain.ParseSortBy(req.SortBy)
	if err != nil {
		return nil, mapErr(err)
	}
	f := domain.Filter{
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		SortBy:   sortBy,
	}

	products, err := s.svc.SearchProducts(ctx, req.Query, f)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*catalogv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, ToProto(p))
	}
	return &catalogv1.SearchProductsResponse{Products: out}, nil
}

func (s *Server) ListCategories(ctx context.Context, _ *catalogv1.ListCategoriesRequest) (*catalogv1.ListCategoriesResponse, error) {
	cats, err := s.svc.ListCategories(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ListCategoriesResponse{Categories: cats}, nil
}

func (s *Server) CreateProduct(ctx context.Context, req *catalogv1.CreateProductRequest) (*catalogv1.ProductResponse, error) {
	if req.Product == nil {
		return nil, status.Error(codes.InvalidArgument, "product is required")
	}
	p, err := s.svc.CreateProduct(ctx, FromProto(req.Product))
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ProductResponse{Product: ToProto(p)}, nil
}

func ToProto(p domain.Product) *catalogv1.Product {
	return &catalogv1.Product{
		Id:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Categories:  p.Categories,
		Rating:      p.Rating,
		Merchant:    p.Merchant,
		Badge:       p.Badge,
		Description: p.Description,
	}
}

func FromProto(p *catalogv1.Product) domain.Product {
	if p == nil {
		return domain.Product{}
	}
	return domain.Product{
		ID:          p.Id,
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Categories:  p.Categories,
		Rating:      p.Rating,
		Merchant:    p.Merchant,
		Badge:       p.Badge,
		Description: p.Description,
	}
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidFilter) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, domain.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

// Package catalogv1 describes the CatalogService RPC surface. Messages are
// plain structs carried by the grpcjson codec.
package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/naija-assistant/pkg/grpcjson"
)

const (
	ServiceName = "catalog.v1.CatalogService"

	CatalogService_GetProduct_FullMethodName        = "/" + ServiceName + "/GetProduct"
	CatalogService_FindProductByName_FullMethodName = "/" + ServiceName + "/FindProductByName"
	CatalogService_SearchProducts_FullMethodName    = "/" + ServiceName + "/SearchProducts"
	CatalogService_ListCategories_FullMethodName    = "/" + ServiceName + "/ListCategories"
	CatalogService_CreateProduct_FullMethodName     = "/" + ServiceName + "/CreateProduct"
)

type Product struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
	Rating      *float64 `json:"rating,omitempty"`
	Merchant    string   `json:"merchant,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Description string   `json:"description,omitempty"`
}

type GetProductRequest struct {
	Id int64 `json:"id"`
}

type FindProductByNameRequest struct {
	Name string `json:"name"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

type SearchProductsRequest struct {
	Query    string   `json:"query"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	SortBy   string   `json:"sort_by,omitempty"`
}

type SearchProductsResponse struct {
	Products []*Product `json:"products"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CreateProductRequest struct {
	Product *Product `json:"product"`
}

type CatalogServiceServer interface {
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	FindProductByName(context.Context, *FindProductByNameRequest) (*ProductResponse, error)
	SearchProducts(context.Context, *SearchProductsRequest) (*SearchProductsResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded for forward compatibility.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

func (UnimplementedCatalogServiceServer) FindProductByName(context.Context, *FindProductByNameRequest) (*ProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FindProductByName not implemented")
}

func (UnimplementedCatalogServiceServer) SearchProducts(context.Context, *SearchProductsRequest) (*SearchProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchProducts not implemented")
}

func (UnimplementedCatalogServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}

func (UnimplementedCatalogServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*ProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func _CatalogService_GetProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CatalogService_GetProduct_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).GetProduct(ctx, req.(*GetProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_FindProductByName_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FindProductByNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).FindProductByName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CatalogService_FindProductByName_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).FindProductByName(ctx, req.(*FindProductByNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_SearchProducts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).SearchProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CatalogService_SearchProducts_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).SearchProducts(ctx, req.(*SearchProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListCategories_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCategoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListCategories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CatalogService_ListCategories_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ListCategories(ctx, req.(*ListCategoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_CreateProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).CreateProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CatalogService_CreateProduct_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).CreateProduct(ctx, req.(*CreateProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetProduct", Handler: _CatalogService_GetProduct_Handler},
		{MethodName: "FindProductByName", Handler: _CatalogService_FindProductByName_Handler},
		{MethodName: "SearchProducts", Handler: _CatalogService_SearchProducts_Handler},
		{MethodName: "ListCategories", Handler: _CatalogService_ListCategories_Handler},
		{MethodName: "CreateProduct", Handler: _CatalogService_CreateProduct_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.go",
}

type CatalogServiceClient interface {
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	FindProductByName(ctx context.Context, in *FindProductByNameRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	SearchProducts(ctx context.Context, in *SearchProductsRequest, opts ...grpc.CallOption) (*SearchProductsResponse, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(grpcjson.Name)}, opts...)
}

func (c *catalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.cc.Invoke(ctx, CatalogService_GetProduct_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) FindProductByName(ctx context.Context, in *FindProductByNameRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.cc.Invoke(ctx, CatalogService_FindProductByName_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) SearchProducts(ctx context.Context, in *SearchProductsRequest, opts ...grpc.CallOption) (*SearchProductsResponse, error) {
	out := new(SearchProductsResponse)
	if err := c.cc.Invoke(ctx, CatalogService_SearchProducts_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	out := new(ListCategoriesResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ListCategories_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.cc.Invoke(ctx, CatalogService_CreateProduct_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

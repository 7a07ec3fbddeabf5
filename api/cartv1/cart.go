// Package cartv1 describes the CartService RPC surface. Messages are plain
// structs carried by the grpcjson codec.
package cartv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/naija-assistant/pkg/grpcjson"
)

const (
	ServiceName = "cart.v1.CartService"

	CartService_GetCart_FullMethodName         = "/" + ServiceName + "/GetCart"
	CartService_AddItem_FullMethodName         = "/" + ServiceName + "/AddItem"
	CartService_RemoveItem_FullMethodName      = "/" + ServiceName + "/RemoveItem"
	CartService_SetItemQuantity_FullMethodName = "/" + ServiceName + "/SetItemQuantity"
	CartService_ClearCart_FullMethodName       = "/" + ServiceName + "/ClearCart"
)

type CartItem struct {
	ProductId int64   `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
	Image     string  `json:"image"`
	Merchant  string  `json:"merchant"`
}

type UserId struct {
	Id string `json:"id"`
}

type AddItemRequest struct {
	UserId string    `json:"user_id"`
	Item   *CartItem `json:"item"`
}

type RemoveItemRequest struct {
	UserId    string `json:"user_id"`
	ProductId int64  `json:"product_id"`
}

type SetItemQuantityRequest struct {
	UserId    string `json:"user_id"`
	ProductId int64  `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type Cart struct {
	UserId string      `json:"user_id"`
	Items  []*CartItem `json:"items"`
}

type CartServiceServer interface {
	GetCart(context.Context, *UserId) (*Cart, error)
	AddItem(context.Context, *AddItemRequest) (*Cart, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*Cart, error)
	SetItemQuantity(context.Context, *SetItemQuantityRequest) (*Cart, error)
	ClearCart(context.Context, *UserId) (*Cart, error)
}

// UnimplementedCartServiceServer can be embedded for forward compatibility.
type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) GetCart(context.Context, *UserId) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}

func (UnimplementedCartServiceServer) AddItem(context.Context, *AddItemRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItem not implemented")
}

func (UnimplementedCartServiceServer) RemoveItem(context.Context, *RemoveItemRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}

func (UnimplementedCartServiceServer) SetItemQuantity(context.Context, *SetItemQuantityRequest) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method SetItemQuantity not implemented")
}

func (UnimplementedCartServiceServer) ClearCart(context.Context, *UserId) (*Cart, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearCart not implemented")
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

func _CartService_GetCart_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserId)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CartServiceServer).GetCart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CartService_GetCart_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CartServiceServer).GetCart(ctx, req.(*UserId))
	}
	return interceptor(ctx, in, info, handler)
}

func _CartService_AddItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CartServiceServer).AddItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CartService_AddItem_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CartServiceServer).AddItem(ctx, req.(*AddItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CartService_RemoveItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CartServiceServer).RemoveItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CartService_RemoveItem_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CartServiceServer).RemoveItem(ctx, req.(*RemoveItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CartService_SetItemQuantity_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetItemQuantityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CartServiceServer).SetItemQuantity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CartService_SetItemQuantity_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CartServiceServer).SetItemQuantity(ctx, req.(*SetItemQuantityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CartService_ClearCart_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UserId)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CartServiceServer).ClearCart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CartService_ClearCart_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CartServiceServer).ClearCart(ctx, req.(*UserId))
	}
	return interceptor(ctx, in, info, handler)
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCart", Handler: _CartService_GetCart_Handler},
		{MethodName: "AddItem", Handler: _CartService_AddItem_Handler},
		{MethodName: "RemoveItem", Handler: _CartService_RemoveItem_Handler},
		{MethodName: "SetItemQuantity", Handler: _CartService_SetItemQuantity_Handler},
		{MethodName: "ClearCart", Handler: _CartService_ClearCart_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cart/v1/cart.go",
}

type CartServiceClient interface {
	GetCart(ctx context.Context, in *UserId, opts ...grpc.CallOption) (*Cart, error)
	AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*Cart, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*Cart, error)
	SetItemQuantity(ctx context.Context, in *SetItemQuantityRequest, opts ...grpc.CallOption) (*Cart, error)
	ClearCart(ctx context.Context, in *UserId, opts ...grpc.CallOption) (*Cart, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc}
}

func (c *cartServiceClient) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*Cart, error) {
	out := new(Cart)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(grpcjson.Name)}, opts...)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *UserId, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_GetCart_FullMethodName, in, opts)
}

func (c *cartServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_AddItem_FullMethodName, in, opts)
}

func (c *cartServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_RemoveItem_FullMethodName, in, opts)
}

func (c *cartServiceClient) SetItemQuantity(ctx context.Context, in *SetItemQuantityRequest, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_SetItemQuantity_FullMethodName, in, opts)
}

func (c *cartServiceClient) ClearCart(ctx context.Context, in *UserId, opts ...grpc.CallOption) (*Cart, error) {
	return c.invoke(ctx, CartService_ClearCart_FullMethodName, in, opts)
}

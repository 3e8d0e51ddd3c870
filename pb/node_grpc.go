package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NodeServer is the server API for the Node service.
//
// The stubs are written by hand against the cln codec so the package needs no
// protoc toolchain. Proto definition: node.proto.
type NodeServer interface {
	Getinfo(context.Context, *GetinfoRequest) (*GetinfoResponse, error)
	Invoice(context.Context, *InvoiceRequest) (*InvoiceResponse, error)
	ListFunds(context.Context, *ListfundsRequest) (*ListfundsResponse, error)
	Pay(context.Context, *PayRequest) (*PayResponse, error)
}

// UnimplementedNodeServer can be embedded to have forward compatible implementations.
type UnimplementedNodeServer struct{}

func (UnimplementedNodeServer) Getinfo(context.Context, *GetinfoRequest) (*GetinfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Getinfo not implemented")
}
func (UnimplementedNodeServer) Invoice(context.Context, *InvoiceRequest) (*InvoiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Invoice not implemented")
}
func (UnimplementedNodeServer) ListFunds(context.Context, *ListfundsRequest) (*ListfundsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFunds not implemented")
}
func (UnimplementedNodeServer) Pay(context.Context, *PayRequest) (*PayResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Pay not implemented")
}

// RegisterNodeServer registers the Node service on a gRPC server.
func RegisterNodeServer(s grpc.ServiceRegistrar, srv NodeServer) {
	s.RegisterService(&Node_ServiceDesc, srv)
}

// NodeClient is the client API for the Node service.
type NodeClient interface {
	Getinfo(ctx context.Context, in *GetinfoRequest, opts ...grpc.CallOption) (*GetinfoResponse, error)
	Invoice(ctx context.Context, in *InvoiceRequest, opts ...grpc.CallOption) (*InvoiceResponse, error)
	ListFunds(ctx context.Context, in *ListfundsRequest, opts ...grpc.CallOption) (*ListfundsResponse, error)
	Pay(ctx context.Context, in *PayRequest, opts ...grpc.CallOption) (*PayResponse, error)
}

type nodeClient struct{ cc grpc.ClientConnInterface }

// NewNodeClient returns a client that always speaks the cln codec.
func NewNodeClient(cc grpc.ClientConnInterface) NodeClient { return &nodeClient{cc: cc} }

func (c *nodeClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/cln.Node/"+method, in, out, opts...)
}

func (c *nodeClient) Getinfo(ctx context.Context, in *GetinfoRequest, opts ...grpc.CallOption) (*GetinfoResponse, error) {
	out := new(GetinfoResponse)
	if err := c.invoke(ctx, "Getinfo", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nodeClient) Invoice(ctx context.Context, in *InvoiceRequest, opts ...grpc.CallOption) (*InvoiceResponse, error) {
	out := new(InvoiceResponse)
	if err := c.invoke(ctx, "Invoice", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nodeClient) ListFunds(ctx context.Context, in *ListfundsRequest, opts ...grpc.CallOption) (*ListfundsResponse, error) {
	out := new(ListfundsResponse)
	if err := c.invoke(ctx, "ListFunds", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nodeClient) Pay(ctx context.Context, in *PayRequest, opts ...grpc.CallOption) (*PayResponse, error) {
	out := new(PayResponse)
	if err := c.invoke(ctx, "Pay", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func _Node_Getinfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetinfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NodeServer).Getinfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/cln.Node/Getinfo"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NodeServer).Getinfo(ctx, req.(*GetinfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Node_Invoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NodeServer).Invoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/cln.Node/Invoice"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NodeServer).Invoice(ctx, req.(*InvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Node_ListFunds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListfundsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NodeServer).ListFunds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/cln.Node/ListFunds"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NodeServer).ListFunds(ctx, req.(*ListfundsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Node_Pay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NodeServer).Pay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/cln.Node/Pay"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NodeServer).Pay(ctx, req.(*PayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Node_ServiceDesc is the grpc.ServiceDesc for Node service.
var Node_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cln.Node",
	HandlerType: (*NodeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Getinfo", Handler: _Node_Getinfo_Handler},
		{MethodName: "Invoice", Handler: _Node_Invoice_Handler},
		{MethodName: "ListFunds", Handler: _Node_ListFunds_Handler},
		{MethodName: "Pay", Handler: _Node_Pay_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "node.proto",
}

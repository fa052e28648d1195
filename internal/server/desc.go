package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified RPC service name.
const ServiceName = "namereel.v1.Picker"

// PickerServer is the RPC surface. Messages are protobuf well-known types so
// no generated code is needed.
type PickerServer interface {
	SetNames(context.Context, *structpb.ListValue) (*emptypb.Empty, error)
	GetNames(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	SetRemoveWinner(context.Context, *wrapperspb.BoolValue) (*emptypb.Empty, error)
	GetRemoveWinner(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	Spin(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Simulate(context.Context, *wrapperspb.Int32Value) (*structpb.Struct, error)
	Status(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

func fullMethod(name string) string { return "/" + ServiceName + "/" + name }

// unary adapts one typed method to grpc's untyped handler signature.
func unary[Req proto.Message](name string, newReq func() Req, call func(PickerServer, context.Context, Req) (any, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(PickerServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(PickerServer), ctx, req.(Req))
			})
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PickerServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("SetNames", func() *structpb.ListValue { return new(structpb.ListValue) },
			func(s PickerServer, ctx context.Context, in *structpb.ListValue) (any, error) { return s.SetNames(ctx, in) }),
		unary("GetNames", func() *emptypb.Empty { return new(emptypb.Empty) },
			func(s PickerServer, ctx context.Context, in *emptypb.Empty) (any, error) { return s.GetNames(ctx, in) }),
		unary("SetRemoveWinner", func() *wrapperspb.BoolValue { return new(wrapperspb.BoolValue) },
			func(s PickerServer, ctx context.Context, in *wrapperspb.BoolValue) (any, error) {
				return s.SetRemoveWinner(ctx, in)
			}),
		unary("GetRemoveWinner", func() *emptypb.Empty { return new(emptypb.Empty) },
			func(s PickerServer, ctx context.Context, in *emptypb.Empty) (any, error) { return s.GetRemoveWinner(ctx, in) }),
		unary("Spin", func() *emptypb.Empty { return new(emptypb.Empty) },
			func(s PickerServer, ctx context.Context, in *emptypb.Empty) (any, error) { return s.Spin(ctx, in) }),
		unary("Simulate", func() *wrapperspb.Int32Value { return new(wrapperspb.Int32Value) },
			func(s PickerServer, ctx context.Context, in *wrapperspb.Int32Value) (any, error) { return s.Simulate(ctx, in) }),
		unary("Status", func() *emptypb.Empty { return new(emptypb.Empty) },
			func(s PickerServer, ctx context.Context, in *emptypb.Empty) (any, error) { return s.Status(ctx, in) }),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "namereel/v1/picker.proto",
}

// Register attaches srv to s.
func Register(s grpc.ServiceRegistrar, srv PickerServer) {
	s.RegisterService(&serviceDesc, srv)
}

package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// SpinResult is the decoded Spin response.
type SpinResult struct {
	OK        bool
	Reason    string
	Winner    string
	Remaining []string
}

// Client calls a remote Picker service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) SetNames(ctx context.Context, names []string) error {
	in, err := structpb.NewList(toAny(names))
	if err != nil {
		return err
	}
	return c.cc.Invoke(ctx, fullMethod("SetNames"), in, new(emptypb.Empty))
}

func (c *Client) Names(ctx context.Context) ([]string, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, fullMethod("GetNames"), &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return fromList(out), nil
}

func (c *Client) SetRemoveWinner(ctx context.Context, remove bool) error {
	return c.cc.Invoke(ctx, fullMethod("SetRemoveWinner"), wrapperspb.Bool(remove), new(emptypb.Empty))
}

func (c *Client) RemoveWinner(ctx context.Context) (bool, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, fullMethod("GetRemoveWinner"), &emptypb.Empty{}, out); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}

func (c *Client) Spin(ctx context.Context) (SpinResult, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("Spin"), &emptypb.Empty{}, out); err != nil {
		return SpinResult{}, err
	}
	f := out.GetFields()
	return SpinResult{
		OK:        f["ok"].GetBoolValue(),
		Reason:    f["reason"].GetStringValue(),
		Winner:    f["winner"].GetStringValue(),
		Remaining: fromList(f["remaining"].GetListValue()),
	}, nil
}

// Simulate returns the raw fairness report.
func (c *Client) Simulate(ctx context.Context, trials int32) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod("Simulate"), wrapperspb.Int32(trials), out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromList(lv *structpb.ListValue) []string {
	names := make([]string, 0, len(lv.GetValues()))
	for _, v := range lv.GetValues() {
		names = append(names, v.GetStringValue())
	}
	return names
}

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-cln-grpc-proxy/lightningd"
)

// mapErr turns an error from the lightningd service into a gRPC status.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	var rpcErr *lightningd.RPCError
	switch {
	case errors.As(err, &rpcErr):
		// lightningd understood the call and refused it, pass its reason on
		return status.Error(codes.Unknown, rpcErr.Message)
	case errors.Is(err, lightningd.ErrInvalidAmount):
		return status.Error(codes.Internal, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Unavailable, err.Error())
	}
}

package server

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs each unary call with its code and latency.
func LoggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("rpc")
		return resp, err
	}
}

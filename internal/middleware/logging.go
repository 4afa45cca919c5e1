package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Logging writes one line per RPC and attaches a request-scoped logger
// (with request_id) to the context for handlers.
func Logging(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		reqLog := log.With().Str("request_id", uuid.NewString()).Logger()
		ctx = reqLog.WithContext(ctx)

		resp, err := next(ctx, req)

		code := status.Code(err)
		var ev *zerolog.Event
		switch code {
		case codes.OK:
			ev = reqLog.Info()
		case codes.Internal, codes.Unavailable, codes.Unknown, codes.DataLoss:
			ev = reqLog.Error().Err(err)
		default:
			ev = reqLog.Warn().Str("error", status.Convert(err).Message())
		}
		ev.Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("duration", time.Since(start)).
			Msg("rpc")
		return resp, err
	}
}

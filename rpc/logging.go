package rpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs one line per unary call. Rejected program claims
// are logged at warn level, other failures at error level.
func LoggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = zap.NewNop()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err == nil:
			log.Debug("rpc", fields...)
		case code == codes.PermissionDenied:
			log.Warn("rpc rejected", append(fields, zap.Error(err))...)
		default:
			log.Error("rpc failed", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}

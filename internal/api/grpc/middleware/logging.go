package middleware

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/storytrails-server/internal/logger"
)

// InterceptorLogger adapts the application logger to the grpc-middleware logging interceptors.
func InterceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), "gRPC "+msg, fields...)
	})
}

// RecoveryHandler logs a recovered panic and answers codes.Internal.
func RecoveryHandler(l *logger.Logger) func(p any) error {
	return func(p any) error {
		l.Error("gRPC handler panicked", "panic", fmt.Sprint(p))
		return status.Error(codes.Internal, "internal server error")
	}
}

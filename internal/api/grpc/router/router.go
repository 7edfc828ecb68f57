package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/storytrails-server/internal/api/grpc/middleware"
	"github.com/dtroode/storytrails-server/internal/logger"
)

// ServiceName is the health service name reported for the reading tracker API.
const ServiceName = "storytrails.API"

// Router builds the gRPC server that exposes the standard health service.
type Router struct {
	health *health.Server
	logger *logger.Logger
}

// New creates new gRPC Router instance. Every service starts NOT_SERVING until a probe succeeds.
func New(logger *logger.Logger) *Router {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Router{health: hs, logger: logger}
}

// Health returns the health server whose status the probe updates.
func (r *Router) Health() *health.Server {
	return r.health
}

// Register builds the gRPC server with logging and panic recovery interceptors.
func (r *Router) Register() *grpc.Server {
	interceptorLogger := middleware.InterceptorLogger(r.logger)
	recoveryOpt := recovery.WithRecoveryHandler(middleware.RecoveryHandler(r.logger))

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(interceptorLogger),
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(interceptorLogger),
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}

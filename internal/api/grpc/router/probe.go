package router

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/storytrails-server/internal/logger"
)

// Pinger checks database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe keeps the health server in sync with database reachability.
type Probe struct {
	pinger   Pinger
	health   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

func NewProbe(pinger Pinger, health *health.Server, interval time.Duration, logger *logger.Logger) *Probe {
	return &Probe{pinger: pinger, health: health, interval: interval, logger: logger}
}

// Run checks immediately and then every interval until ctx is done.
// On return all services are reported NOT_SERVING.
func (p *Probe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			p.health.Shutdown()
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}

// Check pings the database once and updates the serving status.
func (p *Probe) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := p.pinger.Ping(ctx); err != nil {
		p.logger.Warn("Health probe: database unreachable", "error", err.Error())
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}

	p.health.SetServingStatus("", st)
	p.health.SetServingStatus(ServiceName, st)
}

// Package health publishes readiness over the standard gRPC health protocol.
package health

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service is the name reported next to the overall ("") status.
const Service = "ropa.market.API"

type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker flips the health status with the result of a database ping.
type Checker struct {
	db      Pinger
	srv     *health.Server
	healthy atomic.Bool
}

func NewChecker(db Pinger) *Checker {
	c := &Checker{db: db, srv: health.NewServer()}
	c.set(false)
	return c
}

// Register exposes grpc.health.v1.Health on s.
func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.srv)
}

func (c *Checker) Healthy() bool { return c.healthy.Load() }

// Check pings the database once and records the outcome.
func (c *Checker) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := c.db.Ping(ctx)
	ok := err == nil
	if ok != c.healthy.Load() {
		if ok {
			log.Printf("[health] database reachable, serving")
		} else {
			log.Printf("[health] database ping failed, not serving: %v", err)
		}
	}
	c.set(ok)
	return ok
}

// Run checks every interval until ctx is done, then reports NOT_SERVING.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	c.Check(ctx)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			c.srv.Shutdown()
			return
		case <-t.C:
			c.Check(ctx)
		}
	}
}

func (c *Checker) set(ok bool) {
	c.healthy.Store(ok)
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	c.srv.SetServingStatus("", st)
	c.srv.SetServingStatus(Service, st)
}

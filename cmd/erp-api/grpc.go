package main

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// serviceName is the health entry probes ask for; "" covers the whole server.
const serviceName = "erp.v1.Sales"

func newGRPCServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	return srv, hs
}

// watchHealth mirrors the storage ping into the gRPC health status until ctx ends.
func watchHealth(ctx context.Context, hs *health.Server, ping func(context.Context) error, every time.Duration, log *zap.Logger) {
	if ping == nil {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()

	last := healthpb.HealthCheckResponse_SERVING
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := ping(pctx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		if status != last {
			log.Warn("health changed", zap.String("status", status.String()), zap.Error(err))
			last = status
		}
		hs.SetServingStatus(serviceName, status)
	}
}

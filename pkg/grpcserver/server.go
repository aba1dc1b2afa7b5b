// Package grpcserver runs an optional gRPC server exposing the standard
// health service. Load balancers and orchestration probes use it to check
// liveness without touching the HTTP surface.
package grpcserver

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/craftline/storefront/pkg/logger"
)

// Server wraps the gRPC server and its health service.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	port   string
}

func New(port string) *Server {
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(loggingInterceptor),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	return &Server{grpc: srv, health: hs, port: port}
}

// Start listens on the configured port. Blocks until Stop is called.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return fmt.Errorf("grpcserver: listen :%s: %w", s.port, err)
	}

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	logger.Info("grpc server listening", "port", s.port)

	return s.grpc.Serve(lis)
}

// Stop marks the health service not-serving and drains in-flight RPCs.
func (s *Server) Stop() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s.grpc.GracefulStop()
}

func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	logger.Debug("grpc request",
		"method", info.FullMethod,
		"duration", time.Since(start).String(),
		"error", err,
	)
	return resp, err
}

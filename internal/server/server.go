// Package server boots the storefront: configuration, database, cache,
// storage, the HTTP surface and the optional gRPC health server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/craftline/storefront/app/controllers"
	"github.com/craftline/storefront/app/repositories"
	"github.com/craftline/storefront/app/routes"
	"github.com/craftline/storefront/app/services"
	"github.com/craftline/storefront/config"
	"github.com/craftline/storefront/pkg/cache"
	"github.com/craftline/storefront/pkg/database"
	"github.com/craftline/storefront/pkg/graphql"
	"github.com/craftline/storefront/pkg/grpcserver"
	"github.com/craftline/storefront/pkg/logger"
	"github.com/craftline/storefront/pkg/metrics"
	"github.com/craftline/storefront/pkg/middleware"
	"github.com/craftline/storefront/pkg/migration"
	"github.com/craftline/storefront/pkg/reqid"
	"github.com/craftline/storefront/pkg/router"
	"github.com/craftline/storefront/pkg/storage"
	"github.com/craftline/storefront/pkg/ws"
)

// Server owns the process-wide resources of a running storefront.
type Server struct {
	http *http.Server
	grpc *grpcserver.Server
	rtr  *router.Router
}

// New connects every backing service and builds the route table.
func New() (*Server, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return nil, err
	}

	// Redis and Mongo are optional; the storefront degrades without them.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, catalog served uncached", "error", err)
	}
	if uri := config.MongoLogURI(); uri != "" {
		if err := logger.EnableMongoSink(uri, config.MongoLogDB()); err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		}
	}
	storage.Connect()

	if err := migration.New(database.DB).Run(); err != nil {
		return nil, fmt.Errorf("server: migrate: %w", err)
	}

	rtr := buildRouter()

	s := &Server{
		rtr: rtr,
		http: &http.Server{
			Addr:              ":" + config.AppPort(),
			Handler:           rtr.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}

	if port := config.GRPCPort(); port != "" {
		s.grpc = grpcserver.New(port)
	}

	return s, nil
}

func buildRouter() *router.Router {
	userRepo := repositories.NewUserRepository(database.DB)
	productRepo := repositories.NewProductRepository(database.DB)
	cartRepo := repositories.NewCartRepository(database.DB)
	wishlistRepo := repositories.NewWishlistRepository(database.DB)

	hub := ws.NewHub()

	authSvc := services.NewAuthService(userRepo)
	productSvc := services.NewProductService(productRepo, hub)
	cartSvc := services.NewCartService(cartRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo)

	rtr := router.New()
	rtr.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
		middleware.Authenticate(userRepo),
	)

	deps := routes.Deps{
		Auth:      controllers.NewAuthController(authSvc),
		Products:  controllers.NewProductController(productSvc),
		Carts:     controllers.NewCartController(cartSvc),
		Wishlists: controllers.NewWishlistController(wishlistSvc),
		Hub:       hub,
	}

	schema, err := graphql.NewSchema(productRepo)
	if err != nil {
		logger.Error("graphql schema build failed, endpoint disabled", "error", err)
	} else {
		deps.GraphQL = graphql.Handler(schema)
	}

	routes.Register(rtr, deps)
	return rtr
}

// Router exposes the route table, used by route:list.
func (s *Server) Router() *router.Router { return s.rtr }

// Start serves HTTP (and gRPC when configured) until ctx is cancelled,
// then drains connections.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server listening", "addr", s.http.Addr, "env", config.AppEnv())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if s.grpc != nil {
		go func() {
			if err := s.grpc.Start(); err != nil {
				errCh <- err
			}
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if s.grpc != nil {
		s.grpc.Stop()
	}
	return s.http.Shutdown(shutdownCtx)
}

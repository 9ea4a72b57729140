package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anuraag-firstaid/storefront/internal/api/handlers"
	"github.com/anuraag-firstaid/storefront/internal/api/middleware"
	"github.com/anuraag-firstaid/storefront/internal/config"
	"github.com/anuraag-firstaid/storefront/internal/health"
	"github.com/anuraag-firstaid/storefront/internal/kv"
	"github.com/anuraag-firstaid/storefront/internal/metrics"
	repository "github.com/anuraag-firstaid/storefront/internal/repositories"
	service "github.com/anuraag-firstaid/storefront/internal/services"
	"github.com/anuraag-firstaid/storefront/pkg/sendgrid"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	redisClient, err := kv.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := kv.NewRedisStore(redisClient)
	defer store.Close()

	jwtKey := []byte(cfg.Security.JWTKey)

	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, &cfg.RateLimit)
	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey)
	userHandler := handlers.NewUserHandler(userService)

	catalogService := service.NewCatalogService(repository.NewCatalogRepo(store))
	productHandler := handlers.NewProductHandler(catalogService)

	cartService := service.NewCartService(repository.NewCartRepo(store))
	cartHandler := handlers.NewCartHandler(cartService, catalogService)

	contactService := service.NewContactService(emailService, cfg.SendGrid.ContactInbox)
	contactHandler := handlers.NewContactHandler(contactService)

	authMiddleware := middleware.NewAuthMiddleware(jwtKey)
	adminMiddleware := middleware.NewAdminMiddleware(cfg.Security.AdminPasswordHash)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed the catalog record up front so the first storefront request does
	// not pay for it.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 5*time.Second)
	if _, err := catalogService.ListProducts(seedCtx, "all"); err != nil {
		slog.Warn("Catalog seeding deferred to first request", slog.String("error", err.Error()))
	}

	cancelSeed()

	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /api/v1/admin/products", adminMiddleware.RequireAdmin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PATCH /api/v1/admin/products/{id}/stock", adminMiddleware.RequireAdmin(productHandler.ToggleStock()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", adminMiddleware.RequireAdmin(productHandler.RemoveProduct()))

	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/session/attach", authMiddleware.Authenticate(cartHandler.Attach()))
	routerMux.HandleFunc("POST /api/v1/session/detach", cartHandler.Detach())

	routerMux.HandleFunc("POST /api/v1/contact", contactHandler.Submit())

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", cfg.Addr), slog.String("env", cfg.Env))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}
}

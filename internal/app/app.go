// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/bistroboss/bistro-api/internal/cart"
	cartpostgres "github.com/bistroboss/bistro-api/internal/cart/postgres"
	"github.com/bistroboss/bistro-api/internal/config"
	"github.com/bistroboss/bistro-api/internal/identity"
	identitypostgres "github.com/bistroboss/bistro-api/internal/identity/postgres"
	"github.com/bistroboss/bistro-api/internal/identity/token"
	"github.com/bistroboss/bistro-api/internal/menu"
	menupostgres "github.com/bistroboss/bistro-api/internal/menu/postgres"
	"github.com/bistroboss/bistro-api/internal/payments"
	paymentspostgres "github.com/bistroboss/bistro-api/internal/payments/postgres"
	"github.com/bistroboss/bistro-api/internal/payments/stripe"
	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
	"github.com/bistroboss/bistro-api/internal/pkg/httputil"
	"github.com/bistroboss/bistro-api/internal/pkg/metrics"
	"github.com/bistroboss/bistro-api/internal/pkg/postgres"
	"github.com/bistroboss/bistro-api/internal/reviews"
	reviewspostgres "github.com/bistroboss/bistro-api/internal/reviews/postgres"
	"github.com/bistroboss/bistro-api/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App represents the application instance.
type App struct {
	config        *config.Config
	logger        *slog.Logger
	db            *pgxpool.Pool
	server        *http.Server
	metricsServer *http.Server
	metricsCancel context.CancelFunc
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	return newApp(cfg, nil)
}

// NewWithGateway creates an application with a custom payment gateway.
// Used in tests to avoid real Stripe calls.
func NewWithGateway(cfg *config.Config, gateway payments.Gateway) (*App, error) {
	return newApp(cfg, gateway)
}

func newApp(cfg *config.Config, gateway payments.Gateway) (*App, error) {
	logger := initLogger(cfg.Log)

	db, err := postgres.Connect(context.Background(), postgres.Config{
		URL:             cfg.Database.URL,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
		ConnectAttempts: cfg.Database.ConnectAttempts,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	metricsCtx, metricsCancel := context.WithCancel(context.Background())

	app := &App{
		config:        cfg,
		logger:        logger,
		db:            db,
		metricsCancel: metricsCancel,
	}

	go app.collectDBMetrics(metricsCtx)

	router, err := app.setupRouter(gateway)
	if err != nil {
		db.Close()
		metricsCancel()
		return nil, fmt.Errorf("setup router: %w", err)
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Metrics server on separate port
	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	app.metricsServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:           metricsRouter,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP servers.
func (a *App) Run() error {
	go func() {
		a.logger.Info("starting metrics server",
			"host", a.config.Server.Host,
			"port", a.config.Server.MetricsPort,
		)
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("metrics server error", "error", err)
		}
	}()

	a.logger.Info("starting server",
		"host", a.config.Server.Host,
		"port", a.config.Server.Port,
	)

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	a.metricsCancel()

	var wg sync.WaitGroup
	var errs []error
	var mu sync.Mutex

	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := a.server.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
			mu.Unlock()
		}
	}()

	go func() {
		defer wg.Done()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
			mu.Unlock()
		}
	}()

	wg.Wait()

	a.db.Close()

	return errors.Join(errs...)
}

func (a *App) collectDBMetrics(ctx context.Context) {
	// Collect immediately on start
	metrics.RecordDBPoolMetrics(a.db)

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			metrics.RecordDBPoolMetrics(a.db)
		case <-ctx.Done():
			return
		}
	}
}

// Router returns the HTTP handler for testing.
func (a *App) Router() http.Handler {
	return a.server.Handler
}

func (a *App) setupRouter(gateway payments.Gateway) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Metrics middleware must be first to measure full request time
	r.Use(httputil.MetricsMiddleware)

	// CORS must be early to handle preflight requests before other middleware
	r.Use(httputil.CORSMiddleware(a.config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLoggerMiddleware(a.logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httputil.Text(w, http.StatusOK, "Bistro Boss is ACTIVE")
	})
	r.Get("/healthz", a.healthzHandler)
	r.Get("/readyz", a.readyzHandler)
	r.Get("/version", a.versionHandler)

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		http.ServeFile(w, r, "api/openapi/openapi.yaml")
	})

	r.Get("/docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Bistro API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        SwaggerUIBundle({
            url: "/api/openapi.yaml",
            dom_id: '#swagger-ui',
            presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
            layout: "BaseLayout"
        });
    </script>
</body>
</html>`))
	})

	authenticator := token.NewAuthenticator(token.Config{
		SecretKey:     a.config.JWT.SecretKey,
		TokenDuration: a.config.JWT.TokenDuration,
	})

	identityRepo := identitypostgres.NewRepository(a.db)
	identityService := identity.NewService(identityRepo, authenticator)
	identityHandler := identity.NewHandler(identityService)

	menuRepo := menupostgres.NewRepository(a.db)
	menuService := menu.NewService(menuRepo)
	menuHandler := menu.NewHandler(menuService)

	reviewsRepo := reviewspostgres.NewRepository(a.db)
	reviewsHandler := reviews.NewHandler(reviewsRepo)

	cartRepo := cartpostgres.NewRepository(a.db)
	cartService := cart.NewService(cartRepo)
	cartHandler := cart.NewHandler(cartService)

	if gateway == nil {
		gateway = stripe.NewGateway(stripe.Config{SecretKey: a.config.Stripe.SecretKey})
	}
	paymentsRepo := paymentspostgres.NewRepository(a.db)
	paymentsService, err := payments.NewService(paymentsRepo, gateway, a.config.Stripe.Currency)
	if err != nil {
		return nil, fmt.Errorf("create payments service: %w", err)
	}
	paymentsHandler := payments.NewHandler(paymentsService)

	// Token issuance is throttled; everything else public is read-mostly.
	r.Group(func(r chi.Router) {
		r.Use(httputil.RateLimitMiddleware(
			a.config.RateLimit.TokenRequestsPerSecond,
			a.config.RateLimit.TokenBurst,
		))
		r.Post("/jwt", identityHandler.IssueToken)
	})
	r.Post("/users", identityHandler.Register)

	menuHandler.RegisterPublicRoutes(r)
	reviewsHandler.RegisterPublicRoutes(r)
	paymentsHandler.RegisterPublicRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(httputil.AuthMiddleware(authenticator))

		identityHandler.RegisterProtectedRoutes(r)
		reviewsHandler.RegisterProtectedRoutes(r)
		cartHandler.RegisterProtectedRoutes(r)
		paymentsHandler.RegisterProtectedRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(httputil.RequireAdmin(identityService))

			identityHandler.RegisterAdminRoutes(r)
			menuHandler.RegisterAdminRoutes(r)
			reviewsHandler.RegisterAdminRoutes(r)
		})
	})

	return r, nil
}

func (a *App) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) readyzHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		ctxlog.FromContext(r.Context()).Error("readiness check failed", "error", err)
		httputil.Text(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	httputil.Text(w, http.StatusOK, "OK")
}

func (a *App) versionHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"commit":     version.GitCommit,
		"build_date": version.BuildDate,
	})
}

func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

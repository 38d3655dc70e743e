package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/novaflix/api"
	"github.com/metinatakli/novaflix/internal/admin"
	"github.com/metinatakli/novaflix/internal/auth"
	"github.com/metinatakli/novaflix/internal/cart"
	"github.com/metinatakli/novaflix/internal/catalog"
	"github.com/metinatakli/novaflix/internal/domain"
	appmiddleware "github.com/metinatakli/novaflix/internal/middleware"
	appvalidator "github.com/metinatakli/novaflix/internal/validator"
	"github.com/metinatakli/novaflix/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "novaflix-api"

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	redis          redis.UniversalClient
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	openapiRouter  routers.Router

	catalog *catalog.Catalog
	cart    *cart.Broker
	admin   *admin.Manager
	gate    *auth.Gate
}

func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	cfg.RegisterFlags(flag.CommandLine)
	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	app, err := NewApp(cfg, logger, redisClient)
	if err != nil {
		return err
	}

	return app.run()
}

// NewApp wires the stores of the application. A nil redis client keeps carts
// and sessions in memory.
func NewApp(cfg Config, logger *slog.Logger, redisClient *redis.Client) (*Application, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	// requests are matched on path only
	swagger.Servers = nil

	openapiRouter, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	gate, err := auth.NewGate(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return nil, err
	}

	var store domain.CartStore
	var sessionManager *scs.SessionManager
	var client redis.UniversalClient

	if redisClient != nil {
		client = redisClient
		store = cart.NewRedisStore(redisClient)
		sessionManager = NewSessionManager(cfg, goredisstore.New(redisClient))
	} else {
		store = cart.NewMemoryStore()
		sessionManager = NewSessionManager(cfg, memstore.New())
	}

	return &Application{
		config:         cfg,
		logger:         logger,
		redis:          client,
		validator:      appvalidator.NewValidator(),
		sessionManager: sessionManager,
		openapiRouter:  openapiRouter,
		catalog:        catalog.New(),
		cart:           cart.NewBroker(store, logger),
		admin:          admin.NewManager(),
		gate:           gate,
	}, nil
}

func NewSessionManager(cfg Config, store scs.Store) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = store
	sessionManager.IdleTimeout = cfg.Session.IdleTimeout
	if cfg.Session.Lifetime > 0 {
		sessionManager.Lifetime = cfg.Session.Lifetime
	}
	sessionManager.Cookie.Name = "session_id"
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	opts, err := redisOptions(cfg.Redis)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	err = errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

// redisOptions accepts either a redis:// URL or a bare host:port address.
func redisOptions(cfg RedisConfig) (*redis.Options, error) {
	opts := &redis.Options{Addr: cfg.URL}

	if strings.Contains(cfg.URL, "://") {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opts = parsed
	}

	opts.MaxIdleConns = cfg.MaxIdleConns
	opts.MaxActiveConns = cfg.MaxOpenConns
	opts.ConnMaxIdleTime = cfg.MaxIdleTime

	return opts, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:        fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:     app.Routes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 5 * time.Second,
		// cart event streams clear their own write deadline
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.cart.Close()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "redis", app.redis != nil)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(appmiddleware.OapiRequestValidator(app.openapiRouter, app.badRequestResponse))

	r.Get("/healthcheck", app.GetHealth)

	// scs buffers the whole response, so the event stream loads its session by hand
	r.Get("/cart/events", app.StreamCartEvents)

	r.Group(func(r chi.Router) {
		r.Use(app.sessionManager.LoadAndSave)
		r.Use(app.ensureViewerSession)

		r.Get("/genres", app.GetGenres)
		r.Get("/browse", app.GetBrowse)
		r.Put("/browse/genre", app.ToggleGenre)
		r.Delete("/browse/genre", app.ClearGenre)

		r.Get("/movies/{movieId}", app.GetMovie)

		r.Get("/cart", app.GetCart)
		r.Post("/cart", app.AddToCart)
		r.Delete("/cart/{movieId}", app.RemoveFromCart)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", app.AdminLogin)
			r.Post("/logout", app.AdminLogout)

			r.Group(func(r chi.Router) {
				r.Use(app.requireAdmin)

				r.Get("/stats", app.GetAdminStats)

				r.Get("/movies", app.GetAdminMovies)
				r.Post("/movies", app.CreateAdminMovie)
				r.Get("/movies/{movieId}", app.GetAdminMovie)
				r.Put("/movies/{movieId}", app.UpdateAdminMovie)
				r.Delete("/movies/{movieId}", app.DeleteAdminMovie)
				r.Put("/movies/{movieId}/category", app.AssignMovieCategory)

				r.Get("/categories", app.GetCategories)
				r.Post("/categories", app.CreateCategory)
				r.Put("/categories/{categoryId}", app.UpdateCategory)
				r.Delete("/categories/{categoryId}", app.DeleteCategory)
			})
		})
	})

	return r
}

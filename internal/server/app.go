// Package server initializes and runs the gatekeeper server: it wires the
// user directory, the auth core, the object-storage service, and the gRPC
// endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/runtimecache"
	"github.com/dmitrijs2005/gatekeeper/internal/server/shared/db"
	"github.com/dmitrijs2005/gatekeeper/internal/server/storage"
	"github.com/dmitrijs2005/gatekeeper/internal/server/users"

	gs "github.com/dmitrijs2005/gatekeeper/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	manager        db.RepositoryManager
	resolver       *auth.Resolver
	userService    *users.Service
	storageService *storage.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	codec := auth.NewCodec([]byte(c.SecretKey))
	resolver := auth.NewResolver(codec, manager.Users())

	us := users.NewService(manager.Users(), codec, c)

	// The cache lives exactly as long as the app; services share the one
	// instance the app constructed.
	cache := runtimecache.New()
	ss := storage.NewService(c, cache)

	return &App{
		config:         c,
		logger:         logger,
		manager:        manager,
		resolver:       resolver,
		userService:    us,
		storageService: ss,
	}, nil
}

// Services exposes the constructed services for transport registration.
func (app *App) Services() (*users.Service, *storage.Service) {
	return app.userService, app.storageService
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// methodRoles declares which RPC methods need a resolved identity and which
// roles are acceptable for each. Call sites own their requirement; nothing
// here is a global hierarchy.
func (app *App) methodRoles() map[string][]string {
	return map[string][]string{
		"/gatekeeper.service.Gatekeeper/GetUploadURL":   {"user", "admin"},
		"/gatekeeper.service.Gatekeeper/GetDownloadURL": {"user", "admin"},
		"/gatekeeper.service.Gatekeeper/SetActive":      {"admin"},
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	register := func(srv *grpc.Server) {
		grpc_health_v1.RegisterHealthServer(srv, health.NewServer())
	}

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.resolver, app.methodRoles(), register)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.manager.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	return nil
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"

	"github.com/DanYankho/equipResourceBooking/internal/config"
	"github.com/DanYankho/equipResourceBooking/internal/handler"
	"github.com/DanYankho/equipResourceBooking/internal/middleware"
	"github.com/DanYankho/equipResourceBooking/internal/notification"
	"github.com/DanYankho/equipResourceBooking/internal/repository"
	"github.com/DanYankho/equipResourceBooking/internal/router"
	"github.com/DanYankho/equipResourceBooking/internal/service"
	"github.com/DanYankho/equipResourceBooking/internal/storage/flatfile"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	store      *flatfile.Store
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"equipResourceBooking",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStore(); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStore() error {
	store := flatfile.New(a.cfg.Storage.Dir)
	if err := store.Initialize(); err != nil {
		return fmt.Errorf("seed collections: %w", err)
	}

	a.store = store
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "store initialized",
		logger.String("dir", a.cfg.Storage.Dir),
	)

	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.store)
	resourceRepo := repository.NewResourceRepo(a.store)
	bookingRepo := repository.NewBookingRepo(a.store)
	adminRepo := repository.NewAdminRepo(a.store)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	userService := service.NewUserService(userRepo)
	resourceService := service.NewResourceService(resourceRepo)
	bookingService := service.NewBookingService(bookingRepo, n, a.log)
	authService := service.NewAuthService(adminRepo, a.log)

	h := handler.NewHandler(userService, resourceService, bookingService, authService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

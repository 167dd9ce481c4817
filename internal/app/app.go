package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/arnavb2004/Guest-House-Portal/internal/config"
	"github.com/arnavb2004/Guest-House-Portal/internal/handler"
	"github.com/arnavb2004/Guest-House-Portal/internal/middleware"
	"github.com/arnavb2004/Guest-House-Portal/internal/notification"
	"github.com/arnavb2004/Guest-House-Portal/internal/repository"
	"github.com/arnavb2004/Guest-House-Portal/internal/router"
	"github.com/arnavb2004/Guest-House-Portal/internal/rulebook"
	"github.com/arnavb2004/Guest-House-Portal/internal/scheduler"
	"github.com/arnavb2004/Guest-House-Portal/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"GuestHousePortal",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	reservationRepo := repository.NewReservationRepo(a.db)
	roomRepo := repository.NewRoomRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	chargeRepo := repository.NewChargeRepo(a.db)
	ledgerRepo := repository.NewLedgerRepo(a.db)

	rules := rulebook.Default()

	email := notification.NewEmailNotifier(
		a.cfg.SMTP.Host,
		a.cfg.SMTP.Port,
		a.cfg.SMTP.User,
		a.cfg.SMTP.Password,
		a.cfg.SMTP.From,
		a.log,
	)
	telegram, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.DeskChatID, userRepo, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	dispatch := service.NewDispatcher(userRepo, notification.Multi{email, telegram}, a.cfg.Notify.Timeout, a.log)

	domainSuffix := a.cfg.Portal.EmailDomain
	reservationService := service.NewReservationService(reservationRepo, userRepo, chargeRepo, rules, dispatch, domainSuffix, a.log)
	allocationService := service.NewAllocationService(roomRepo, reservationRepo, dispatch, a.log)
	lifecycleService := service.NewLifecycleService(reservationRepo, userRepo, chargeRepo, ledgerRepo, rules, dispatch, domainSuffix, a.log)
	userService := service.NewUserService(userRepo, rules)

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(reservationService, allocationService, lifecycleService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
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

	go a.scheduler.Start(ctx)

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

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}

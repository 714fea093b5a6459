package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EnmaSantos/office-snack-app/docs"
	"github.com/EnmaSantos/office-snack-app/internal/config"
	"github.com/EnmaSantos/office-snack-app/internal/handler"
	applogger "github.com/EnmaSantos/office-snack-app/internal/logger"
	"github.com/EnmaSantos/office-snack-app/internal/middleware"
	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/repository"
	"github.com/EnmaSantos/office-snack-app/internal/seed"
	"github.com/EnmaSantos/office-snack-app/internal/service"
	"github.com/EnmaSantos/office-snack-app/internal/ws"
	"github.com/EnmaSantos/office-snack-app/pkg/database"

	"github.com/gofiber/swagger"
)

// @title Office Snack API
// @version 1.0.0
// @description Office snack store: catalog, checkout, balances and snack requests.
// @contact.name API Support
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	bootLog := applogger.New("info", "text")
	cfg, err := config.Load(bootLog)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := applogger.New(cfg.Log.Level, cfg.Log.Format)

	// 1. Database
	db, err := database.Connect(database.Config{
		Driver:   cfg.DB.Driver,
		URL:      cfg.DB.URL,
		Host:     cfg.DB.Host,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Name:     cfg.DB.Name,
		Port:     cfg.DB.Port,
		LogLevel: cfg.DB.LogLevel,
	}, log)
	if err != nil {
		return err
	}
	if err := model.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// 2. WebSocket hub
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := ws.NewHub(log)
	go hub.Run(ctx)

	// 3. Wiring
	userRepo := repository.NewUserRepo(db)
	snackRepo := repository.NewSnackRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	requestRepo := repository.NewSnackRequestRepo(db)

	secret := []byte(cfg.Jwt.SecretKey)
	authService := service.NewAuthService(userRepo, service.AuthOptions{
		Secret:        secret,
		TokenTTL:      cfg.Jwt.Expiry,
		AllowedDomain: cfg.Auth.AllowedEmailDomain,
	})
	catalogService := service.NewCatalogService(snackRepo, db, hub)
	ledgerService := service.NewLedgerService(userRepo, txRepo, db)

	if cfg.SeedData {
		if err := seed.New(catalogService, authService, ledgerService, log).Run(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	handlers := &handler.Handlers{
		Auth:         handler.NewAuthHandler(authService, secret, cfg.Auth.CookieName, log),
		Snack:        handler.NewSnackHandler(catalogService, log),
		Checkout:     handler.NewCheckoutHandler(service.NewCheckoutService(userRepo, snackRepo, txRepo, db, hub), log),
		Ledger:       handler.NewLedgerHandler(ledgerService, log),
		Transaction:  handler.NewTransactionHandler(service.NewTransactionService(userRepo, txRepo), log),
		SnackRequest: handler.NewSnackRequestHandler(service.NewSnackRequestService(requestRepo), log),
		User:         handler.NewUserHandler(service.NewUserService(userRepo), log),
		Dashboard:    handler.NewDashboardHandler(service.NewDashboardService(txRepo), log),
		ShoppingList: handler.NewShoppingListHandler(service.NewShoppingListService(snackRepo, requestRepo), log),
	}

	// 4. Fiber
	app := newApp(cfg)

	docs.SwaggerInfo.Host = ""
	app.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
	}))

	requireAuth := middleware.RequireAuth(middleware.AuthConfig{
		Secret:     secret,
		CookieName: cfg.Auth.CookieName,
	}, authService)
	handler.RegisterRoutes(app, handlers, requireAuth)
	handler.RegisterWebSocket(app, hub)

	// 5. Graceful shutdown
	listenErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}

	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	cancel()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Server exited")
	return nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/agamariel/paymall-console/internal/auth"
	"github.com/agamariel/paymall-console/internal/config"
	"github.com/agamariel/paymall-console/internal/handlers"
	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/services"
	"github.com/agamariel/paymall-console/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// App структура для управления приложением и его зависимостями.
type App struct {
	cfg     *config.Config
	echo    *echo.Echo
	sweeper *services.PageSweeper

	// Handlers
	orderListHandler *handlers.OrderListHandler
	callbackHandler  *handlers.CallbackTestHandler
	renderer         *handlers.TemplateRenderer
}

// NewApp создаёт и инициализирует новое приложение.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg: cfg,
	}

	if err := app.initDependencies(); err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app.initServer()

	return app, nil
}

// initDependencies инициализирует все зависимости приложения (storage, services, handlers).
func (app *App) initDependencies() error {
	if app.cfg.PayMallURL == "" {
		log.Println("WARNING: PayMallURL is not configured. Pay-mall address will be derived from the page host!")
	}

	// Storage layer
	pageStorage := storage.NewMemoryStorage[*services.Page]()

	// Service layer
	pageService := services.NewPageService(pageStorage, services.PageServiceConfig{
		PayMallURL:      app.cfg.PayMallURL,
		PageSecret:      app.cfg.PageSecret,
		RequestTimeout:  app.cfg.RequestTimeout,
		SystemClipboard: app.cfg.SystemClipboard,
	}, nil, log.Default())

	// Handler layer
	app.orderListHandler = handlers.NewOrderListHandler(pageService)
	app.callbackHandler = handlers.NewCallbackTestHandler(pageService)

	renderer, err := handlers.NewTemplateRenderer()
	if err != nil {
		return err
	}
	app.renderer = renderer

	// Очистка неактивных страниц
	app.sweeper = services.NewPageSweeper(pageStorage, app.cfg.PageTTL, app.cfg.SweepInterval, log.Default())

	return nil
}

// initServer инициализирует HTTP-сервер и настраивает маршруты.
func (app *App) initServer() {
	e := echo.New()
	e.Renderer = app.renderer

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())

	// Публичные маршруты
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/orders")
	})
	e.GET("/healthz", handlers.Health)
	e.GET("/orders", app.orderListHandler.Open)
	e.GET("/callback", app.callbackHandler.Open)

	// Маршруты открытой страницы (требуют токен страницы)
	ordersPage := auth.PageTokenMiddleware(app.cfg.PageSecret, models.PageKindOrders)
	e.GET("/orders/view", app.orderListHandler.View, ordersPage)
	e.POST("/orders/load-more", app.orderListHandler.LoadMore, ordersPage)
	e.POST("/orders/refund/open", app.orderListHandler.OpenRefund, ordersPage)
	e.POST("/orders/refund/close", app.orderListHandler.CloseRefund, ordersPage)
	e.POST("/orders/refund/confirm", app.orderListHandler.ConfirmRefund, ordersPage)
	e.POST("/orders/copy", app.orderListHandler.Copy, ordersPage)

	callbackPage := auth.PageTokenMiddleware(app.cfg.PageSecret, models.PageKindCallback)
	e.GET("/callback/view", app.callbackHandler.View, callbackPage)
	e.POST("/callback/submit", app.callbackHandler.Submit, callbackPage)
	e.POST("/callback/copy", app.callbackHandler.Copy, callbackPage)

	app.echo = e
}

// Start запускает приложение.
func (app *App) Start(ctx context.Context) error {
	log.Println("Starting page sweeper...")
	app.sweeper.Start(ctx)

	// Запуск сервера
	log.Printf("Starting server on %s", app.cfg.RunAddress)
	if err := app.echo.Start(app.cfg.RunAddress); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

// Shutdown корректно завершает работу приложения.
func (app *App) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := app.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	log.Println("Server gracefully stopped")
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/joansel25/farmacia-api/internal/application/auth"
	"github.com/joansel25/farmacia-api/internal/application/inventory"
	"github.com/joansel25/farmacia-api/internal/application/reports"
	"github.com/joansel25/farmacia-api/internal/application/sales"
	"github.com/joansel25/farmacia-api/internal/application/usecase"
	infrapdf "github.com/joansel25/farmacia-api/internal/infrastructure/pdf"
	"github.com/joansel25/farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/joansel25/farmacia-api/internal/interfaces/http"
	"github.com/joansel25/farmacia-api/pkg/config"
	"github.com/joansel25/farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)

	movementUC := inventory.NewMovementUseCase(
		txRunner, movementRepo, productRepo, supplierRepo, clientRepo, employeeRepo,
	)
	invoiceUC := sales.NewInvoiceUseCase(txRunner, invoiceRepo, clientRepo, employeeRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	reportUC := reports.NewReportUseCase(
		invoiceRepo, productRepo, categoryRepo, supplierRepo,
		clientRepo, employeeRepo, movementRepo, pdfGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		ClientUC:   clientUC,
		EmployeeUC: employeeUC,
		MovementUC: movementUC,
		InvoiceUC:  invoiceUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

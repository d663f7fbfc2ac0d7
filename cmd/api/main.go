package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Danielpnvs/usekaylla-api/internal/application/analytics"
	"github.com/Danielpnvs/usekaylla-api/internal/application/auth"
	"github.com/Danielpnvs/usekaylla-api/internal/application/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/application/catalog"
	"github.com/Danielpnvs/usekaylla-api/internal/application/sales"
	infrapdf "github.com/Danielpnvs/usekaylla-api/internal/infrastructure/pdf"
	"github.com/Danielpnvs/usekaylla-api/internal/infrastructure/postgres"
	httpRouter "github.com/Danielpnvs/usekaylla-api/internal/interfaces/http"
	"github.com/Danielpnvs/usekaylla-api/pkg/config"
	"github.com/Danielpnvs/usekaylla-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	userRepo := postgres.NewUserRepository(pool)
	clothingRepo := postgres.NewClothingRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	allocationUC := cashflow.NewAllocationUseCase(settingsRepo)
	outflowUC := cashflow.NewOutflowUseCase(txRunner, movementRepo, saleRepo, clothingRepo, allocationUC)
	clothingUC := catalog.NewClothingUseCase(clothingRepo)
	salesUC := sales.NewRegisterSaleUseCase(txRunner, saleRepo, userRepo)
	dashboardUC := analytics.NewDashboardUseCase(outflowUC, saleRepo, clothingRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.StoreName)
	reportUC := analytics.NewReportUseCase(outflowUC, pdfGenerator)

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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "UseKaylla API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		OutflowUC:    outflowUC,
		AllocationUC: allocationUC,
		ClothingUC:   clothingUC,
		SalesUC:      salesUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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

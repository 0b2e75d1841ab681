package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	_ "github.com/jhoicas/Inventario-dashboard/docs"
	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/report"
	"github.com/jhoicas/Inventario-dashboard/internal/application/session"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/apiclient"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/ledger"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/sessionstore"
	infraxlsx "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// @title        Inventory Dashboard API
// @version      1.0
// @description  Backend del dashboard de inventario: sugerencias, agregados y vistas en vivo sobre el API REST de inventario.
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío: se usa un secreto aleatorio, los tokens no sobreviven al reinicio")
	}

	var m *metrics.Metrics
	var obs dashboard.Observer
	if cfg.Metrics.Enabled {
		m = metrics.New("inventory_dashboard")
		obs = m
	}

	client := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout(), log, m)

	var store session.Store
	if cfg.Session.Key != "" {
		fs, err := sessionstore.NewFileStore(cfg.Session.Dir, cfg.Session.Key)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Session.Dir).Msg("almacén de sesiones")
		}
		store = fs
	} else {
		log.Warn().Msg("SESSION_KEY vacío: sesiones solo en memoria")
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, session.WithTTL(time.Duration(cfg.JWT.Expiration)*time.Minute))

	authUC := auth.NewAuthUseCase(client, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Reportes: XLSX con excelize, PDF con maroto
	reportUC := report.NewUseCase(map[string]report.Generator{
		report.FormatXLSX: infraxlsx.NewExcelizeReportGenerator(),
		report.FormatPDF:  infrapdf.NewMarotoReportGenerator(),
	}, log)

	registry := dashboard.NewLiveRegistry(dashboard.DefaultDelays, log, obs)
	registry.StartSweeper(dashboard.SweepInterval, dashboard.IdleViewTTL)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
		// sin WriteTimeout: los streams SSE permanecen abiertos
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "live_views": registry.Count()})
	})
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		APIs:        client,
		InventoryUC: dashboard.NewInventoryUseCase(log),
		WarehouseUC: dashboard.NewWarehouseUseCase(log),
		SkuUC:       dashboard.NewSkuUseCase(log),
		SuggestUC:   dashboard.NewSuggestUseCase(),
		OverviewUC:  dashboard.NewOverviewUseCase(log),
		LedgerUC:    dashboard.NewLedgerUseCase(ledger.NewSource(cfg.Ledger.File)),
		ReportUC:    reportUC,
		Live:        registry,
		LiveHandler: httpRouter.NewLiveHandler(registry, httpRouter.DefaultHeartbeat, log),
		JWTSecret:   cfg.JWT.Secret,
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

	// Cerrar las vistas termina los streams SSE abiertos.
	registry.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

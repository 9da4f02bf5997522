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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/CRM-api/internal/application/analytics"
	"github.com/jhoicas/CRM-api/internal/application/auth"
	"github.com/jhoicas/CRM-api/internal/application/export"
	"github.com/jhoicas/CRM-api/internal/application/followup"
	"github.com/jhoicas/CRM-api/internal/application/leads"
	"github.com/jhoicas/CRM-api/internal/application/ports"
	"github.com/jhoicas/CRM-api/internal/application/usecase"
	"github.com/jhoicas/CRM-api/internal/domain/lead"
	infraevents "github.com/jhoicas/CRM-api/internal/infrastructure/events"
	"github.com/jhoicas/CRM-api/internal/infrastructure/memory"
	"github.com/jhoicas/CRM-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/CRM-api/internal/infrastructure/pdf"
	"github.com/jhoicas/CRM-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/CRM-api/internal/interfaces/http"
	"github.com/jhoicas/CRM-api/pkg/config"
	"github.com/jhoicas/CRM-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: el login fallará hasta configurarlo")
	}

	// Almacén en memoria + directorio demo
	store := memory.NewStore()
	hash, err := memory.HashPassword(cfg.Auth.DemoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña demo")
	}
	memory.SeedUsers(store, hash)
	if cfg.Auth.SeedDemoData {
		memory.SeedDemoData(store)
		log.Info().Msg("datos de ejemplo cargados")
	}

	leadRepo := memory.NewLeadRepository(store)
	followUpRepo := memory.NewFollowUpRepository(store)
	projectRepo := memory.NewProjectRepository(store)
	userRepo := memory.NewUserRepository(store)
	sessionRepo := memory.NewSessionRepository(store)
	txRunner := memory.NewTxRunner(store)
	identity := memory.NewDemoIdentityProvider(store)

	// Eventos: RabbitMQ si hay AMQP_URL, si no solo log
	var publisher ports.EventPublisher = infraevents.NewLogPublisher(log.Component("events"))
	var rabbit *infraevents.RabbitMQPublisher
	if cfg.Events.AMQPURL != "" {
		rabbit, err = infraevents.NewRabbitMQPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ no disponible, eventos solo en log")
		} else {
			publisher = rabbit
			defer rabbit.Close()
		}
	}
	publisher = metrics.NewInstrumentedPublisher(publisher)

	policy := lead.PolicyFor(cfg.Leads.StrictTransitions)
	log.Info().Str("policy", policy.Name()).Msg("política de transiciones de leads")

	leadUC := leads.NewLeadUseCase(leadRepo, txRunner, policy, publisher)
	followUpUC := followup.NewFollowUpUseCase(followUpRepo, txRunner, publisher)
	projectUC := usecase.NewProjectUseCase(projectRepo, txRunner)
	dashboardUC := appanalytics.NewDashboardUseCase(leadRepo, projectRepo, followUpRepo)

	// PDF: reporte del listado de leads
	exportLoc := cfg.Export.Location()
	pdfGenerator := infrapdf.NewLeadReportGenerator(exportLoc, cfg.Export.DateLayout)
	exportUC := export.NewExportUseCase(leadRepo, pdfGenerator, export.Options{
		Location:   exportLoc,
		DateLayout: cfg.Export.DateLayout,
	})
	authUC := auth.NewAuthUseCase(identity, userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Job de seguimientos vencidos
	if cfg.FollowUps.ScanSchedule != "" {
		scan := scheduler.NewOverdueScan(followUpUC, publisher, log.Component("overdue-scan"))
		c, err := scheduler.Start(cfg.FollowUps.ScanSchedule, scan)
		if err != nil {
			log.Fatal().Err(err).Msg("programar scan de seguimientos")
		}
		defer c.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Leads API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		deps := fiber.Map{"rabbitmq": "not configured"}
		if rabbit != nil {
			deps["rabbitmq"] = "healthy"
			if !rabbit.Healthy() {
				deps["rabbitmq"] = "unhealthy: connection closed"
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "dependencies": deps})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		LeadUC:      leadUC,
		FollowUpUC:  followUpUC,
		ProjectUC:   projectUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

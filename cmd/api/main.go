package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/agrotrace/trazabilidad-api/internal/application/usecase"
	"github.com/agrotrace/trazabilidad-api/internal/domain/repository"
	"github.com/agrotrace/trazabilidad-api/internal/infrastructure/dataclient"
	"github.com/agrotrace/trazabilidad-api/internal/infrastructure/postgres"
	httpRouter "github.com/agrotrace/trazabilidad-api/internal/interfaces/http"
	"github.com/agrotrace/trazabilidad-api/pkg/config"
	"github.com/agrotrace/trazabilidad-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando capa de negocio")

	var (
		loteRepo      repository.LoteRepository
		procesoRepo   repository.ProcesoRepository
		logisticaRepo repository.LogisticaRepository
	)
	if cfg.Data.LayerURL != "" {
		// Modo dos procesos: la capa de negocio habla con cmd/data por HTTP.
		client := dataclient.NewClient(cfg.Data.LayerURL, time.Duration(cfg.Data.TimeoutSeconds)*time.Second)
		loteRepo = dataclient.NewLoteRepository(client)
		procesoRepo = dataclient.NewProcesoRepository(client)
		logisticaRepo = dataclient.NewLogisticaRepository(client)
		log.Info().Str("data_layer_url", cfg.Data.LayerURL).Msg("usando capa de datos HTTP")
	} else {
		// Modo colapsado: PostgreSQL directo.
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		loteRepo = postgres.NewLoteRepository(pool)
		procesoRepo = postgres.NewProcesoRepository(pool)
		logisticaRepo = postgres.NewLogisticaRepository(pool)
		log.Info().Msg("usando PostgreSQL directo")
	}

	coherencia := usecase.NewCoherenciaTemporal(loteRepo, procesoRepo)
	loteUC := usecase.NewLoteUseCase(loteRepo)
	procesoUC := usecase.NewProcesoUseCase(procesoRepo, coherencia)
	logisticaUC := usecase.NewLogisticaUseCase(logisticaRepo, coherencia)
	trazabilidadUC := usecase.NewTrazabilidadUseCase(loteRepo, procesoRepo, logisticaRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New()) // la UI corre en otro origen

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "AgroTrace API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LoteUC:         loteUC,
		ProcesoUC:      procesoUC,
		LogisticaUC:    logisticaUC,
		TrazabilidadUC: trazabilidadUC,
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

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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/L20660042/Backend-Proy-sub001/docs"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/auth"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/calificaciones"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/usecase"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/cache"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/mail"
	infrapdf "github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/pdf"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/riskml"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/store"
	httpRouter "github.com/L20660042/Backend-Proy-sub001/internal/interfaces/http"
	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
	"github.com/L20660042/Backend-Proy-sub001/pkg/logger"
)

// @title                       Backend académico
// @version                     1.0
// @description                 Usuarios, docentes, calificaciones, inscripciones y riesgo académico.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if cfg.JWT.Secret == "" {
		panic("JWT_SECRET es requerido")
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := store.Open(ctx, cfg, store.Options{Migrate: true})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al almacén")
	}
	defer func() {
		if err := repos.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("cerrar almacén")
		}
	}()

	// Códigos de verificación: Redis si está configurado, si no memoria del proceso.
	var codes ports.VerificationCodeStore
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		codes = cache.NewRedisCodeStore(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: códigos de verificación en memoria")
		codes = cache.NewMemoryCodeStore()
	}

	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPSender(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP_HOST vacío: los correos solo se registran en el log")
		mailer = mail.NewLogSender(log)
	}

	validator := validation.New()
	riskClient := riskml.NewClient(cfg.RiskService.BaseURL, cfg.RiskService.Timeout)
	boletas := infrapdf.NewBoletaGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(repos.Users, codes, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Verification.TTL)
	userUC := usecase.NewUserUseCase(repos.Users)
	teacherUC := usecase.NewTeacherUseCase(repos.Teachers)
	enrollmentUC := usecase.NewEnrollmentUseCase(repos.Enrollments)
	calificacionUC := calificaciones.NewUseCase(repos.Calificaciones, repos.Users, riskClient, boletas)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.CORS(cfg.CORS))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backend académico API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		TeacherUC:      teacherUC,
		CalificacionUC: calificacionUC,
		EnrollmentUC:   enrollmentUC,
		Validator:      validator,
		JWTSecret:      cfg.JWT.Secret,
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

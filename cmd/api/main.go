package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/spf13/pflag"

	"github.com/jhoicas/oms-agent/internal/application/agent"
	"github.com/jhoicas/oms-agent/internal/application/tools"
	"github.com/jhoicas/oms-agent/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/oms-agent/internal/interfaces/http"
	"github.com/jhoicas/oms-agent/pkg/config"
	"github.com/jhoicas/oms-agent/pkg/jwt"
	"github.com/jhoicas/oms-agent/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	fs := pflag.NewFlagSet("api", pflag.ExitOnError)
	config.RegisterFlags(fs)
	printToken := fs.Bool("print-token", false, "imprime un token JWT firmado con JWT_SECRET y termina")
	subject := fs.String("subject", "agent", "subject del token emitido con --print-token")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	if *printToken {
		tok, err := jwt.Generate(cfg.JWT.Secret, *subject, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			fmt.Fprintln(os.Stderr, "generar token:", err)
			os.Exit(1)
		}
		fmt.Println(tok)
		return
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}

	ts := tools.New(st.Repos)
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: /api sin autenticación")
	}
	app := httpRouter.NewApp(cfg.App.Name, log, httpRouter.RouterDeps{
		Tools:     ts,
		Agent:     agent.New(ts, log),
		JWTSecret: cfg.JWT.Secret,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "OMS Agent API",
		}))
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := st.Close(); err != nil {
		log.Error().Err(err).Msg("cerrar almacenamiento")
	}

	log.Info().Msg("aplicación detenida")
}

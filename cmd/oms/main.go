package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/oms-agent/internal/application/agent"
	"github.com/jhoicas/oms-agent/internal/application/tools"
	"github.com/jhoicas/oms-agent/internal/infrastructure/store"
	"github.com/jhoicas/oms-agent/internal/interfaces/cli"
	"github.com/jhoicas/oms-agent/pkg/config"
	"github.com/jhoicas/oms-agent/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := pflag.NewFlagSet("oms", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return 1
	}

	// stdout queda reservado para los resultados JSON.
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
		Out:     os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Error().Err(err).Msg("abrir almacenamiento")
		return 1
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	fmt.Fprintln(os.Stdout, "OMS Agent started. Type commands:")
	fmt.Fprintln(os.Stdout)

	sh := cli.New(agent.New(tools.New(st.Repos), log), os.Stdin, os.Stdout, log)
	if err := sh.Run(ctx); err != nil {
		log.Error().Err(err).Msg("shell")
		return 1
	}
	return 0
}

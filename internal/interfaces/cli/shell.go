// Package cli implementa el shell interactivo: lee comandos línea a línea,
// los despacha al agente e imprime un resultado JSON por línea.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/oms-agent/internal/application/result"
	"github.com/jhoicas/oms-agent/internal/domain"
	"github.com/jhoicas/oms-agent/pkg/logger"
)

// Prompt que se muestra antes de cada comando.
const Prompt = ">> "

// ErrStorageLost indica que el almacenamiento dejó de estar disponible durante la sesión.
var ErrStorageLost = errors.New("sesión terminada: almacenamiento no disponible")

// Handler despacha un comando de texto. *agent.Agent lo satisface.
type Handler interface {
	Handle(ctx context.Context, line string) result.Result
}

// Shell bucle de lectura-evaluación-impresión sobre in/out.
type Shell struct {
	handler Handler
	in      io.Reader
	out     io.Writer
	log     *logger.Logger
}

// New construye el shell. Los logs deben ir a un destino distinto de out.
func New(h Handler, in io.Reader, out io.Writer, log *logger.Logger) *Shell {
	if log == nil {
		log = logger.Nop()
	}
	return &Shell{handler: h, in: in, out: out, log: log.Component("shell")}
}

// IsExit indica si line termina la sesión (exit/quit sin distinguir mayúsculas ni espacios).
func IsExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}

// Run procesa comandos hasta exit/quit, EOF o cancelación de ctx.
// La lectura corre en su propia goroutine para que la cancelación no espere a la próxima línea.
// Una línea en blanco produce el resultado de comando desconocido.
// Devuelve ErrStorageLost si una operación encuentra el almacenamiento cerrado.
func (s *Shell) Run(ctx context.Context) error {
	sessionID := uuid.NewString()
	log := s.log.Child(s.log.With().Str("session_id", sessionID))
	log.Info().Msg("sesión iniciada")

	done := make(chan struct{})
	defer close(done)
	lines, readErr := s.readLines(done)

	enc := json.NewEncoder(s.out)
	for {
		if _, err := fmt.Fprint(s.out, Prompt); err != nil {
			return fmt.Errorf("escribir prompt: %w", err)
		}

		var line string
		select {
		case <-ctx.Done():
			log.Info().Msg("sesión cancelada")
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("leer entrada: %w", err)
				}
				log.Info().Msg("fin de entrada")
				return nil
			}
			line = l
		}

		if IsExit(line) {
			log.Info().Msg("sesión terminada")
			return nil
		}

		var res result.Result
		if strings.TrimSpace(line) == "" {
			res = result.Unknown()
		} else {
			res = s.handler.Handle(ctx, line)
		}
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("escribir resultado: %w", err)
		}
		if errors.Is(res.Err, domain.ErrStoreClosed) {
			log.Error().Str("error", res.Message).Msg("almacenamiento no disponible")
			return ErrStorageLost
		}
	}
}

// readLines entrega las líneas de s.in por el canal, que se cierra al llegar a EOF o
// a un error de lectura; el error (o nil) queda en el segundo canal.
func (s *Shell) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

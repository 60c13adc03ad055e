package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/oms-agent/internal/application/agent"
	"github.com/jhoicas/oms-agent/internal/application/result"
	"github.com/jhoicas/oms-agent/internal/application/tools"
	"github.com/jhoicas/oms-agent/internal/domain"
	"github.com/jhoicas/oms-agent/internal/infrastructure/store"
	"github.com/jhoicas/oms-agent/pkg/config"
	"github.com/jhoicas/oms-agent/pkg/logger"
)

type echoHandler struct{ lines []string }

func (h *echoHandler) Handle(_ context.Context, line string) result.Result {
	h.lines = append(h.lines, line)
	return result.OK(line)
}

func outputLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		l = strings.TrimSpace(strings.ReplaceAll(l, Prompt, ""))
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestRun_ExitDetieneElBucle(t *testing.T) {
	h := &echoHandler{}
	var out bytes.Buffer
	sh := New(h, strings.NewReader("uno\n\n   \ndos\n  QUIT \ntres\n"), &out, logger.Nop())

	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, []string{"uno", "dos"}, h.lines)
	assert.True(t, strings.HasPrefix(out.String(), Prompt))

	// Las dos líneas en blanco también imprimen un resultado.
	lines := outputLines(out.String())
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], result.CodeUnknownCommand)
	assert.Contains(t, lines[2], result.CodeUnknownCommand)
}

func TestRun_CancelacionSinEntradaPendiente(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	h := &echoHandler{}
	var out bytes.Buffer
	sh := New(h, pr, &out, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- sh.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run no terminó tras cancelar el contexto")
	}
	assert.Empty(t, h.lines)
}

func TestRun_EOFTerminaSinError(t *testing.T) {
	h := &echoHandler{}
	var out bytes.Buffer
	require.NoError(t, New(h, strings.NewReader("uno"), &out, logger.Nop()).Run(context.Background()))
	assert.Equal(t, []string{"uno"}, h.lines)
}

func TestIsExit(t *testing.T) {
	for _, s := range []string{"exit", "quit", " Exit ", "QUIT\t"} {
		assert.True(t, IsExit(s), s)
	}
	for _, s := range []string{"", "exit now", "quitar"} {
		assert.False(t, IsExit(s), s)
	}
}

func TestRun_SesionSobreSQLite(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "oms.db")}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	input := strings.Join([]string{
		"add product sku=SKU1 name=mouse price=500 desc=wireless",
		"add product sku=SKU1 name=mouse desc=wireless",
		"get product id=1",
		"something else",
		"exit",
	}, "\n")
	var out bytes.Buffer
	sh := New(agent.New(tools.New(s.Repos), logger.Nop()), strings.NewReader(input), &out, logger.Nop())
	require.NoError(t, sh.Run(ctx))

	lines := outputLines(out.String())
	require.Len(t, lines, 4)

	var res []map[string]any
	for _, l := range lines {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m), l)
		res = append(res, m)
	}
	assert.Equal(t, "success", res[0]["status"])
	assert.Equal(t, "missing field: price", res[1]["message"])
	assert.Equal(t, "SKU1", res[2]["data"].(map[string]any)["sku"])
	assert.Equal(t, "UNKNOWN_COMMAND", res[3]["code"])
}

func TestRun_AlmacenamientoCerradoTerminaLaSesion(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "oms.db")}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	var out bytes.Buffer
	sh := New(agent.New(tools.New(s.Repos), logger.Nop()), strings.NewReader("list products\nlist warehouses\n"), &out, logger.Nop())
	err = sh.Run(ctx)
	assert.ErrorIs(t, err, ErrStorageLost)

	lines := outputLines(out.String())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], fmt.Sprintf("%q", "STORAGE"))
	assert.Contains(t, lines[0], domain.ErrStoreClosed.Error())
}

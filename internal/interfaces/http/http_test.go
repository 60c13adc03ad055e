package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/oms-agent/internal/application/agent"
	"github.com/jhoicas/oms-agent/internal/application/tools"
	"github.com/jhoicas/oms-agent/internal/infrastructure/store"
	apphttp "github.com/jhoicas/oms-agent/internal/interfaces/http"
	"github.com/jhoicas/oms-agent/pkg/config"
	pkgjwt "github.com/jhoicas/oms-agent/pkg/jwt"
	"github.com/jhoicas/oms-agent/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

func buildTestApp(t *testing.T, secret string) (*fiber.App, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "oms.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ts := tools.New(s.Repos)
	app := apphttp.NewApp("oms-agent-test", logger.Nop(), apphttp.RouterDeps{
		Tools:     ts,
		Agent:     agent.New(ts, logger.Nop()),
		JWTSecret: secret,
	})
	return app, s
}

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, app *fiber.App, method, path, body, auth string) (*http.Response, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

// ──────────────────────────────────────────────────────────────────────────────
// Herramientas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app, _ := buildTestApp(t, "")
	resp, _ := do(t, app, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRequestID_RespetaElDelCliente(t *testing.T) {
	app, _ := buildTestApp(t, "")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestTools_Catalogo(t *testing.T) {
	app, _ := buildTestApp(t, "")
	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var catalog []tools.Tool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&catalog))
	assert.Len(t, catalog, 20)
	assert.Equal(t, "add_product", catalog[0].Name)
}

func TestTools_CodigosHTTP(t *testing.T) {
	app, _ := buildTestApp(t, "")

	resp, env := do(t, app, http.MethodPost, "/api/tools/add_product", `{"product_sku":"SKU1","product_name":"mouse","price":500,"desc":"wireless"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Product added", env.Message)

	resp, env = do(t, app, http.MethodPost, "/api/tools/add_product", `{"product_sku":"SKU1","product_name":"otro","price":1,"desc":""}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONSTRAINT_VIOLATION", env.Code)

	resp, env = do(t, app, http.MethodPost, "/api/tools/add_product", `{"product_sku":"SKU2","product_name":"x","price":-1,"desc":""}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", env.Code)

	resp, env = do(t, app, http.MethodPost, "/api/tools/get_product", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MISSING_FIELD", env.Code)

	resp, env = do(t, app, http.MethodPost, "/api/tools/get_product", `{"product_id":99}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", string(env.Data))

	resp, env = do(t, app, http.MethodPost, "/api/tools/get_order_items", `{"order_id":1}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(env.Data))

	resp, env = do(t, app, http.MethodPost, "/api/tools/drop_tables", `{}`, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_TOOL", env.Code)
}

func TestTools_StoreCerradoResponde503(t *testing.T) {
	app, s := buildTestApp(t, "")
	require.NoError(t, s.Close())

	resp, env := do(t, app, http.MethodPost, "/api/tools/get_all_products", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "STORAGE", env.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agente
// ──────────────────────────────────────────────────────────────────────────────

func TestAgent_Comandos(t *testing.T) {
	app, _ := buildTestApp(t, "")

	resp, env := do(t, app, http.MethodPost, "/api/agent", `{"command":"add order number=ORD001 status=CREATED"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, env.Message)

	resp, env = do(t, app, http.MethodPost, "/api/agent", `{"command":"add item order_id=1 product_id=1 qty=2 price=500"}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONSTRAINT_VIOLATION", env.Code)

	resp, env = do(t, app, http.MethodPost, "/api/agent", `{"command":"add product sku=SKU1 name=mouse desc=wireless"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing field: price", env.Message)

	resp, env = do(t, app, http.MethodPost, "/api/agent", `{"command":"hola"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_COMMAND", env.Code)

	resp, env = do(t, app, http.MethodPost, "/api/agent", `{"command":"  "}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_COMMAND", env.Code)
	assert.Equal(t, "null", string(env.Data))

	resp, env = do(t, app, http.MethodPost, "/api/agent", `{"command":`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", env.Code)
	assert.Equal(t, "error", env.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SinTokenEs401(t *testing.T) {
	app, _ := buildTestApp(t, testJWTSecret)

	resp, env := do(t, app, http.MethodGet, "/api/tools", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", env.Code)

	resp, env = do(t, app, http.MethodGet, "/api/tools", "", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", env.Code)

	// /health sigue siendo público.
	resp, _ = do(t, app, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_TokenValido(t *testing.T) {
	app, _ := buildTestApp(t, testJWTSecret)
	tok, err := pkgjwt.Generate(testJWTSecret, "agent-runner", "oms-agent-test", 60)
	require.NoError(t, err)

	resp, _ := do(t, app, http.MethodGet, "/api/tools", "", "Bearer "+tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_SecretDistintoEs401(t *testing.T) {
	app, _ := buildTestApp(t, testJWTSecret)
	tok, err := pkgjwt.Generate("otro-secret", "agent-runner", "oms-agent-test", 60)
	require.NoError(t, err)

	resp, _ := do(t, app, http.MethodPost, "/api/agent", `{"command":"list products"}`, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireScope_ScopeAjenoEs403(t *testing.T) {
	app := fiber.New()
	app.Get("/x",
		func(c *fiber.Ctx) error {
			c.Locals(apphttp.LocalSubject, "agent-runner")
			c.Locals(apphttp.LocalScope, "read")
			return c.Next()
		},
		apphttp.RequireScope(pkgjwt.ScopeTools),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

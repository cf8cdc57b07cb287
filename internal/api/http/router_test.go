package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bridge/internal/api/http/handlers"
	"github.com/spec-kit/ticket-bridge/internal/auth"
	"github.com/spec-kit/ticket-bridge/internal/config"
	"github.com/spec-kit/ticket-bridge/internal/gateway"
	"github.com/spec-kit/ticket-bridge/internal/observability"
	"github.com/spec-kit/ticket-bridge/internal/persistence"
	"github.com/spec-kit/ticket-bridge/internal/service"
	"github.com/spec-kit/ticket-bridge/internal/ticketid"
)

// newBridgeApp wires the full fiber app against a stub Mattermost server,
// middlewares included, the way main does.
func newBridgeApp(t *testing.T) (*fiber.App, *httptest.Server) {
	t.Helper()
	logger := zap.NewNop()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v4/posts", "/api/v4/posts/ephemeral":
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(upstream.Close)

	cfg := config.MattermostConfig{
		BaseURL:     upstream.URL,
		BotToken:    "bot-token",
		SlashToken:  "slash-secret",
		CallbackURL: "https://bridge.example.com",
	}
	mattermost := gateway.New(cfg, logger)
	t.Cleanup(mattermost.Close)

	redis := &persistence.Redis{}
	metrics := observability.NewMetrics()

	svc := service.NewTicketService(service.TicketDependencies{
		Verifier:    auth.NewSlashTokenVerifier(cfg.SlashToken),
		Gateway:     mattermost,
		IDs:         ticketid.New(),
		Guard:       persistence.NewSubmissionGuard(redis, 0, logger),
		Metrics:     metrics,
		Logger:      logger,
		CallbackURL: cfg.CallbackURL,
	})

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health: handlers.NewHealthHandler("ticket-bridge", "test", mattermost, redis, metrics),
		Ticket: handlers.NewTicketHandler(svc, logger),
	})
	return app, upstream
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newBridgeApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestReadyEndpointChecksGateway(t *testing.T) {
	app, _ := newBridgeApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ready", body["status"])
	assert.Contains(t, body, "tickets_created")
}

func TestCommandRouteUnauthorizedStatus(t *testing.T) {
	app, _ := newBridgeApp(t)

	form := url.Values{"token": {"wrong"}, "trigger_id": {"abc123"}}
	req := httptest.NewRequest(http.MethodPost, "/ticket", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "UNAUTHORIZED", body["error"]["code"])
}

func TestCommandRouteAcksWithEmptyObject(t *testing.T) {
	app, _ := newBridgeApp(t)

	form := url.Values{"token": {"slash-secret"}, "trigger_id": {"abc123"}}
	req := httptest.NewRequest(http.MethodPost, "/ticket", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(raw))
}

func TestSubmitRouteEndToEnd(t *testing.T) {
	app, _ := newBridgeApp(t)

	body := `{
		"cancelled": false,
		"submission": {"cluster": "prod-cluster", "resource": "vm42", "problem": "down", "network": "10.0.0.1"},
		"user_id": "u1",
		"channel_id": "c1"
	}`
	req := httptest.NewRequest(http.MethodPost, "/ticket/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(raw))
}

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bridge/internal/config"
	"github.com/spec-kit/ticket-bridge/internal/domain"
	apperrors "github.com/spec-kit/ticket-bridge/pkg/util"
)

// Dialer is the outbound surface the handlers depend on. Tests substitute
// a recording fake; production uses *Mattermost.
type Dialer interface {
	OpenDialog(ctx context.Context, req domain.DialogRequest) error
	CreatePost(ctx context.Context, post domain.Post) error
	CreateEphemeralPost(ctx context.Context, userID string, post domain.Post) error
}

// Mattermost talks to the Mattermost REST API over a single long-lived
// HTTP client shared by all in-flight requests.
type Mattermost struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

// New builds the gateway client. The underlying transport and its
// connection pool live for the whole process; Close releases them.
func New(cfg config.MattermostConfig, logger *zap.Logger) *Mattermost {
	return &Mattermost{
		baseURL: cfg.BaseURL,
		token:   cfg.BotToken,
		client:  &http.Client{Timeout: cfg.RequestTimeout()},
		logger:  logger,
	}
}

// Close releases pooled connections.
func (m *Mattermost) Close() {
	if m != nil && m.client != nil {
		m.client.CloseIdleConnections()
	}
}

// OpenDialog asks the platform to render the ticket dialog for the trigger
// carried in req.
func (m *Mattermost) OpenDialog(ctx context.Context, req domain.DialogRequest) error {
	return m.post(ctx, "/api/v4/actions/dialogs/open", req, http.StatusOK, "dialog open")
}

// CreatePost publishes a channel post. The API signals creation with 201;
// anything else is a rejection.
func (m *Mattermost) CreatePost(ctx context.Context, post domain.Post) error {
	return m.post(ctx, "/api/v4/posts", post, http.StatusCreated, "post create")
}

// CreateEphemeralPost sends a message visible only to userID.
func (m *Mattermost) CreateEphemeralPost(ctx context.Context, userID string, post domain.Post) error {
	body := map[string]any{
		"user_id": userID,
		"post":    post,
	}
	return m.post(ctx, "/api/v4/posts/ephemeral", body, http.StatusCreated, "ephemeral post")
}

// Ping checks API reachability for the readiness probe.
func (m *Mattermost) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/api/v4/system/ping", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.token)

	resp, err := m.client.Do(req)
	if err != nil {
		return apperrors.NewGatewayUnavailable("ping", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apperrors.NewGatewayRejected("ping", resp.StatusCode, "")
	}
	return nil
}

func (m *Mattermost) post(ctx context.Context, path string, payload any, wantStatus int, operation string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.token)

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Debug("gateway request failed",
			zap.String("operation", operation),
			zap.Error(err))
		return apperrors.NewGatewayUnavailable(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		m.logger.Debug("gateway request rejected",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode))
		return apperrors.NewGatewayRejected(operation, resp.StatusCode, string(detail))
	}
	return nil
}

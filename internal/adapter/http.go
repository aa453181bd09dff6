package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// kitchenCfg.ServerURL and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if kitchenCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(kitchenCfg config.Kitchen, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(kitchenCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid kitchen server url: %w", err)
	}

	timeout := kitchenCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login, stores the bearer token from the response body via
// SetToken, and returns the authenticated user record.
func (h *httpServerAdapter) Login(ctx context.Context, login, password string) (models.User, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Login: login, Password: password}).
		SetResult(&authResponse).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if authResponse.Token == "" {
		return models.User{}, fmt.Errorf("login response missing token")
	}

	h.SetToken(authResponse.Token)
	return authResponse.User, nil
}

// Tickets implements [ServerAdapter]. It GETs /api/kitchen/tickets and
// decodes the ticket list. Requires a valid bearer token.
func (h *httpServerAdapter) Tickets(ctx context.Context) ([]models.KitchenTicket, error) {
	resp, err := h.authedRequest(ctx).Get("/api/kitchen/tickets")
	if err != nil {
		return nil, fmt.Errorf("tickets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tickets []models.KitchenTicket
	if err = json.Unmarshal(resp.Body(), &tickets); err != nil {
		return nil, fmt.Errorf("decode tickets response: %w", err)
	}
	return tickets, nil
}

// Summary implements [ServerAdapter]. It GETs /api/kitchen/summary and
// decodes the per-status counts. Requires a valid bearer token.
func (h *httpServerAdapter) Summary(ctx context.Context) (models.KitchenSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/api/kitchen/summary")
	if err != nil {
		return models.KitchenSummary{}, fmt.Errorf("summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KitchenSummary{}, err
	}

	var summary models.KitchenSummary
	if err = json.Unmarshal(resp.Body(), &summary); err != nil {
		return models.KitchenSummary{}, fmt.Errorf("decode summary response: %w", err)
	}
	return summary, nil
}

// UpdateOrderStatus implements [ServerAdapter]. It PATCHes the order's
// status endpoint and returns the updated order. Returns [ErrConflict]
// (wrapped) when the transition is not allowed. Requires a valid bearer
// token.
func (h *httpServerAdapter) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (models.Order, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateOrderStatusRequest{Status: status}).
		Patch(fmt.Sprintf("/api/orders/%d/status", orderID))
	if err != nil {
		return models.Order{}, fmt.Errorf("update order status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err = json.Unmarshal(resp.Body(), &order); err != nil {
		return models.Order{}, fmt.Errorf("decode order response: %w", err)
	}
	return order, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

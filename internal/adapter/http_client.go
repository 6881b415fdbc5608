package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	mu     sync.RWMutex
	client *resty.Client
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(NormalizeBaseURL(cfg.BaseURL)).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

// NormalizeBaseURL trims whitespace and trailing slashes and defaults the
// scheme to http, so "localhost:8080/" and "http://localhost:8080" point at
// the same server.
func NormalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimRight(raw, "/")
	if raw != "" && !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	return raw
}

func (h *httpServerAdapter) SetBaseURL(serverURL string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.client.SetBaseURL(NormalizeBaseURL(serverURL))
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) CreateVault(ctx context.Context, req models.CreateVaultRequest) (models.CreateVaultResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v1/vaults")
	if err != nil {
		return models.CreateVaultResponse{}, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateVaultResponse{}, err
	}

	var out models.CreateVaultResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.CreateVaultResponse{}, fmt.Errorf("decode create vault response: %w", err)
	}

	return out, nil
}

func (h *httpServerAdapter) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.RegisterDeviceResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v1/devices")
	if err != nil {
		return models.RegisterDeviceResponse{}, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterDeviceResponse{}, err
	}

	var out models.RegisterDeviceResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.RegisterDeviceResponse{}, fmt.Errorf("decode register device response: %w", err)
	}

	return out, nil
}

func (h *httpServerAdapter) PushOps(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v1/ops/push")
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var out models.PushResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w", err)
	}

	return out, nil
}

func (h *httpServerAdapter) PullOps(ctx context.Context, vaultID string, since int64, limit int) (models.PullResponse, error) {
	resp, err := h.request(ctx).
		SetQueryParams(map[string]string{
			"vaultId": vaultID,
			"since":   strconv.FormatInt(since, 10),
			"limit":   strconv.Itoa(limit),
		}).
		Get("/v1/ops/pull")
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var out models.PullResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return out, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}

	return mapHTTPError(resp)
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type mockOpLogService struct {
	pushOpsFn func(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (int, int64, error)
	pullOpsFn func(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, int64, error)
}

func (m *mockOpLogService) PushOps(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (int, int64, error) {
	return m.pushOpsFn(ctx, vaultID, deviceID, ops)
}

func (m *mockOpLogService) PullOps(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, int64, error) {
	return m.pullOpsFn(ctx, vaultID, since, limit)
}

func newHandlerWithOpLogService(ols service.OpLogService) *Handler {
	return &Handler{
		services: &service.Services{
			OpLogService: ols,
		},
		logger: logger.Nop(),
	}
}

func TestPushOps_Success(t *testing.T) {
	mockSvc := &mockOpLogService{
		pushOpsFn: func(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (int, int64, error) {
			if vaultID != "v1" || deviceID != "d1" || len(ops) != 2 {
				t.Fatalf("unexpected push request: %s %s %d", vaultID, deviceID, len(ops))
			}
			return 2, 7, nil
		},
	}

	h := newHandlerWithOpLogService(mockSvc)

	body, _ := json.Marshal(models.PushRequest{
		VaultID:  "v1",
		DeviceID: "d1",
		Ops: []models.OpRecord{
			{OpID: "op-1", Payload: "a"},
			{OpID: "op-2", Payload: "b"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/ops/push", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	h.pushOps(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp models.PushResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Accepted != 2 || resp.Cursor != 7 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPushOps_UnknownDevice(t *testing.T) {
	mockSvc := &mockOpLogService{
		pushOpsFn: func(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (int, int64, error) {
			return 0, 0, store.ErrDeviceNotFound
		},
	}

	h := newHandlerWithOpLogService(mockSvc)

	body, _ := json.Marshal(models.PushRequest{
		VaultID:  "v1",
		DeviceID: "ghost",
		Ops:      []models.OpRecord{{OpID: "op-1", Payload: "a"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/ops/push", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	h.pushOps(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestPushOps_EmptyBatch(t *testing.T) {
	mockSvc := &mockOpLogService{
		pushOpsFn: func(ctx context.Context, vaultID, deviceID string, ops []models.OpRecord) (int, int64, error) {
			return 0, 0, service.ErrValidationNoOpsProvided
		},
	}

	h := newHandlerWithOpLogService(mockSvc)

	body, _ := json.Marshal(models.PushRequest{VaultID: "v1", DeviceID: "d1"})
	req := httptest.NewRequest(http.MethodPost, "/v1/ops/push", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	h.pushOps(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPullOps_Success(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	expected := []models.OpEnvelope{
		{Cursor: 3, OpID: "op-3", Payload: "a", DeviceID: "d2", CreatedAt: now},
		{Cursor: 4, OpID: "op-4", Payload: "b", DeviceID: "d2", CreatedAt: now},
	}

	mockSvc := &mockOpLogService{
		pullOpsFn: func(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, int64, error) {
			if vaultID != "v1" || since != 2 || limit != 100 {
				t.Fatalf("unexpected pull request: %s %d %d", vaultID, since, limit)
			}
			return expected, 4, nil
		},
	}

	h := newHandlerWithOpLogService(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/pull?vaultId=v1&since=2&limit=100", nil)
	rr := httptest.NewRecorder()

	h.pullOps(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp models.PullResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.NextCursor != 4 {
		t.Fatalf("unexpected next cursor %d", resp.NextCursor)
	}
	if !reflect.DeepEqual(resp.Ops, expected) {
		t.Fatalf("unexpected envelopes: %+v", resp.Ops)
	}
}

func TestPullOps_EmptyPageMarshalsAsArray(t *testing.T) {
	mockSvc := &mockOpLogService{
		pullOpsFn: func(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, int64, error) {
			return nil, 9, nil
		},
	}

	h := newHandlerWithOpLogService(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/pull?vaultId=v1&since=9", nil)
	rr := httptest.NewRecorder()

	h.pullOps(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"ops":[]`)) {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}
}

func TestPullOps_BadQueryParams(t *testing.T) {
	h := newHandlerWithOpLogService(&mockOpLogService{})

	tests := []struct {
		name   string
		target string
	}{
		{name: "non-numeric since", target: "/v1/ops/pull?vaultId=v1&since=abc"},
		{name: "non-numeric limit", target: "/v1/ops/pull?vaultId=v1&limit=lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			h.pullOps(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestPullOps_UnknownVault(t *testing.T) {
	mockSvc := &mockOpLogService{
		pullOpsFn: func(ctx context.Context, vaultID string, since int64, limit int) ([]models.OpEnvelope, int64, error) {
			return nil, 0, store.ErrVaultNotFound
		},
	}

	h := newHandlerWithOpLogService(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/pull?vaultId=missing", nil)
	rr := httptest.NewRecorder()

	h.pullOps(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestHealth(t *testing.T) {
	h := &Handler{services: &service.Services{}, logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	h.health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !resp.OK {
		t.Fatalf("expected ok=true")
	}
}

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normalized", input: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", input: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "no scheme", input: "localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", input: "https://sync.example.com/", want: "https://sync.example.com"},
		{name: "surrounding whitespace", input: "  localhost:9000  ", want: "http://localhost:9000"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBaseURL(tt.input))
		})
	}
}

func TestCreateVault_Success(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/vaults", r.URL.Path)

		var req models.CreateVaultRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "fp-1", req.KeyFingerprint)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.CreateVaultResponse{VaultID: "v1"})
	})

	resp, err := adapter.CreateVault(context.Background(), models.CreateVaultRequest{KeyFingerprint: "fp-1"})
	require.NoError(t, err)
	assert.Equal(t, "v1", resp.VaultID)
}

func TestCreateVault_FingerprintMismatch(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "vault key fingerprint mismatch", http.StatusConflict)
	})

	_, err := adapter.CreateVault(context.Background(), models.CreateVaultRequest{KeyFingerprint: "fp-other", VaultID: "v1"})
	require.ErrorIs(t, err, ErrFingerprintMismatch)
}

func TestRegisterDevice_ForbiddenMapsToFingerprintMismatch(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/devices", r.URL.Path)
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, err := adapter.RegisterDevice(context.Background(), models.RegisterDeviceRequest{VaultID: "v1", KeyFingerprint: "fp"})
	require.ErrorIs(t, err, ErrFingerprintMismatch)
}

func TestPushOps_RoundTrip(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/ops/push", r.URL.Path)

		var req models.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "v1", req.VaultID)
		assert.Equal(t, "d1", req.DeviceID)
		require.Len(t, req.Ops, 2)
		assert.Equal(t, "op-1", req.Ops[0].OpID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PushResponse{Accepted: 2, Cursor: 9})
	})

	resp, err := adapter.PushOps(context.Background(), models.PushRequest{
		VaultID:  "v1",
		DeviceID: "d1",
		Ops: []models.OpRecord{
			{OpID: "op-1", Payload: "cipher-1"},
			{OpID: "op-2", Payload: "cipher-2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Accepted)
	assert.Equal(t, int64(9), resp.Cursor)
}

func TestPullOps_QueryParamsAndDecode(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/ops/pull", r.URL.Path)
		assert.Equal(t, "v1", r.URL.Query().Get("vaultId"))
		assert.Equal(t, "7", r.URL.Query().Get("since"))
		assert.Equal(t, "200", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PullResponse{
			Ops: []models.OpEnvelope{
				{Cursor: 8, OpID: "op-8", Payload: "cipher", DeviceID: "d2"},
			},
			NextCursor: 8,
		})
	})

	resp, err := adapter.PullOps(context.Background(), "v1", 7, 200)
	require.NoError(t, err)
	require.Len(t, resp.Ops, 1)
	assert.Equal(t, int64(8), resp.NextCursor)
	assert.Equal(t, "d2", resp.Ops[0].DeviceID)
}

func TestPullOps_VaultNotFound(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "vault was not found", http.StatusNotFound)
	})

	_, err := adapter.PullOps(context.Background(), "missing", 0, 200)
	require.ErrorIs(t, err, ErrVaultNotFound)
}

func TestServerErrorCarriesBody(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "operation log on fire", http.StatusInternalServerError)
	})

	err := adapter.Health(context.Background())
	require.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "operation log on fire")
}

func TestTransportFailureMapsToUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	adapter := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
	srv.Close()

	err := adapter.Health(context.Background())
	require.ErrorIs(t, err, ErrServerUnreachable)

	_, err = adapter.PushOps(context.Background(), models.PushRequest{VaultID: "v1", DeviceID: "d1"})
	require.ErrorIs(t, err, ErrServerUnreachable)
}

func TestHealth_OK(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.HealthResponse{OK: true})
	})

	require.NoError(t, adapter.Health(context.Background()))
}

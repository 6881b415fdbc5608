package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncEngine(t *testing.T) (*clientSyncEngine, *mock.MockLocalVaultStorage, *mock.MockServerAdapter, *mock.MockKeyChainService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	localStore := mock.NewMockLocalVaultStorage(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	keychain := mock.NewMockKeyChainService(ctrl)

	engine := NewClientSyncEngine(localStore, serverAdapter, keychain, logger.Nop()).(*clientSyncEngine)
	engine.afterFunc = func(time.Duration, func()) *time.Timer {
		timer := time.NewTimer(time.Hour)
		timer.Stop()
		return timer
	}

	return engine, localStore, serverAdapter, keychain
}

func testSyncConfig() models.SyncConfig {
	return models.SyncConfig{
		ServerURL:      "http://srv:8080",
		VaultID:        "v1",
		DeviceID:       "d1",
		KeyFingerprint: "fp-1",
	}
}

// queued builds queue envelopes with local cursors start..start+count-1.
func queued(start int64, count int) []models.OpEnvelope {
	envelopes := make([]models.OpEnvelope, 0, count)
	for i := 0; i < count; i++ {
		cursor := start + int64(i)
		envelopes = append(envelopes, models.OpEnvelope{
			Cursor:  cursor,
			OpID:    fmt.Sprintf("op-%d", cursor),
			Payload: "payload",
		})
	}
	return envelopes
}

func TestConnect_RequiresMasterKey(t *testing.T) {
	engine, _, _, _ := newTestSyncEngine(t)

	_, err := engine.Connect(context.Background(), "srv:8080", "", "")
	require.ErrorIs(t, err, ErrNoEncryptionKey)
}

func TestConnect_RegistersVaultAndDevice(t *testing.T) {
	engine, localStore, serverAdapter, keychain := newTestSyncEngine(t)
	ctx := context.Background()

	var delays []time.Duration
	engine.afterFunc = func(d time.Duration, _ func()) *time.Timer {
		delays = append(delays, d)
		timer := time.NewTimer(time.Hour)
		timer.Stop()
		return timer
	}

	keychain.EXPECT().Fingerprint("master key").Return("fp-1")
	localStore.EXPECT().SyncConfig(ctx).Return(models.SyncConfig{}, store.ErrSyncConfigNotFound)
	serverAdapter.EXPECT().SetBaseURL("http://srv:8080")
	serverAdapter.EXPECT().
		CreateVault(ctx, models.CreateVaultRequest{KeyFingerprint: "fp-1"}).
		Return(models.CreateVaultResponse{VaultID: "v1"}, nil)
	serverAdapter.EXPECT().
		RegisterDevice(ctx, models.RegisterDeviceRequest{VaultID: "v1", KeyFingerprint: "fp-1"}).
		Return(models.RegisterDeviceResponse{DeviceID: "d1"}, nil)
	localStore.EXPECT().SaveSyncConfig(ctx, testSyncConfig()).Return(nil)

	cfg, err := engine.Connect(ctx, "srv:8080", "master key", "")
	require.NoError(t, err)
	assert.Equal(t, testSyncConfig(), cfg)

	assert.True(t, engine.enabled)
	require.Len(t, delays, 1)
	assert.Equal(t, syncStartDelay, delays[0])
}

func TestConnect_ReconnectKeepsIdentityAndCursors(t *testing.T) {
	engine, localStore, serverAdapter, keychain := newTestSyncEngine(t)
	ctx := context.Background()

	previous := testSyncConfig()
	previous.DeviceID = "d-old"
	previous.LastPushCursor = 5
	previous.LastPullCursor = 7

	keychain.EXPECT().Fingerprint("master key").Return("fp-1")
	localStore.EXPECT().SyncConfig(ctx).Return(previous, nil)
	serverAdapter.EXPECT().SetBaseURL("http://srv:8080")
	serverAdapter.EXPECT().
		CreateVault(ctx, models.CreateVaultRequest{KeyFingerprint: "fp-1", VaultID: "v1"}).
		Return(models.CreateVaultResponse{VaultID: "v1"}, nil)
	serverAdapter.EXPECT().
		RegisterDevice(ctx, models.RegisterDeviceRequest{VaultID: "v1", KeyFingerprint: "fp-1", DeviceID: "d-old"}).
		Return(models.RegisterDeviceResponse{DeviceID: "d-old"}, nil)
	localStore.EXPECT().
		SaveSyncConfig(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg models.SyncConfig) error {
			assert.Equal(t, "d-old", cfg.DeviceID)
			assert.Equal(t, int64(5), cfg.LastPushCursor)
			assert.Equal(t, int64(7), cfg.LastPullCursor)
			return nil
		})

	cfg, err := engine.Connect(ctx, "http://srv:8080", "master key", "")
	require.NoError(t, err)
	assert.Equal(t, "d-old", cfg.DeviceID)
	assert.Equal(t, int64(5), cfg.LastPushCursor)
}

func TestSyncNow_NotConnected(t *testing.T) {
	engine, localStore, _, _ := newTestSyncEngine(t)

	localStore.EXPECT().
		SyncConfig(gomock.Any()).
		Return(models.SyncConfig{}, store.ErrSyncConfigNotFound)

	_, err := engine.SyncNow(context.Background())
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestSyncNow_PushesInBatches(t *testing.T) {
	engine, localStore, serverAdapter, _ := newTestSyncEngine(t)
	ctx := context.Background()

	cfg := testSyncConfig()
	engine.cfg = &cfg

	localStore.EXPECT().ApplyInbox(gomock.Any()).Return(models.ApplyResult{}, nil)
	localStore.EXPECT().ListOpsSince(gomock.Any(), int64(0), pushBatchLimit).Return(queued(1, 200), nil)
	localStore.EXPECT().ListOpsSince(gomock.Any(), int64(200), pushBatchLimit).Return(queued(201, 50), nil)

	var batchSizes []int
	serverAdapter.EXPECT().
		PushOps(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PushRequest) (models.PushResponse, error) {
			assert.Equal(t, "v1", req.VaultID)
			assert.Equal(t, "d1", req.DeviceID)
			batchSizes = append(batchSizes, len(req.Ops))
			return models.PushResponse{Accepted: len(req.Ops)}, nil
		}).
		Times(2)

	var pushCursors []int64
	localStore.EXPECT().
		SaveSyncConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved models.SyncConfig) error {
			pushCursors = append(pushCursors, saved.LastPushCursor)
			return nil
		}).
		Times(2)

	serverAdapter.EXPECT().
		PullOps(gomock.Any(), "v1", int64(0), pullBatchLimit).
		Return(models.PullResponse{NextCursor: 0}, nil)
	localStore.EXPECT().PendingOpCount(gomock.Any(), int64(250)).Return(0, nil)

	result, err := engine.SyncNow(ctx)
	require.NoError(t, err)

	// A short second batch drains the queue; no third list call happens.
	assert.Equal(t, 250, result.Pushed)
	assert.Equal(t, []int{200, 50}, batchSizes)
	assert.Equal(t, []int64{200, 250}, pushCursors)
	assert.Equal(t, int64(250), engine.cfg.LastPushCursor)
}

func TestSyncNow_DropsOwnDeviceEnvelopes(t *testing.T) {
	engine, localStore, serverAdapter, _ := newTestSyncEngine(t)
	ctx := context.Background()

	cfg := testSyncConfig()
	engine.cfg = &cfg

	localStore.EXPECT().ApplyInbox(gomock.Any()).Return(models.ApplyResult{}, nil)
	localStore.EXPECT().ListOpsSince(gomock.Any(), int64(0), pushBatchLimit).Return(nil, nil)

	serverAdapter.EXPECT().
		PullOps(gomock.Any(), "v1", int64(0), pullBatchLimit).
		Return(models.PullResponse{
			Ops: []models.OpEnvelope{
				{Cursor: 1, OpID: "op-a", DeviceID: "d2"},
				{Cursor: 2, OpID: "op-b", DeviceID: "d1"},
				{Cursor: 3, OpID: "op-c", DeviceID: "d2"},
			},
			NextCursor: 3,
		}, nil)

	localStore.EXPECT().
		StoreInboxOps(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ops []models.OpEnvelope) error {
			require.Len(t, ops, 2)
			assert.Equal(t, "op-a", ops[0].OpID)
			assert.Equal(t, "op-c", ops[1].OpID)
			return nil
		})

	localStore.EXPECT().
		SaveSyncConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved models.SyncConfig) error {
			assert.Equal(t, int64(3), saved.LastPullCursor)
			return nil
		})

	localStore.EXPECT().
		ApplyInbox(gomock.Any()).
		Return(models.ApplyResult{AppliedCount: 2, AffectedContainers: []string{"page-1"}}, nil)
	localStore.EXPECT().PendingOpCount(gomock.Any(), int64(0)).Return(0, nil)

	result, err := engine.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Pulled)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, []string{"page-1"}, result.AffectedContainers)
	assert.Equal(t, int64(3), engine.cfg.LastPullCursor)
}

func TestRunCycle_SingleFlight(t *testing.T) {
	engine, _, _, _ := newTestSyncEngine(t)

	cfg := testSyncConfig()
	engine.cfg = &cfg
	engine.running = true

	// No expectations set: a concurrent trigger must not touch the store
	// or the network.
	result, err := engine.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result)
}

func TestRunCycle_BackoffGrowsAndResets(t *testing.T) {
	engine, localStore, serverAdapter, _ := newTestSyncEngine(t)
	ctx := context.Background()

	cfg := testSyncConfig()
	engine.cfg = &cfg
	engine.enabled = true

	var delays []time.Duration
	engine.afterFunc = func(d time.Duration, _ func()) *time.Timer {
		delays = append(delays, d)
		timer := time.NewTimer(time.Hour)
		timer.Stop()
		return timer
	}

	localStore.EXPECT().ApplyInbox(gomock.Any()).Return(models.ApplyResult{}, nil).AnyTimes()
	localStore.EXPECT().ListOpsSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	unreachable := fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrServerUnreachable)
	serverAdapter.EXPECT().
		PullOps(gomock.Any(), "v1", int64(0), pullBatchLimit).
		Return(models.PullResponse{}, unreachable).
		Times(4)

	for i := 0; i < 4; i++ {
		_, err := engine.SyncNow(ctx)
		require.Error(t, err)
	}
	assert.Equal(t, models.SyncStateOffline, engine.status.State)

	serverAdapter.EXPECT().
		PullOps(gomock.Any(), "v1", int64(0), pullBatchLimit).
		Return(models.PullResponse{}, nil)
	localStore.EXPECT().PendingOpCount(gomock.Any(), int64(0)).Return(0, nil)

	_, err := engine.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateIdle, engine.status.State)

	serverAdapter.EXPECT().
		PullOps(gomock.Any(), "v1", int64(0), pullBatchLimit).
		Return(models.PullResponse{}, unreachable)

	_, err = engine.SyncNow(ctx)
	require.Error(t, err)

	want := []time.Duration{
		8 * time.Second,
		16 * time.Second,
		32 * time.Second,
		60 * time.Second, // capped
		8 * time.Second,  // periodic reschedule after success
		8 * time.Second,  // backoff restarted from the base
	}
	assert.Equal(t, want, delays)
}

func TestRunCycle_ErrorStateOnNonTransportFailure(t *testing.T) {
	engine, localStore, serverAdapter, _ := newTestSyncEngine(t)
	ctx := context.Background()

	cfg := testSyncConfig()
	engine.cfg = &cfg

	localStore.EXPECT().ApplyInbox(gomock.Any()).Return(models.ApplyResult{}, nil)
	localStore.EXPECT().ListOpsSince(gomock.Any(), int64(0), pushBatchLimit).Return(nil, nil)
	serverAdapter.EXPECT().
		PullOps(gomock.Any(), "v1", int64(0), pullBatchLimit).
		Return(models.PullResponse{}, fmt.Errorf("%w: internal server error", adapter.ErrServer))

	_, err := engine.SyncNow(ctx)
	require.Error(t, err)
	assert.Equal(t, models.SyncStateError, engine.status.State)
	assert.NotEmpty(t, engine.status.LastError)
}

func TestConflicts_DeduplicatedByOperationID(t *testing.T) {
	engine, localStore, serverAdapter, _ := newTestSyncEngine(t)
	ctx := context.Background()

	cfg := testSyncConfig()
	engine.cfg = &cfg

	conflict := models.Conflict{
		OpID:        "op-9",
		EntityID:    "blk-1",
		ContainerID: "page-1",
		LocalText:   "local text",
		RemoteText:  "remote text",
	}

	localStore.EXPECT().
		ApplyInbox(gomock.Any()).
		Return(models.ApplyResult{AppliedCount: 1, Conflicts: []models.Conflict{conflict}}, nil).
		Times(2)
	localStore.EXPECT().ListOpsSince(gomock.Any(), int64(0), pushBatchLimit).Return(nil, nil).Times(2)
	serverAdapter.EXPECT().
		PullOps(gomock.Any(), "v1", int64(0), pullBatchLimit).
		Return(models.PullResponse{}, nil).
		Times(2)
	localStore.EXPECT().PendingOpCount(gomock.Any(), int64(0)).Return(0, nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := engine.SyncNow(ctx)
		require.NoError(t, err)
	}

	conflicts := engine.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, conflict, conflicts[0])
}

func TestResolveConflict_RecordsEditThroughPushPath(t *testing.T) {
	engine, localStore, _, _ := newTestSyncEngine(t)
	ctx := context.Background()

	cfg := testSyncConfig()
	engine.cfg = &cfg
	engine.conflicts["op-9"] = models.Conflict{
		OpID:        "op-9",
		EntityID:    "blk-1",
		ContainerID: "page-1",
		LocalText:   "local text",
		RemoteText:  "remote text",
	}

	localStore.EXPECT().NextClock(ctx).Return(int64(7), nil)
	localStore.EXPECT().
		RecordLocalOp(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.BlockOp) (models.OpEnvelope, error) {
			edit, ok := op.(models.EditOp)
			require.True(t, ok)
			assert.NotEmpty(t, edit.OpID)
			assert.Equal(t, "blk-1", edit.EntityID)
			assert.Equal(t, "d1", edit.DeviceID)
			assert.Equal(t, int64(7), edit.Clock)
			assert.Equal(t, "merged text", edit.Text)
			return models.OpEnvelope{Cursor: 1, OpID: edit.OpID}, nil
		})

	err := engine.ResolveConflict(ctx, "op-9", models.ConflictMerge, "merged text")
	require.NoError(t, err)
	assert.Empty(t, engine.Conflicts())
}

func TestResolveConflict_Errors(t *testing.T) {
	engine, _, _, _ := newTestSyncEngine(t)
	ctx := context.Background()

	cfg := testSyncConfig()
	engine.cfg = &cfg

	err := engine.ResolveConflict(ctx, "missing", models.ConflictKeepLocal, "")
	require.ErrorIs(t, err, ErrConflictNotFound)

	engine.conflicts["op-9"] = models.Conflict{OpID: "op-9", EntityID: "blk-1"}
	err = engine.ResolveConflict(ctx, "op-9", models.ConflictChoice("coin flip"), "")
	require.ErrorIs(t, err, ErrUnknownConflictChoice)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	// syncBaseInterval is both the steady-state cycle period and the
	// starting point of the failure backoff.
	syncBaseInterval = 8 * time.Second
	syncMaxBackoff   = 60 * time.Second

	// syncStartDelay keeps Connect and process startup off the network.
	syncStartDelay = 1200 * time.Millisecond

	pushBatchLimit    = 200
	pushMaxIterations = 3
	pullBatchLimit    = 200
)

type clientSyncEngine struct {
	localStore    store.LocalVaultStorage
	adapter       adapter.ServerAdapter
	keychain      crypto.KeyChainService
	uuidGenerator *utils.UUIDGenerator

	mu        sync.Mutex
	cfg       *models.SyncConfig
	status    models.SyncStatus
	conflicts map[string]models.Conflict
	enabled   bool
	running   bool
	backoff   time.Duration
	timer     *time.Timer
	timerCtx  context.Context

	// afterFunc is time.AfterFunc outside of tests.
	afterFunc func(d time.Duration, f func()) *time.Timer

	logger *logger.Logger
}

func NewClientSyncEngine(localStore store.LocalVaultStorage, serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, logger *logger.Logger) ClientSyncEngine {
	return &clientSyncEngine{
		localStore:    localStore,
		adapter:       serverAdapter,
		keychain:      keychain,
		uuidGenerator: utils.NewUUIDGenerator(),
		status:        models.SyncStatus{State: models.SyncStateIdle},
		conflicts:     make(map[string]models.Conflict),
		backoff:       syncBaseInterval,
		timerCtx:      context.Background(),
		afterFunc:     time.AfterFunc,
		logger:        logger,
	}
}

func (s *clientSyncEngine) Connect(ctx context.Context, serverURL, masterKey, vaultID string) (models.SyncConfig, error) {
	log := logger.FromContext(ctx)

	if masterKey == "" {
		return models.SyncConfig{}, ErrNoEncryptionKey
	}
	normalizedURL := adapter.NormalizeBaseURL(serverURL)
	if normalizedURL == "" {
		return models.SyncConfig{}, ErrValidationNoServerURL
	}

	// The master key never leaves the process; only its fingerprint does.
	fingerprint := s.keychain.Fingerprint(masterKey)
	s.adapter.SetBaseURL(normalizedURL)

	var previous models.SyncConfig
	if prev, err := s.localStore.SyncConfig(ctx); err == nil {
		previous = prev
	} else if !errors.Is(err, store.ErrSyncConfigNotFound) {
		return models.SyncConfig{}, err
	}

	requestedVaultID := vaultID
	if requestedVaultID == "" {
		requestedVaultID = previous.VaultID
	}

	vaultResponse, err := s.adapter.CreateVault(ctx, models.CreateVaultRequest{
		KeyFingerprint: fingerprint,
		VaultID:        requestedVaultID,
	})
	if err != nil {
		return models.SyncConfig{}, err
	}

	// Reconnecting to the same vault keeps the device identity so the
	// server-side last-seen stamp is refreshed instead of a new device row
	// piling up per connect.
	requestedDeviceID := ""
	if previous.VaultID == vaultResponse.VaultID {
		requestedDeviceID = previous.DeviceID
	}

	deviceResponse, err := s.adapter.RegisterDevice(ctx, models.RegisterDeviceRequest{
		VaultID:        vaultResponse.VaultID,
		KeyFingerprint: fingerprint,
		DeviceID:       requestedDeviceID,
	})
	if err != nil {
		return models.SyncConfig{}, err
	}

	cfg := models.SyncConfig{
		ServerURL:      normalizedURL,
		VaultID:        vaultResponse.VaultID,
		DeviceID:       deviceResponse.DeviceID,
		KeyFingerprint: fingerprint,
	}
	if previous.VaultID == vaultResponse.VaultID {
		cfg.LastPushCursor = previous.LastPushCursor
		cfg.LastPullCursor = previous.LastPullCursor
	}

	if err := s.localStore.SaveSyncConfig(ctx, cfg); err != nil {
		return models.SyncConfig{}, err
	}

	s.mu.Lock()
	s.cfg = &cfg
	s.status = models.SyncStatus{State: models.SyncStateIdle}
	s.backoff = syncBaseInterval
	s.mu.Unlock()

	log.Info().
		Str("func", "*clientSyncEngine.Connect").
		Str("vault_id", cfg.VaultID).
		Str("device_id", cfg.DeviceID).
		Msg("connected to sync server")

	s.Start(ctx)

	return cfg, nil
}

func (s *clientSyncEngine) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = true
	s.timerCtx = context.WithoutCancel(ctx)
	s.scheduleLocked(syncStartDelay)
}

func (s *clientSyncEngine) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *clientSyncEngine) SyncNow(ctx context.Context) (models.CycleResult, error) {
	if err := s.ensureConfig(ctx); err != nil {
		return models.CycleResult{}, err
	}
	return s.runCycle(ctx, true)
}

func (s *clientSyncEngine) Status(ctx context.Context) models.SyncStatus {
	s.mu.Lock()
	snapshot := s.status
	cfg := s.cfg
	s.mu.Unlock()

	if cfg != nil {
		if pending, err := s.localStore.PendingOpCount(ctx, cfg.LastPushCursor); err == nil {
			snapshot.PendingOps = pending
		}
	}

	return snapshot
}

func (s *clientSyncEngine) Conflicts() []models.Conflict {
	s.mu.Lock()
	defer s.mu.Unlock()

	conflicts := make([]models.Conflict, 0, len(s.conflicts))
	for _, conflict := range s.conflicts {
		conflicts = append(conflicts, conflict)
	}
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].OpID < conflicts[j].OpID })

	return conflicts
}

// ResolveConflict records the chosen text as a fresh local edit. The edit
// carries a clock above everything recorded so far, so the fold makes it
// win on every device once it has been pushed and pulled.
func (s *clientSyncEngine) ResolveConflict(ctx context.Context, opID string, choice models.ConflictChoice, mergedText string) error {
	s.mu.Lock()
	conflict, ok := s.conflicts[opID]
	cfg := s.cfg
	s.mu.Unlock()

	if !ok {
		return ErrConflictNotFound
	}
	if cfg == nil {
		return ErrNotConnected
	}

	var text string
	switch choice {
	case models.ConflictKeepLocal:
		text = conflict.LocalText
	case models.ConflictKeepRemote:
		text = conflict.RemoteText
	case models.ConflictMerge:
		text = mergedText
	default:
		return ErrUnknownConflictChoice
	}

	clock, err := s.localStore.NextClock(ctx)
	if err != nil {
		return err
	}

	edit := models.EditOp{
		OpMeta: models.OpMeta{
			OpID:     s.uuidGenerator.Generate(),
			EntityID: conflict.EntityID,
			DeviceID: cfg.DeviceID,
			Clock:    clock,
		},
		Text: text,
	}
	if _, err := s.localStore.RecordLocalOp(ctx, edit); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.conflicts, opID)
	s.mu.Unlock()

	logger.FromContext(ctx).Info().
		Str("func", "*clientSyncEngine.ResolveConflict").
		Str("operation_id", opID).
		Str("entity_id", conflict.EntityID).
		Str("choice", string(choice)).
		Msg("conflict resolved")

	return nil
}

func (s *clientSyncEngine) ensureConfig(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.cfg != nil
	s.mu.Unlock()
	if loaded {
		return nil
	}

	cfg, err := s.localStore.SyncConfig(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSyncConfigNotFound) {
			return ErrNotConnected
		}
		return err
	}
	s.adapter.SetBaseURL(cfg.ServerURL)

	s.mu.Lock()
	if s.cfg == nil {
		s.cfg = &cfg
	}
	s.mu.Unlock()

	return nil
}

// runCycle is the single entry point for both timer-driven and manual
// cycles. Only one cycle runs at a time; a trigger arriving while one is in
// flight is dropped, not queued.
func (s *clientSyncEngine) runCycle(ctx context.Context, forced bool) (models.CycleResult, error) {
	s.mu.Lock()
	if s.running || s.cfg == nil || (!s.enabled && !forced) {
		s.mu.Unlock()
		return models.CycleResult{}, nil
	}
	s.running = true
	s.status.State = models.SyncStateSyncing
	cfg := *s.cfg
	s.mu.Unlock()

	result, cfgAfter, conflicts, err := s.executeCycle(ctx, cfg)

	var pending int
	if err == nil {
		pending, _ = s.localStore.PendingOpCount(ctx, cfgAfter.LastPushCursor)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.cfg = &cfgAfter
	for _, conflict := range conflicts {
		if _, exists := s.conflicts[conflict.OpID]; !exists {
			s.conflicts[conflict.OpID] = conflict
		}
	}

	if err != nil {
		if errors.Is(err, adapter.ErrServerUnreachable) {
			s.status.State = models.SyncStateOffline
		} else {
			s.status.State = models.SyncStateError
		}
		s.status.LastError = err.Error()

		delay := s.backoff
		s.backoff = min(s.backoff*2, syncMaxBackoff)
		s.scheduleLocked(delay)

		s.logger.Warn().
			Str("func", "*clientSyncEngine.runCycle").
			Err(err).
			Dur("retry_in", delay).
			Msg("sync cycle failed")

		return result, err
	}

	now := time.Now()
	s.status = models.SyncStatus{
		State:          models.SyncStateIdle,
		PendingOps:     pending,
		LastSyncedAt:   &now,
		LastPushCount:  result.Pushed,
		LastPullCount:  result.Pulled,
		LastApplyCount: result.Applied,
	}
	s.backoff = syncBaseInterval
	s.scheduleLocked(syncBaseInterval)

	return result, nil
}

// executeCycle does the actual I/O without holding the engine lock. Cursors
// are persisted per step, so a crash mid-cycle resumes where it left off;
// the server's idempotent push makes a replayed batch harmless.
func (s *clientSyncEngine) executeCycle(ctx context.Context, cfg models.SyncConfig) (models.CycleResult, models.SyncConfig, []models.Conflict, error) {
	var result models.CycleResult
	var conflicts []models.Conflict

	applied, err := s.localStore.ApplyInbox(ctx)
	if err != nil {
		return result, cfg, conflicts, err
	}
	result.Applied += applied.AppliedCount
	result.AffectedContainers = mergeContainers(result.AffectedContainers, applied.AffectedContainers)
	conflicts = append(conflicts, applied.Conflicts...)

	for iteration := 0; iteration < pushMaxIterations; iteration++ {
		batch, err := s.localStore.ListOpsSince(ctx, cfg.LastPushCursor, pushBatchLimit)
		if err != nil {
			return result, cfg, conflicts, err
		}
		if len(batch) == 0 {
			break
		}

		records := make([]models.OpRecord, 0, len(batch))
		for _, envelope := range batch {
			records = append(records, models.OpRecord{OpID: envelope.OpID, Payload: envelope.Payload})
		}

		if _, err := s.adapter.PushOps(ctx, models.PushRequest{
			VaultID:  cfg.VaultID,
			DeviceID: cfg.DeviceID,
			Ops:      records,
		}); err != nil {
			return result, cfg, conflicts, err
		}

		cfg.LastPushCursor = batch[len(batch)-1].Cursor
		if err := s.localStore.SaveSyncConfig(ctx, cfg); err != nil {
			return result, cfg, conflicts, err
		}
		result.Pushed += len(batch)

		// A short batch means the queue is drained.
		if len(batch) < pushBatchLimit {
			break
		}
	}

	pulled, err := s.adapter.PullOps(ctx, cfg.VaultID, cfg.LastPullCursor, pullBatchLimit)
	if err != nil {
		return result, cfg, conflicts, err
	}

	remote := make([]models.OpEnvelope, 0, len(pulled.Ops))
	for _, envelope := range pulled.Ops {
		// Own operations come back with server cursors; their effects are
		// already folded locally.
		if envelope.DeviceID == cfg.DeviceID {
			continue
		}
		remote = append(remote, envelope)
	}

	if len(remote) > 0 {
		if err := s.localStore.StoreInboxOps(ctx, remote); err != nil {
			return result, cfg, conflicts, err
		}
	}
	result.Pulled = len(remote)

	if pulled.NextCursor != cfg.LastPullCursor {
		cfg.LastPullCursor = pulled.NextCursor
		if err := s.localStore.SaveSyncConfig(ctx, cfg); err != nil {
			return result, cfg, conflicts, err
		}
	}

	if len(remote) > 0 {
		applied, err := s.localStore.ApplyInbox(ctx)
		if err != nil {
			return result, cfg, conflicts, err
		}
		result.Applied += applied.AppliedCount
		result.AffectedContainers = mergeContainers(result.AffectedContainers, applied.AffectedContainers)
		conflicts = append(conflicts, applied.Conflicts...)
	}

	return result, cfg, conflicts, nil
}

// scheduleLocked arms the next timer-driven cycle. Caller holds s.mu.
func (s *clientSyncEngine) scheduleLocked(delay time.Duration) {
	if !s.enabled {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}

	ctx := s.timerCtx
	s.timer = s.afterFunc(delay, func() {
		_, _ = s.runCycle(ctx, false)
	})
}

func mergeContainers(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range incoming {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		existing = append(existing, id)
	}
	return existing
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [LocalVaultStorage]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// VaultStorage is the SQLite-backed local replication store: outbound
	// queue, inbox, recorded operations, and folded block state.
	VaultStorage LocalVaultStorage
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens (and on first use creates) the SQLite
// database at cfg.Path, bootstraps the schema, and wires a fresh
// [LocalVaultStorage].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		VaultStorage: NewLocalVaultStorage(db, logger),
	}, nil
}

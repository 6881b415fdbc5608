package store

import "github.com/MKhiriev/go-note-sync/internal/logger"

type Storages struct {
	VaultRepository VaultRepository
	OpLogRepository OpLogRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		VaultRepository: NewVaultRepository(db, log),
		OpLogRepository: NewOpLogRepository(db, log),
	}
}

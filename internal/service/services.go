package service

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

type Services struct {
	RegistryService RegistryService
	OpLogService    OpLogService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		RegistryService: NewRegistryService(storages.VaultRepository, logger),
		OpLogService:    NewOpLogService(storages.OpLogRepository, storages.VaultRepository, logger),
	}
}

package service

import (
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

// ClientServices bundles the client-side services behind one constructor.
type ClientServices struct {
	KeyChainService crypto.KeyChainService
	SyncEngine      ClientSyncEngine
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	keychain := crypto.NewKeyChainService()

	return &ClientServices{
		KeyChainService: keychain,
		SyncEngine:      NewClientSyncEngine(storages.VaultStorage, serverAdapter, keychain, logger),
	}
}

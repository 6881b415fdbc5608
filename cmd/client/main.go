package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// sampleContainerID is the page the -add-block flag writes into. It exists
// so the engine can be exercised end to end without any editing UI.
const sampleContainerID = "notes"

func main() {
	printBuildInfo()

	// extra client flags; registered before the config layer calls flag.Parse
	addBlockText := flag.String("add-block", "", "Record a local block with the given text")
	syncNow := flag.Bool("sync-now", false, "Run one sync cycle and exit")

	log := logger.NewLogger("go-note-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	syncConfig, err := services.SyncEngine.Connect(ctx, cfg.Adapter.ServerURL, cfg.App.MasterKey, cfg.App.VaultID)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to sync server")
	}

	log.Info().
		Str("vault_id", syncConfig.VaultID).
		Str("device_id", syncConfig.DeviceID).
		Msg("connected")

	if *addBlockText != "" {
		if err = recordSampleBlock(ctx, localStorage, syncConfig, *addBlockText); err != nil {
			log.Fatal().Err(err).Msg("record local block")
		}
		log.Info().Msg("local block recorded")
	}

	if *syncNow {
		result, err := services.SyncEngine.SyncNow(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("sync cycle failed")
		}

		log.Info().
			Int("pushed", result.Pushed).
			Int("pulled", result.Pulled).
			Int("applied", result.Applied).
			Msg("sync cycle finished")
		return
	}

	// steady state: the engine syncs on its own timers until a stop signal
	<-ctx.Done()
	services.SyncEngine.Stop()

	status := services.SyncEngine.Status(context.Background())
	log.Info().
		Str("state", string(status.State)).
		Int("pending_ops", status.PendingOps).
		Msg("client stopped")
}

func recordSampleBlock(ctx context.Context, storages *store.ClientStorages, cfg models.SyncConfig, text string) error {
	clock, err := storages.VaultStorage.NextClock(ctx)
	if err != nil {
		return err
	}

	uuidGenerator := utils.NewUUIDGenerator()
	add := models.AddOp{
		OpMeta: models.OpMeta{
			OpID:     uuidGenerator.Generate(),
			EntityID: uuidGenerator.Generate(),
			DeviceID: cfg.DeviceID,
			Clock:    clock,
		},
		ContainerID: sampleContainerID,
		Text:        text,
		SortKey:     fmt.Sprintf("%020d", clock),
	}

	_, err = storages.VaultStorage.RecordLocalOp(ctx, add)
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

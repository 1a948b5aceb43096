package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"trendreel/functions/config"
	"trendreel/functions/internal/store"
	"trendreel/functions/internal/virality"
	"trendreel/functions/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.InitLogger("info").Fatalf("Failed to load config: %v", err)
	}
	log := config.InitLogger(cfg.LogLevel)
	log.Info("Starting virality refresher...")

	db, err := store.NewSupabaseStore(cfg.SupabaseURL, cfg.ServiceKey())
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	refresher := virality.NewRefresher(db, log)

	dispatcher := worker.NewDispatcher(cfg.RefreshWorkers, cfg.RefreshQueueSize, log)
	dispatcher.Run()

	runRefresh := func() {
		queued, err := refresher.Schedule(dispatcher)
		if err != nil {
			log.WithError(err).Error("Virality refresh run failed")
			return
		}
		log.WithField("jobs", queued).Info("Virality refresh jobs queued")
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.ViralityRefreshCron, runRefresh); err != nil {
		log.Fatalf("Invalid VIRALITY_REFRESH_CRON %q: %v", cfg.ViralityRefreshCron, err)
	}
	c.Start()
	log.WithField("schedule", cfg.ViralityRefreshCron).Info("Virality refresh scheduled")

	// First pass on boot so a fresh deploy does not wait for the schedule.
	runRefresh()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down virality refresher...")
	<-c.Stop().Done()
	dispatcher.Stop()
	log.Info("Virality refresher shut down gracefully.")
}

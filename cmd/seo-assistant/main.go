package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seo-assistant/internal/seo"
	"seo-assistant/internal/server"
	"seo-assistant/internal/youtube"
	"seo-assistant/shared/config"
	"seo-assistant/shared/monitoring"
	"seo-assistant/shared/storage"

	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ytClient, err := youtube.NewClient(cfg.YouTube.APIKey)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}

	seoClient, err := seo.NewClient(seo.Config{
		APIKey:          cfg.AI.GeminiAPIKey,
		ModelCandidates: cfg.AI.ModelCandidates,
		AttemptTimeout:  cfg.AI.AttemptTimeout(),
	}, seo.NewHeuristics(nil))
	if err != nil {
		log.Fatalf("Failed to create SEO client: %v", err)
	}

	history, err := storage.NewHistory(cfg.History.DataDir, cfg.History.Retention())
	if err != nil {
		log.Fatalf("Failed to create history store: %v", err)
	}
	log.Printf("History store initialized (%d records)", history.Count())

	// Prune expired history records on a schedule
	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(cfg.History.PruneSchedule, func() {
		if err := history.Prune(); err != nil {
			log.Printf("History prune failed: %v", err)
		} else {
			log.Printf("History pruned (%d records remain)", history.Count())
		}
	}); err != nil {
		log.Fatalf("Failed to schedule history pruning: %v", err)
	}
	c.Start()
	defer c.Stop()

	monitor := monitoring.NewMonitor()
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.New(ytClient, seoClient, history, monitor).Handler(),
	}

	go func() {
		log.Printf("SEO assistant listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := OpenStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	app, err := NewApp(cfg, DefaultContent(), store)
	if err != nil {
		log.Fatalf("Failed to initialise app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := store.SyncLinks(ctx, app.links.All()); err != nil {
		log.Fatalf("Failed to register outbound links: %v", err)
	}
	go app.runCleanup(ctx)

	r, err := app.Router()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	// Visit writes outlive their requests; let them land before the
	// deferred store.Close.
	app.waitForTracking()
}

// runCleanup deletes visitor records past the retention window, once at
// startup and then every CleanupInterval until ctx is done.
func (a *App) runCleanup(ctx context.Context) {
	a.cleanupVisitors(ctx)
	if a.cfg.CleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(a.cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.cleanupVisitors(ctx)
		}
	}
}

func (a *App) cleanupVisitors(ctx context.Context) {
	n, err := a.store.CleanupVisitors(ctx, a.cfg.VisitorRetention)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than %s", n, a.cfg.VisitorRetention)
	}
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/agamariel/paymall-console/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	// SIGINT/SIGTERM отменяют rootCtx, вместе с ним останавливается очистка страниц
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("paymall-console: init failed: %v", err)
	}

	target := cfg.PayMallURL
	if target == "" {
		target = "<page host>:8080"
	}
	log.Printf("paymall-console: listening on %s, pay-mall %s, idle pages expire after %s",
		cfg.RunAddress, target, cfg.PageTTL)

	go func() {
		if err := app.Start(rootCtx); err != nil {
			log.Printf("paymall-console: server stopped: %v", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Println("paymall-console: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		log.Fatalf("paymall-console: shutdown: %v", err)
	}
}

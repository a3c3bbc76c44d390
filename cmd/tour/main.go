package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/heroes/internal/tour/config"
	"github.com/aussiebroadwan/heroes/internal/tour/heroservice"
	"github.com/aussiebroadwan/heroes/internal/tour/messages"
	"github.com/aussiebroadwan/heroes/internal/tour/shell"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/aussiebroadwan/heroes/pkg/slogx"
	"github.com/joho/godotenv"
)

const version = "v0.1.0"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logs go to stderr so they stay out of the rendered views
	slogx.New(slogx.Config{
		Service: "tour",
		Version: version,
		Env:     "cli",
		Level:   cfg.LogLevel,
		Format:  "text",
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	msgs := messages.NewLog(cfg.MessageCapacity)
	svc := heroservice.New(heroesdk.NewSDKClient(cfg.APIURL), msgs)

	sh := shell.New(svc, msgs, os.Stdout, shell.Options{
		SearchDebounce: cfg.SearchDebounce,
		NoColor:        cfg.NoColor(),
	})
	if err := sh.Run(ctx, os.Stdin); err != nil {
		log.Fatalf("tour: %v", err)
	}
}

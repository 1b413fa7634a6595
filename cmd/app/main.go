package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skunkedgame/skunkd/internal/config"
	"github.com/skunkedgame/skunkd/internal/cooldown"
	"github.com/skunkedgame/skunkd/internal/crafting"
	"github.com/skunkedgame/skunkd/internal/domain"
	"github.com/skunkedgame/skunkd/internal/event"
	"github.com/skunkedgame/skunkd/internal/honey"
	"github.com/skunkedgame/skunkd/internal/inventory"
	"github.com/skunkedgame/skunkd/internal/item"
	"github.com/skunkedgame/skunkd/internal/server"
	"github.com/skunkedgame/skunkd/internal/transport"
	"github.com/skunkedgame/skunkd/internal/world"
)

const (
	shutdownTimeout   = 10 * time.Second
	honeyTickInterval = time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	items, err := item.Load(cfg.ItemsPath)
	if err != nil {
		slog.Error("Failed to load item catalog", "path", cfg.ItemsPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Item catalog loaded", "items", items.Len())

	recipes, err := crafting.Load(cfg.RecipesPath, items)
	if err != nil {
		slog.Error("Failed to load recipe catalog", "path", cfg.RecipesPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Recipe catalog loaded", "recipes", len(recipes.Names()))

	bus := event.NewMemoryBus()
	registerEventHandlers(bus)

	cooldowns := cooldown.NewService(cooldown.Config{
		Cooldowns: map[string]time.Duration{
			cooldown.ActionDrop: cfg.DropCooldown,
		},
	})

	spawner := world.NewSpawner()

	invService := inventory.NewService(inventory.Config{
		MaxSlots:        cfg.MaxSlots,
		MaxStackSize:    cfg.MaxStackSize,
		PickupRange:     cfg.PickupRange,
		RPCSpamCooldown: cfg.RPCSpamCooldown,
	}, items, recipes, spawner, cooldowns, bus)

	honeyService := honey.NewService(honey.Config{
		InteractRange:   cfg.HarvestRange,
		HarvestCooldown: cfg.HarvestCooldown,
		PerUseCap:       cfg.HarvestPerUse,
		RegenPerSecond:  cfg.RegenPerSecond,
		MaxStock:        cfg.MaxHoneyStock,
		ItemName:        "Honey",
		ResourceType:    domain.ResourceHoney,
	}, invService, spawner, bus)

	gateway := transport.NewGateway(invService, honeyService)

	srv := server.NewServer(cfg.Port, cfg.APIKey, invService, honeyService, recipes, gateway)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go honeyService.Run(ctx, honeyTickInterval)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	slog.Info("Server stopped")
}

package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventcheckin/config"
	"eventcheckin/internal/clock"
	deliveryhttp "eventcheckin/internal/delivery/http"
	"eventcheckin/internal/delivery/http/controllers"
	"eventcheckin/internal/delivery/http/middleware"
	"eventcheckin/internal/domain"
	"eventcheckin/internal/metrics"
	"eventcheckin/internal/repository/memory"
	"eventcheckin/internal/services"
	"eventcheckin/internal/textnorm"
)

// loadEvents returns the seed named by cfg.SeedFile, or the built-in data set.
func loadEvents(cfg *config.Config, logger *slog.Logger) ([]*domain.Event, error) {
	if cfg.SeedFile == "" {
		logger.Info("using built-in seed data")
		return memory.DefaultEvents(), nil
	}
	events, err := memory.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded seed file", "path", cfg.SeedFile, "events", len(events))
	return events, nil
}

// buildHandler wires the store, services, controllers and middleware.
func buildHandler(cfg *config.Config, logger *slog.Logger, clk clock.Clock) (http.Handler, error) {
	events, err := loadEvents(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	repo, err := memory.NewEventRepository(events)
	if err != nil {
		return nil, fmt.Errorf("create event repository: %w", err)
	}
	collator, err := textnorm.NewCollator(cfg.SearchLocale)
	if err != nil {
		return nil, err
	}
	m := metrics.New()

	eventSvc := services.NewEventService(repo)
	attendeeSvc := services.NewAttendeeService(repo, clk, collator, m)

	if cfg.AuthSecret == "" {
		logger.Warn("AUTH_SECRET not set, requests are not authenticated")
	}

	return deliveryhttp.NewRouter(deliveryhttp.RouterOptions{
		Logger:      logger,
		Health:      controllers.NewHealthController(clk),
		Events:      controllers.NewEventController(logger, eventSvc),
		Attendees:   controllers.NewAttendeeController(logger, attendeeSvc, cfg.MaxPageSize),
		Metrics:     m,
		Auth:        middleware.AuthOptions{Secret: cfg.AuthSecret},
		CORSOrigins: cfg.CORSOrigins,
	}), nil
}

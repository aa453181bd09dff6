package handler

import (
	"context"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/service"
)

// Pinger reports whether the database behind the API is reachable. The
// health check uses it to fill the "database" field of its response.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	app      config.App
	db       Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, db Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		db:       db,
		logger:   logger,
	}
}

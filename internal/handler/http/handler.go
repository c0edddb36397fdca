package http

import (
	"github.com/boardhive/jobboard/internal/config"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/objectstore"
	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/internal/utils"
)

type Handler struct {
	services *service.Services
	blobs    objectstore.ObjectStore
	version  string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, blobs objectstore.ObjectStore, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		blobs:    blobs,
		version:  cfg.Version,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

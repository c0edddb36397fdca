package service

import (
	"github.com/boardhive/jobboard/internal/config"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/objectstore"
	"github.com/boardhive/jobboard/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	ListingService ListingService
}

func NewServices(storages store.Storages, blobs objectstore.ObjectStore, notifier Notifier, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, cfg.App, logger),
		AccountService: NewAccountService(storages.AccountRepository, blobs, notifier, cfg.App, cfg.Mail, logger),
		ListingService: NewListingService(storages.ListingRepository, blobs, logger),
	}
}

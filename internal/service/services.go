package service

import (
	"fmt"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContactService ContactService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. ContactService is wrapped
// with validation, so invalid input never reaches the repositories.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	contactService := NewContactValidationService().
		Wrap(NewContactService(storages.ContactRepository, cfg.App, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ContactService: contactService,
		AppInfoService: appInfoService,
	}, nil
}

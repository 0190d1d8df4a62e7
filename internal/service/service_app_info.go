package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
)

// appInfoService reports static facts about the running server.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg carries no
// version after trimming.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

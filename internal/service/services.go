package service

import (
	"github.com/MKhiriev/go-feedback/internal/config"
	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/models"
)

type Services struct {
	AuthService     AuthService
	GuardService    GuardService
	UserService     UserService
	FeedbackService FeedbackService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	guard := NewGuardService(storages.FeedbackRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		GuardService:    guard,
		UserService:     NewUserService(guard, storages.UserRepository, storages.FeedbackRepository, logger),
		FeedbackService: NewFeedbackService(guard, storages.FeedbackRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}

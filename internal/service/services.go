package service

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/internal/workers"
)

type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			crypto.NewPasswordHasher(),
			workers.NewPool(cfg.Workers.HashConcurrency),
			validator,
			cfg.App,
			m,
			logger,
		),
		TaskService:    NewTaskValidationService(validator).Wrap(NewTaskService(storages.TaskRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}

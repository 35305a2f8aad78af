package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService registers and authenticates users and manages their tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService manages the tasks of a single authenticated user. Every method
// is scoped by userID: tasks of other users behave as if they did not exist.
type TaskService interface {
	ListTasks(ctx context.Context, userID int64) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID int64) (models.Task, error)
	CreateTask(ctx context.Context, userID int64, request models.CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, request models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned UserID.
	// A duplicate username yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with exactly this username
	// (case-sensitive) or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TaskRepository persists tasks. Every method is scoped to the owning user:
// userID is always part of the WHERE clause, so records of other users are
// never read, changed or deleted.
type TaskRepository interface {
	// ListTasks returns all tasks of userID in display order.
	ListTasks(ctx context.Context, userID int64) ([]models.Task, error)

	// GetTask returns the task taskID of userID or [ErrTaskNotFound].
	GetTask(ctx context.Context, userID, taskID int64) (models.Task, error)

	// CreateTask inserts task and returns it with the assigned ID.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// UpdateTask applies the non-nil fields of update and returns the
	// resulting record or [ErrTaskNotFound].
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)

	// DeleteTask removes the task taskID of userID or returns
	// [ErrTaskNotFound].
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may succeed if retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}

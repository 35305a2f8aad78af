package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validating.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService // returns a decorated TaskService applying additional behavior
}

// TaskValidationService rejects malformed create and update requests before
// they reach the wrapped TaskService.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService(validator validators.Validator) TaskServiceWrapper {
	return &TaskValidationService{
		validator: validator,
	}
}

func (v *TaskValidationService) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return v.inner.ListTasks(ctx, userID)
}

func (v *TaskValidationService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	return v.inner.GetTask(ctx, userID, taskID)
}

func (v *TaskValidationService) CreateTask(ctx context.Context, userID int64, request models.CreateTaskRequest) (models.Task, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("invalid task provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateTask(ctx, userID, request)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, userID, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("task_id", taskID).Msg("invalid task update provided")
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateTask(ctx, userID, taskID, request)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return v.inner.DeleteTask(ctx, userID, taskID)
}

func (v *TaskValidationService) Wrap(wrapped TaskService) TaskService {
	v.inner = wrapped
	return v
}

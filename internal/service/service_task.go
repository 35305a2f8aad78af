// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type taskService struct {
	taskRepository store.TaskRepository

	now func() time.Time

	logger *logger.Logger
}

// NewTaskService returns the TaskService backed by taskRepository. It does
// not validate requests; wrap it with NewTaskValidationService for that.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		now:            time.Now,
		logger:         logger,
	}
}

// ListTasks returns the tasks of userID in priority order, see models.SortTasks.
func (t *taskService) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	tasks, err := t.taskRepository.ListTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	models.SortTasks(tasks)
	return tasks, nil
}

func (t *taskService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	return t.taskRepository.GetTask(ctx, userID, taskID)
}

// CreateTask stores a new incomplete task. A missing priority becomes
// models.DefaultTaskPriority.
func (t *taskService) CreateTask(ctx context.Context, userID int64, request models.CreateTaskRequest) (models.Task, error) {
	priority := models.DefaultTaskPriority
	if request.Priority != nil {
		priority = *request.Priority
	}

	return t.taskRepository.CreateTask(ctx, models.Task{
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Priority:    priority,
		CreatedAt:   t.timestamp(),
		DueDate:     request.DueDate,
	})
}

// UpdateTask changes only the fields present in request. Marking a task
// completed stamps CompletedAt with the current time; marking it incomplete
// clears CompletedAt. A request without fields returns the task unchanged.
func (t *taskService) UpdateTask(ctx context.Context, userID, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	update := models.TaskUpdate{
		ID:          taskID,
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Priority:    request.Priority,
		IsCompleted: request.IsCompleted,
		DueDate:     request.DueDate,
	}

	if update.IsEmpty() {
		logger.FromContext(ctx).Debug().Int64("task_id", taskID).Msg("empty task update, returning current state")
		return t.taskRepository.GetTask(ctx, userID, taskID)
	}

	if request.IsCompleted != nil && *request.IsCompleted {
		completedAt := t.timestamp()
		update.CompletedAt = &completedAt
	}

	return t.taskRepository.UpdateTask(ctx, update)
}

func (t *taskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return t.taskRepository.DeleteTask(ctx, userID, taskID)
}

// timestamp matches the microsecond precision of the database.
func (t *taskService) timestamp() time.Time {
	return t.now().UTC().Truncate(time.Microsecond)
}

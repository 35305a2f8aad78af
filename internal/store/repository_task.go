// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table. Every statement it issues filters on user_id.
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// ListTasks returns every task owned by userID ordered by priority, due
// date, creation time and id. Returns an empty slice when the user has no
// tasks.
func (t *taskRepository) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(t.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.ListTasks").Int64("user_id", userID).Msg("failed to build query")
		return nil, err
	}

	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.ListTasks").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "taskRepository.ListTasks").Int64("user_id", userID).Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "taskRepository.ListTasks").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// GetTask returns the task with taskID if it belongs to userID.
func (t *taskRepository) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTaskQuery(t.builder, userID, taskID)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.GetTask").Msg("failed to build query")
		return models.Task{}, err
	}

	task, err := scanTask(t.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "taskRepository.GetTask").Int64("user_id", userID).Int64("task_id", taskID).Msg("failed to get task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// CreateTask inserts task and returns it with the generated ID.
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateTaskQuery(t.builder, task)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.CreateTask").Msg("failed to build query")
		return models.Task{}, err
	}

	if err = t.QueryRowContext(ctx, query, args...).Scan(&task.ID); err != nil {
		log.Err(err).
			Str("func", "taskRepository.CreateTask").
			Int64("user_id", task.UserID).
			Bool("retryable", t.errorClassificator.Classify(err) == Retryable).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

// UpdateTask applies update in a single owner-scoped UPDATE ... RETURNING
// statement. Zero matched rows means the task does not exist for this user.
func (t *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(t.builder, update)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.UpdateTask").Msg("failed to build query")
		return models.Task{}, err
	}

	task, err := scanTask(t.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.UpdateTask").
			Int64("user_id", update.UserID).
			Int64("task_id", update.ID).
			Bool("retryable", t.errorClassificator.Classify(err) == Retryable).
			Msg("failed to update task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

// DeleteTask hard-deletes the task with taskID if it belongs to userID.
func (t *taskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTaskQuery(t.builder, userID, taskID)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.DeleteTask").Msg("failed to build query")
		return err
	}

	result, err := t.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.DeleteTask").Int64("user_id", userID).Int64("task_id", taskID).Msg("failed to delete task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "taskRepository.DeleteTask").Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var task models.Task
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.IsCompleted,
		&task.Priority,
		&task.CreatedAt,
		&task.CompletedAt,
		&task.DueDate,
	)
	return task, err
}

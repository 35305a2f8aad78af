// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

var taskRowColumns = []string{"id", "user_id", "title", "description", "is_completed", "priority", "created_at", "completed_at", "due_date"}

func newTestTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	return &taskRepository{DB: newPostgresDB(db, l), logger: l}, mock, db
}

func ptr[T any](v T) *T { return &v }

func TestTaskRepository_ListTasks(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(taskRowColumns).
		AddRow(1, 42, "A", "desc", false, 5, created, nil, due).
		AddRow(2, 42, "B", nil, true, 3, created, created, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE user_id = $1 ORDER BY priority DESC, due_date ASC NULLS LAST, created_at DESC, id ASC")).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	tasks, err := repo.ListTasks(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "A", tasks[0].Title)
	require.NotNil(t, tasks[0].Description)
	assert.Equal(t, "desc", *tasks[0].Description)
	require.NotNil(t, tasks[0].DueDate)
	assert.Equal(t, models.NewDate(2025, time.March, 5), *tasks[0].DueDate)
	assert.Nil(t, tasks[0].CompletedAt)

	assert.Nil(t, tasks[1].Description)
	assert.Nil(t, tasks[1].DueDate)
	require.NotNil(t, tasks[1].CompletedAt)
	assert.True(t, tasks[1].IsCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ListTasks_Empty(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM tasks").WithArgs(int64(1)).WillReturnRows(sqlmock.NewRows(taskRowColumns))

	tasks, err := repo.ListTasks(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepository_ListTasks_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock, db := newTestTaskRepo(t)
		defer db.Close()
		mock.ExpectQuery("FROM tasks").WillReturnError(errors.New("boom"))

		_, err := repo.ListTasks(context.Background(), 1)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock, db := newTestTaskRepo(t)
		defer db.Close()
		mock.ExpectQuery("FROM tasks").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		_, err := repo.ListTasks(context.Background(), 1)
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration", func(t *testing.T) {
		repo, mock, db := newTestTaskRepo(t)
		defer db.Close()
		rows := sqlmock.NewRows(taskRowColumns).
			AddRow(1, 1, "A", nil, false, 1, time.Now(), nil, nil).
			RowError(0, errors.New("connection reset"))
		mock.ExpectQuery("FROM tasks").WillReturnRows(rows)

		_, err := repo.ListTasks(context.Background(), 1)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestTaskRepository_GetTask_OwnerScoped(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(9), int64(42)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(9, 42, "mine", nil, false, 1, time.Now(), nil, nil))

	task, err := repo.GetTask(context.Background(), 42, 9)

	require.NoError(t, err)
	assert.Equal(t, int64(9), task.ID)
	assert.Equal(t, int64(42), task.UserID)
}

func TestTaskRepository_GetTask_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM tasks").
		WithArgs(int64(9), int64(43)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns))

	_, err := repo.GetTask(context.Background(), 43, 9)

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskRepository_CreateTask(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	task := models.Task{UserID: 42, Title: "new", Priority: 1, CreatedAt: time.Now().UTC()}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tasks (user_id,title,description,is_completed,priority,created_at,completed_at,due_date) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id")).
		WithArgs(int64(42), "new", sqlmock.AnyArg(), false, 1, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))

	created, err := repo.CreateTask(context.Background(), task)

	require.NoError(t, err)
	assert.Equal(t, int64(100), created.ID)
	assert.Equal(t, "new", created.Title)
}

func TestTaskRepository_CreateTask_Error(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO tasks").WillReturnError(errors.New("fk violation"))

	_, err := repo.CreateTask(context.Background(), models.Task{UserID: 1, Title: "x"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestTaskRepository_UpdateTask(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	completedAt := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)
	update := models.TaskUpdate{
		ID:          9,
		UserID:      42,
		Title:       ptr("renamed"),
		IsCompleted: ptr(true),
		CompletedAt: &completedAt,
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE tasks SET title = $1, is_completed = $2, completed_at = $3 WHERE id = $4 AND user_id = $5 RETURNING id, user_id")).
		WithArgs("renamed", true, completedAt, int64(9), int64(42)).
		WillReturnRows(sqlmock.NewRows(taskRowColumns).AddRow(9, 42, "renamed", nil, true, 1, time.Now(), completedAt, nil))

	task, err := repo.UpdateTask(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, "renamed", task.Title)
	assert.True(t, task.IsCompleted)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, completedAt.Equal(*task.CompletedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateTask_ForeignOrMissing(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE tasks").WillReturnRows(sqlmock.NewRows(taskRowColumns))

	_, err := repo.UpdateTask(context.Background(), models.TaskUpdate{ID: 9, UserID: 43, Priority: ptr(2)})

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskRepository_UpdateTask_Empty(t *testing.T) {
	repo, _, db := newTestTaskRepo(t)
	defer db.Close()

	_, err := repo.UpdateTask(context.Background(), models.TaskUpdate{ID: 9, UserID: 42})

	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestTaskRepository_DeleteTask(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing or foreign", affected: 0, wantErr: ErrTaskNotFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestTaskRepo(t)
			defer db.Close()

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks WHERE id = $1 AND user_id = $2")).
				WithArgs(int64(9), int64(42))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.DeleteTask(context.Background(), 42, 9)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

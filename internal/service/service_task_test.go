package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTaskSvc(t *testing.T, ctrl *gomock.Controller) (*taskService, *mock.MockTaskRepository) {
	t.Helper()
	mockRepo := mock.NewMockTaskRepository(ctrl)

	svc := NewTaskService(mockRepo, logger.Nop()).(*taskService)
	svc.now = func() time.Time { return fixedNow.Add(123 * time.Nanosecond) }

	return svc, mockRepo
}

func ptr[T any](v T) *T {
	return &v
}

// ── ListTasks ────────────────────────────────────────────────────────────────

func TestTaskService_ListTasks_SortsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	day := func(d int) *models.Date { return ptr(models.NewDate(2026, time.March, d)) }
	mockRepo.EXPECT().ListTasks(ctx, int64(1)).Return([]models.Task{
		{ID: 1, Priority: 1, DueDate: nil, CreatedAt: fixedNow},
		{ID: 2, Priority: 3, DueDate: day(20), CreatedAt: fixedNow},
		{ID: 3, Priority: 3, DueDate: day(10), CreatedAt: fixedNow},
		{ID: 4, Priority: 1, DueDate: day(5), CreatedAt: fixedNow},
	}, nil)

	tasks, err := svc.ListTasks(ctx, 1)

	require.NoError(t, err)
	ids := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []int64{3, 2, 4, 1}, ids)
}

func TestTaskService_ListTasks_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)

	mockRepo.EXPECT().ListTasks(gomock.Any(), int64(1)).Return(nil, store.ErrScanningRows)

	_, err := svc.ListTasks(context.Background(), 1)

	assert.ErrorIs(t, err, store.ErrScanningRows)
}

// ── CreateTask ───────────────────────────────────────────────────────────────

func TestTaskService_CreateTask_DefaultsPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, int64(9), task.UserID)
			assert.Equal(t, "buy milk", task.Title)
			assert.Equal(t, models.DefaultTaskPriority, task.Priority)
			assert.False(t, task.IsCompleted)
			assert.Nil(t, task.CompletedAt)
			assert.Equal(t, fixedNow, task.CreatedAt, "created_at is truncated to microseconds")
			task.ID = 100
			return task, nil
		},
	)

	task, err := svc.CreateTask(ctx, 9, models.CreateTaskRequest{Title: "buy milk"})

	require.NoError(t, err)
	assert.Equal(t, int64(100), task.ID)
}

func TestTaskService_CreateTask_KeepsProvidedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	due := models.NewDate(2026, time.April, 1)
	req := models.CreateTaskRequest{
		Title:       "report",
		Description: ptr("quarterly"),
		Priority:    ptr(5),
		DueDate:     &due,
	}

	mockRepo.EXPECT().CreateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, 5, task.Priority)
			assert.Equal(t, "quarterly", *task.Description)
			assert.Equal(t, due, *task.DueDate)
			return task, nil
		},
	)

	_, err := svc.CreateTask(ctx, 9, req)
	require.NoError(t, err)
}

// ── UpdateTask ───────────────────────────────────────────────────────────────

func TestTaskService_UpdateTask_CompletingStampsCompletedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			assert.Equal(t, int64(5), update.ID)
			assert.Equal(t, int64(9), update.UserID)
			require.NotNil(t, update.CompletedAt)
			assert.Equal(t, fixedNow, *update.CompletedAt)
			assert.Nil(t, update.Title)
			return models.Task{ID: 5, IsCompleted: true, CompletedAt: update.CompletedAt}, nil
		},
	)

	task, err := svc.UpdateTask(ctx, 9, 5, models.UpdateTaskRequest{IsCompleted: ptr(true)})

	require.NoError(t, err)
	assert.True(t, task.IsCompleted)
}

func TestTaskService_UpdateTask_ReopeningClearsCompletedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			require.NotNil(t, update.IsCompleted)
			assert.False(t, *update.IsCompleted)
			assert.Nil(t, update.CompletedAt)
			return models.Task{ID: 5}, nil
		},
	)

	_, err := svc.UpdateTask(ctx, 9, 5, models.UpdateTaskRequest{IsCompleted: ptr(false)})
	require.NoError(t, err)
}

func TestTaskService_UpdateTask_PartialFieldsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			assert.Equal(t, ptr(4), update.Priority)
			assert.Nil(t, update.Title)
			assert.Nil(t, update.Description)
			assert.Nil(t, update.IsCompleted)
			assert.Nil(t, update.CompletedAt)
			assert.Nil(t, update.DueDate)
			return models.Task{ID: 5, Priority: 4}, nil
		},
	)

	task, err := svc.UpdateTask(ctx, 9, 5, models.UpdateTaskRequest{Priority: ptr(4)})

	require.NoError(t, err)
	assert.Equal(t, 4, task.Priority)
}

func TestTaskService_UpdateTask_EmptyReturnsCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	current := models.Task{ID: 5, Title: "same"}
	mockRepo.EXPECT().GetTask(ctx, int64(9), int64(5)).Return(current, nil)

	task, err := svc.UpdateTask(ctx, 9, 5, models.UpdateTaskRequest{})

	require.NoError(t, err)
	assert.Equal(t, current, task)
}

func TestTaskService_UpdateTask_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)

	mockRepo.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.UpdateTask(context.Background(), 9, 5, models.UpdateTaskRequest{Title: ptr("x")})

	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

// ── GetTask / DeleteTask ─────────────────────────────────────────────────────

func TestTaskService_GetTask_PassesOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetTask(ctx, int64(9), int64(5)).Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.GetTask(ctx, 9, 5)

	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteTask(ctx, int64(9), int64(5)).Return(nil)

	assert.NoError(t, svc.DeleteTask(ctx, 9, 5))
}

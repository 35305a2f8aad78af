package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	userColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}
	taskColumns = []string{"id", "user_id", "title", "description", "is_completed", "priority", "created_at", "completed_at", "due_date"}

	// taskOrder is the display order of task lists; models.CompareTasks
	// implements the same rule in Go.
	taskOrder = []string{"priority DESC", "due_date ASC NULLS LAST", "created_at DESC", "id ASC"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(user.TableName()).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListTasksQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(taskOrder...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetTaskQuery(b sq.StatementBuilderType, userID, taskID int64) (string, []any, error) {
	query, args, err := b.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	query, args, err := b.Insert(task.TableName()).
		Columns("user_id", "title", "description", "is_completed", "priority", "created_at", "completed_at", "due_date").
		Values(task.UserID, task.Title, task.Description, task.IsCompleted, task.Priority, task.CreatedAt, task.CompletedAt, task.DueDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateTaskQuery writes only the fields present in update. The owner
// check is part of the WHERE clause, so an UPDATE of a foreign task matches
// zero rows.
func buildUpdateTaskQuery(b sq.StatementBuilderType, update models.TaskUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := b.Update(models.Task{}.TableName())

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
	}
	if update.IsCompleted != nil {
		builder = builder.
			Set("is_completed", *update.IsCompleted).
			Set("completed_at", update.CompletedAt)
	}
	if update.DueDate != nil {
		builder = builder.Set("due_date", *update.DueDate)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteTaskQuery(b sq.StatementBuilderType, userID, taskID int64) (string, []any, error) {
	query, args, err := b.Delete(models.Task{}.TableName()).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

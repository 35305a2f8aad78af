package models

import "time"

// DefaultTaskPriority is used when a task is created without a priority.
const DefaultTaskPriority = 1

// Task is a single to-do record owned by exactly one user.
//
// Priority follows the convention 1..5 where 5 is the most urgent; the range
// is documented but not enforced. CompletedAt is set if and only if
// IsCompleted is true.
type Task struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"-"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	Priority    int        `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
	DueDate     *Date      `json:"dueDate"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate is a storage-level partial update of a single task.
// Only non-nil fields are written. When IsCompleted is non-nil the
// completed_at column is written as well, with CompletedAt (nil clears it).
type TaskUpdate struct {
	// ID and UserID identify the record; both are always part of the
	// WHERE clause.
	ID     int64
	UserID int64

	Title       *string
	Description *string
	Priority    *int
	IsCompleted *bool
	CompletedAt *time.Time
	DueDate     *Date
}

// IsEmpty reports whether the update carries no field changes.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.Priority == nil &&
		u.IsCompleted == nil &&
		u.DueDate == nil
}

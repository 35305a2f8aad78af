package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	// Username must be unique across all users. Comparison is case-sensitive.
	Username string `json:"username" validate:"required,max=100"`

	// Password is the plaintext password. It is hashed before storage and
	// never persisted or logged as-is.
	Password string `json:"password" validate:"required,max=256"`

	// Email is an optional contact address.
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=256"`
}

// CreateTaskRequest is the body of POST /todos.
// A nil Priority means [DefaultTaskPriority].
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Priority    *int    `json:"priority,omitempty"`
	DueDate     *Date   `json:"dueDate,omitempty"`
}

// UpdateTaskRequest is the body of PUT /todos/{id}.
// Only non-nil fields are applied (partial update).
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Priority    *int    `json:"priority,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
	DueDate     *Date   `json:"dueDate,omitempty"`
}

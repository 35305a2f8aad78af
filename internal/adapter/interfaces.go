// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the task keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the task keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an existing account. On success the returned token
	// is stored via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// ListTasks returns the tasks of the authenticated user in server order.
	ListTasks(ctx context.Context) ([]models.Task, error)

	GetTask(ctx context.Context, taskID int64) (models.Task, error)
	CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error)

	// UpdateTask sends only the non-nil fields of request.
	UpdateTask(ctx context.Context, taskID int64, request models.UpdateTaskRequest) (models.Task, error)

	DeleteTask(ctx context.Context, taskID int64) error

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// task keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of JSON error bodies. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgRequestBodyTooLarge is returned when the request body exceeds the
	// server limit.
	MsgRequestBodyTooLarge = "request body is too large"

	// MsgInvalidDataProvided is returned when the request body fails
	// validation and no more specific message is available.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for every failed login, whether the
	// username is unknown or the password is wrong.
	MsgInvalidCredentials = "invalid username or password"

	// MsgUsernameAlreadyExists is returned when registration hits a taken
	// username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgUnauthorized is returned for a missing, malformed, expired or
	// otherwise rejected bearer token. The cause is never disclosed.
	MsgUnauthorized = "unauthorized"

	// MsgInvalidTaskID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidTaskID = "invalid task id"

	// MsgTaskNotFound is returned when a task does not exist or belongs to
	// another user.
	MsgTaskNotFound = "task not found"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"

	// MsgMethodNotAllowed is returned when a route exists but not for the
	// requested method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgTooManyRequests is returned when a client exceeds the rate limit of
	// the authentication endpoints.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

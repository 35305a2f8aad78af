// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound auth and task requests before they reach
// the service layer.
//
// [RequestValidator] runs the `validate` struct tags declared on the request
// types in package models through go-playground/validator and reports each
// failing field as one of the sentinel errors in errors.go, so callers can
// match them with [errors.Is] and show the message to the client as is.
package validators

import "context"

// Validator validates a request value. When field names are given, only
// those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

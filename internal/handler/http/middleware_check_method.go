// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// notFound is registered as the router's NotFound handler so that unknown
// routes answer with the same JSON error body as every other failure.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// Chi has already set the Allow header listing the registered methods.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}
	_, _ = utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDFromPath(w, r)
	if !ok {
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), userID, taskID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var request models.CreateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), userID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("task_id", task.ID).Msg("task created")
	w.Header().Set("Location", fmt.Sprintf("/todos/%d", task.ID))
	_, _ = utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDFromPath(w, r)
	if !ok {
		return
	}

	var request models.UpdateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), userID, taskID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("task_id", task.ID).Msg("task updated")
	_, _ = utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.TaskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userID returns the caller stored by the auth middleware.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return 0, false
	}

	return userID, true
}

// taskIDFromPath parses the {id} segment. A non-numeric id is a bad request;
// a non-positive one names a task that cannot exist.
func taskIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	taskID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, app.MsgInvalidTaskID, http.StatusBadRequest)
		return 0, false
	}
	if taskID <= 0 {
		utils.WriteError(w, app.MsgTaskNotFound, http.StatusNotFound)
		return 0, false
	}

	return taskID, true
}

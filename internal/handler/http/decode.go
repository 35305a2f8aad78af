package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// maxRequestBodySize caps every JSON request body. Task and credential
// payloads are a few kilobytes at most.
const maxRequestBodySize = 1 << 20

// decodeJSON reads at most maxRequestBodySize bytes of r.Body into dst.
// On failure it writes the error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	log := logger.FromRequest(r)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Warn().Int64("limit", tooLarge.Limit).Msg("request body is too large")
		utils.WriteError(w, app.MsgRequestBodyTooLarge, http.StatusRequestEntityTooLarge)
		return false
	}

	log.Err(err).Msg("invalid JSON was passed")
	utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
	return false
}

package store

import "github.com/MKhiriev/go-task-keeper/models"

// LocalSessionStorage keeps the last issued token on the client machine so
// that consecutive CLI invocations stay logged in.
type LocalSessionStorage interface {
	// LoadSession returns the saved session or [ErrLocalSessionNotFound].
	LoadSession() (models.AuthResponse, error)
	SaveSession(session models.AuthResponse) error
	// ClearSession removes the saved session. Clearing a missing session is
	// not an error.
	ClearSession() error
}

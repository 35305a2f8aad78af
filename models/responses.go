package models

import "time"

// AuthResponse is returned by both registration and login.
type AuthResponse struct {
	// Token is the signed bearer token the client sends back in the
	// Authorization header.
	Token string `json:"token"`

	// Username echoes the authenticated username.
	Username string `json:"username"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"expiresAt"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

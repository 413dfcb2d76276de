package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type contextKey string

const contextIdentityKey contextKey = "identity"

// AuthPayload is the verified identity attached to a request by the auth
// middleware: the internal account id plus the login handle.
type AuthPayload struct {
	ID     uuid.UUID
	UserID string
}

func identityFromContext(ctx context.Context) (AuthPayload, error) {
	identity, ok := ctx.Value(contextIdentityKey).(AuthPayload)
	if !ok || identity.ID == uuid.Nil {
		return AuthPayload{}, errors.New("missing identity")
	}
	return identity, nil
}

// APIResponse is the uniform envelope every endpoint responds with.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, APIResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Success: false, Error: message})
}

// parseIDParam reads a UUID route parameter. An unparseable id is reported
// as an error so callers can collapse it into their not-found response.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

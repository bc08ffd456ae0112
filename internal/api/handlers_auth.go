/**
 * @description
 * HTTP handlers for the authentication endpoints: credential login issuing a
 * bearer token, and standalone token validation.
 */

package api

import (
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type authCheckRequest struct {
	Token string `json:"token"`
}

type authCheckResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

// LoginHandler exchanges a username and password for a signed bearer token.
func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, "login", err)
		return
	}
	h.writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token})
}

// AuthCheckHandler validates a previously issued token and returns the
// username it was issued to.
func (h *Handlers) AuthCheckHandler(w http.ResponseWriter, r *http.Request) {
	var req authCheckRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username, err := h.auth.ValidateToken(req.Token)
	if err != nil {
		h.writeServiceError(w, "auth_check", err)
		return
	}
	h.writeJSON(w, http.StatusOK, authCheckResponse{Success: true, Username: username})
}

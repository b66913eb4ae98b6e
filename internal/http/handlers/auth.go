package handlers

import (
	"errors"
	"net/http"
	"strings"

	"society/internal/auth"
	"society/internal/domain"
	"society/internal/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type meResponse struct {
	userDTO
	TokenExpiresAt int64 `json:"token_expires_at,omitempty"`
}

type loginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expires_at"`
	User      userDTO `json:"user"`
}

// Login checks email and password and returns a bearer token. Unknown
// accounts and wrong passwords get the same answer.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decode(w, r, &req) {
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email and password are required")
		return
	}
	u, err := a.Users.GetByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		a.fail(w, r, err, "sign in")
		return
	}
	if u == nil || !auth.VerifyPassword(u.PasswordHash, req.Password) {
		a.Logger.Warn().Str("email", email).Msg("failed sign in")
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}
	token, exp, err := middleware.IssueToken(a.JWTSecret, u.ID, u.Email, u.IsAdmin, a.JWTTTL)
	if err != nil {
		a.fail(w, r, err, "sign token")
		return
	}
	a.json(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: exp.Unix(), User: newUserDTO(u)})
}

// Me returns the signed-in profile and when the presented token expires.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	u, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "user no longer exists")
			return
		}
		a.fail(w, r, err, "load profile")
		return
	}
	resp := meResponse{userDTO: newUserDTO(u)}
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		resp.TokenExpiresAt = claims.Exp
	}
	a.json(w, http.StatusOK, resp)
}

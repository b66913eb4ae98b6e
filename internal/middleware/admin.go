package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"society/internal/domain"
)

// AdminLookup reports whether a user currently holds admin access.
type AdminLookup interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// AdminLookupFunc adapts a function to AdminLookup.
type AdminLookupFunc func(ctx context.Context, userID string) (bool, error)

func (f AdminLookupFunc) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return f(ctx, userID)
}

// UserAdminLookup checks the is_admin flag of the user's profile row.
func UserAdminLookup(users domain.UserRepository) AdminLookup {
	return AdminLookupFunc(func(ctx context.Context, userID string) (bool, error) {
		u, err := users.GetByID(ctx, userID)
		if err != nil {
			return false, err
		}
		return u.IsAdmin, nil
	})
}

// RequireAdmin gates a route tree on the caller's profile. It must run after
// AuthJWT and looks the flag up on every request, so revoking admin access
// takes effect immediately.
func RequireAdmin(lookup AdminLookup, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := UserIDFromContext(r.Context())
			if userID == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing user")
				return
			}
			ok, err := lookup.IsAdmin(r.Context(), userID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				writeError(w, http.StatusUnauthorized, "unauthorized", "user no longer exists")
				return
			case err != nil:
				logger.Error().Err(err).Str("user_id", userID).Msg("admin lookup failed")
				writeError(w, http.StatusInternalServerError, "internal", "admin lookup failed: "+err.Error())
				return
			case !ok:
				writeError(w, http.StatusForbidden, "forbidden", "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"society/internal/domain"
	"society/internal/middleware"
	"society/internal/service"
	"society/internal/team"
)

const (
	defaultMaxUpload = 10 << 20
	maxJSONBody      = 1 << 20
)

// ProgramService is the program behaviour the handlers rely on.
type ProgramService interface {
	List(ctx context.Context, filter domain.ProgramFilter) ([]service.ProgramSummary, error)
	Detail(ctx context.Context, id string) (*service.ProgramDetail, error)
	AdminDetail(ctx context.Context, id string) (*service.ProgramDetail, error)
	Save(ctx context.Context, p *domain.Program) error
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, programID, filename string, data []byte, feature bool) (*domain.ProgramImage, error)
	DeleteImage(ctx context.Context, id string) error
}

type DonationService interface {
	Submit(ctx context.Context, in service.DonationInput) (*domain.Donation, error)
	History(ctx context.Context) (*service.DonationHistory, error)
	AdminList(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, service.DonationCounts, error)
	SetStatus(ctx context.Context, id string, status domain.DonationStatus) error
}

type TeamService interface {
	DefaultYear() string
	Chart(ctx context.Context, year string) (team.Hierarchy, error)
	Save(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, filename string, data []byte) (string, error)
}

type DashboardService interface {
	Summary(ctx context.Context) (domain.DashboardTotals, error)
}

// Pinger reports database reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App bundles the dependencies shared by every handler.
type App struct {
	Logger    zerolog.Logger
	JWTSecret string
	JWTTTL    time.Duration
	MaxUpload int64

	Programs  ProgramService
	Donations DonationService
	Team      TeamService
	Dashboard DashboardService

	Catalog  domain.CatalogRepository
	Expenses domain.ExpenseRepository
	TeamRepo domain.TeamRepository
	Users    domain.UserRepository
	Store    service.ObjectStore
	DB       Pinger
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, msg string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": msg},
	})
}

// fail maps a domain error to its HTTP response. Unexpected errors are
// logged and returned with the backend message appended.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", action+": not found")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrConflict):
		a.error(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("path", r.URL.Path).
			Msg(action + " failed")
		a.error(w, http.StatusInternalServerError, "internal", action+" failed: "+err.Error())
	}
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload: "+err.Error())
		return false
	}
	return true
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// idParam reads a uuid URL parameter. Malformed ids answer 404 like missing
// records do.
func (a *App) idParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "not found")
		return "", false
	}
	return id.String(), true
}

// optionalID validates an optional uuid query value.
func (a *App) optionalID(w http.ResponseWriter, raw, field string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", field+" must be a uuid")
		return "", false
	}
	return id.String(), true
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func (a *App) maxUpload() int64 {
	if a.MaxUpload > 0 {
		return a.MaxUpload
	}
	return defaultMaxUpload
}

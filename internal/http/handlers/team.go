package handlers

import (
	"net/http"
	"strings"

	"society/internal/domain"
	"society/internal/team"
)

type teamMemberRequest struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Year         string `json:"year"`
	DisplayOrder int    `json:"display_order"`
	ImageURL     string `json:"image_url"`
}

func (req teamMemberRequest) toMember() *domain.TeamMember {
	return &domain.TeamMember{
		Name:         req.Name,
		Position:     req.Position,
		Year:         req.Year,
		DisplayOrder: req.DisplayOrder,
		ImageURL:     strings.TrimSpace(req.ImageURL),
	}
}

// TeamChart serves the org chart of a committee year.
func (a *App) TeamChart(w http.ResponseWriter, r *http.Request) {
	year := strings.TrimSpace(r.URL.Query().Get("year"))
	if year == "" {
		year = a.Team.DefaultYear()
	}
	h, err := a.Team.Chart(r.Context(), year)
	if err != nil {
		a.fail(w, r, err, "load team")
		return
	}
	a.json(w, http.StatusOK, newTeamChartDTO(year, h))
}

// AdminListTeam lists members of every year, newest year first.
func (a *App) AdminListTeam(w http.ResponseWriter, r *http.Request) {
	items, err := a.TeamRepo.List(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		a.fail(w, r, err, "load team")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": newTeamMembersDTO(items)})
}

func (a *App) AdminCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req teamMemberRequest
	if !a.decode(w, r, &req) {
		return
	}
	m := req.toMember()
	if err := a.Team.Save(r.Context(), m); err != nil {
		a.fail(w, r, err, "create team member")
		return
	}
	a.json(w, http.StatusCreated, newTeamMemberDTO(*m))
}

func (a *App) AdminUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	var req teamMemberRequest
	if !a.decode(w, r, &req) {
		return
	}
	m := req.toMember()
	m.ID = id
	if err := a.Team.Save(r.Context(), m); err != nil {
		a.fail(w, r, err, "update team member")
		return
	}
	a.json(w, http.StatusOK, newTeamMemberDTO(*m))
}

func (a *App) AdminDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Team.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "delete team member")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) AdminUploadTeamPhoto(w http.ResponseWriter, r *http.Request) {
	upload, ok := a.readUpload(w, r, "file")
	if !ok {
		return
	}
	url, err := a.Team.UploadPhoto(r.Context(), upload.filename, upload.data)
	if err != nil {
		a.fail(w, r, err, "upload photo")
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"url": url})
}

// AdminTeamPositions lists the accepted positions in tier order.
func (a *App) AdminTeamPositions(w http.ResponseWriter, r *http.Request) {
	type positionDTO struct {
		Title string `json:"title"`
		Tier  int    `json:"tier"`
	}
	positions := team.Positions()
	out := make([]positionDTO, 0, len(positions))
	for _, p := range positions {
		out = append(out, positionDTO{Title: p, Tier: int(team.TierOf(p))})
	}
	a.json(w, http.StatusOK, map[string]any{"items": out, "default_year": a.Team.DefaultYear()})
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"society/internal/domain"
	"society/internal/middleware"
	"society/internal/money"
)

const maxProgramLimit = 100

type programRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	FundingGoal string `json:"funding_goal"`
	Status      string `json:"status"`
}

func (req programRequest) toProgram() (*domain.Program, error) {
	p := &domain.Program{
		Title:       req.Title,
		Category:    domain.ProgramCategory(strings.ToLower(strings.TrimSpace(req.Category))),
		Description: strings.TrimSpace(req.Description),
		Location:    req.Location,
		Status:      domain.ProgramStatus(strings.ToLower(strings.TrimSpace(req.Status))),
	}
	if p.Status == "" {
		p.Status = domain.ProgramStatusDraft
	}
	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, invalidf("date must be YYYY-MM-DD")
		}
		p.Date = date
	}
	goal, ok, err := money.Parse(req.FundingGoal)
	if err != nil {
		return nil, invalidf("funding_goal must be a number")
	}
	if ok {
		p.FundingGoal = &goal
	}
	return p, nil
}

// ListPrograms serves published programs, optionally by category.
func (a *App) ListPrograms(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProgramFilter{
		Category: domain.ProgramCategory(strings.ToLower(r.URL.Query().Get("category"))),
		Status:   domain.ProgramStatusPublished,
		Limit:    min(queryInt(r, "limit", 0), maxProgramLimit),
	}
	if filter.Category != "" && !filter.Category.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown category")
		return
	}
	a.listPrograms(w, r, filter)
}

func (a *App) GetProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	detail, err := a.Programs.Detail(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "load program")
		return
	}
	a.json(w, http.StatusOK, newProgramDetailDTO(detail, middleware.TagFromContext(r.Context())))
}

// AdminListPrograms lists every program, drafts included.
func (a *App) AdminListPrograms(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProgramFilter{
		Category: domain.ProgramCategory(r.URL.Query().Get("category")),
		Status:   domain.ProgramStatus(r.URL.Query().Get("status")),
	}
	a.listPrograms(w, r, filter)
}

func (a *App) listPrograms(w http.ResponseWriter, r *http.Request, filter domain.ProgramFilter) {
	items, err := a.Programs.List(r.Context(), filter)
	if err != nil {
		a.fail(w, r, err, "load programs")
		return
	}
	tag := middleware.TagFromContext(r.Context())
	out := make([]programSummaryDTO, 0, len(items))
	for i := range items {
		out = append(out, programSummaryDTO{
			programDTO:   newProgramDTO(items[i].Program, tag),
			FeatureImage: newImageDTO(items[i].FeatureImage),
			Funding:      newFundingDTO(items[i].Funding, tag),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

func (a *App) AdminGetProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	detail, err := a.Programs.AdminDetail(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "load program")
		return
	}
	a.json(w, http.StatusOK, newProgramDetailDTO(detail, middleware.TagFromContext(r.Context())))
}

func (a *App) AdminCreateProgram(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if !a.decode(w, r, &req) {
		return
	}
	p, err := req.toProgram()
	if err != nil {
		a.fail(w, r, err, "create program")
		return
	}
	if err := a.Programs.Save(r.Context(), p); err != nil {
		a.fail(w, r, err, "create program")
		return
	}
	a.json(w, http.StatusCreated, newProgramDTO(*p, middleware.TagFromContext(r.Context())))
}

func (a *App) AdminUpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	var req programRequest
	if !a.decode(w, r, &req) {
		return
	}
	p, err := req.toProgram()
	if err != nil {
		a.fail(w, r, err, "update program")
		return
	}
	p.ID = id
	if err := a.Programs.Save(r.Context(), p); err != nil {
		a.fail(w, r, err, "update program")
		return
	}
	a.json(w, http.StatusOK, newProgramDTO(*p, middleware.TagFromContext(r.Context())))
}

func (a *App) AdminDeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Programs.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "delete program")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminUploadProgramImage accepts a multipart "file". feature=true replaces
// the feature image, otherwise the image joins the gallery.
func (a *App) AdminUploadProgramImage(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	upload, ok := a.readUpload(w, r, "file")
	if !ok {
		return
	}
	feature := strings.EqualFold(r.FormValue("feature"), "true")
	img, err := a.Programs.AddImage(r.Context(), id, upload.filename, upload.data, feature)
	if err != nil {
		a.fail(w, r, err, "upload image")
		return
	}
	a.json(w, http.StatusCreated, newImageDTO(img))
}

func (a *App) AdminDeleteProgramImage(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Programs.DeleteImage(r.Context(), id); err != nil {
		a.fail(w, r, err, "delete image")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

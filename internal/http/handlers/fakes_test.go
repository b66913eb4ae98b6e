package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"society/internal/domain"
	"society/internal/service"
	"society/internal/team"
)

type fakePrograms struct {
	details map[string]*service.ProgramDetail
	saved   []*domain.Program
	err     error
}

func (f *fakePrograms) List(context.Context, domain.ProgramFilter) ([]service.ProgramSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]service.ProgramSummary, 0, len(f.details))
	for _, d := range f.details {
		out = append(out, service.ProgramSummary{Program: d.Program, FeatureImage: d.FeatureImage, Funding: d.Funding})
	}
	return out, nil
}

func (f *fakePrograms) Detail(_ context.Context, id string) (*service.ProgramDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.details[id]
	if !ok || d.Program.Status != domain.ProgramStatusPublished {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (f *fakePrograms) AdminDetail(_ context.Context, id string) (*service.ProgramDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (f *fakePrograms) Save(_ context.Context, p *domain.Program) error {
	if f.err != nil {
		return f.err
	}
	if p.ID == "" {
		p.ID = "7d1c3a52-1b1e-4c55-9f43-0c8a3e6b2f10"
	}
	f.saved = append(f.saved, p)
	return nil
}

func (f *fakePrograms) Delete(context.Context, string) error { return f.err }

func (f *fakePrograms) AddImage(_ context.Context, programID, filename string, _ []byte, feature bool) (*domain.ProgramImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	order := 1
	if feature {
		order = domain.FeatureImageOrder
	}
	return &domain.ProgramImage{ID: "img-1", ProgramID: programID, ImageURL: "/static/" + filename, DisplayOrder: order}, nil
}

func (f *fakePrograms) DeleteImage(context.Context, string) error { return f.err }

type fakeDonations struct {
	submitted []service.DonationInput
	history   *service.DonationHistory
	err       error
}

func (f *fakeDonations) Submit(_ context.Context, in service.DonationInput) (*domain.Donation, error) {
	f.submitted = append(f.submitted, in)
	if f.err != nil {
		return nil, f.err
	}
	d := &domain.Donation{
		ID:           "5b0c2f8e-8d43-4f0a-a3f3-52f7c2d4f0a1",
		DonorName:    in.DonorName,
		DonorContact: in.DonorContact,
		DonorCountry: in.DonorCountry,
		ProgramID:    in.ProgramID,
		Type:         in.Type,
		Status:       domain.DonationStatusPending,
	}
	for _, it := range in.Items {
		d.Items = append(d.Items, domain.DonationItem{GoodsItemID: it.GoodsItemID, Quantity: it.Quantity})
	}
	return d, nil
}

func (f *fakeDonations) History(context.Context) (*service.DonationHistory, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func (f *fakeDonations) AdminList(_ context.Context, status domain.DonationStatus) ([]domain.Donation, service.DonationCounts, error) {
	if status != "" && !status.Valid() {
		return nil, service.DonationCounts{}, domain.ErrInvalidInput
	}
	return nil, service.DonationCounts{}, f.err
}

func (f *fakeDonations) SetStatus(_ context.Context, _ string, status domain.DonationStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidInput
	}
	return f.err
}

type fakeTeam struct {
	year    string
	members []domain.TeamMember
	asked   string
}

func (f *fakeTeam) DefaultYear() string { return f.year }

func (f *fakeTeam) Chart(_ context.Context, year string) (team.Hierarchy, error) {
	f.asked = year
	var in []domain.TeamMember
	for _, m := range f.members {
		if m.Year == year {
			in = append(in, m)
		}
	}
	return team.Group(in), nil
}

func (f *fakeTeam) Save(_ context.Context, m *domain.TeamMember) error {
	canonical, ok := team.CanonicalPosition(m.Position)
	if !ok {
		return domain.ErrInvalidInput
	}
	m.Position = canonical
	m.ID = "member-1"
	return nil
}

func (f *fakeTeam) Delete(context.Context, string) error { return nil }

func (f *fakeTeam) UploadPhoto(_ context.Context, filename string, _ []byte) (string, error) {
	return "http://localhost/static/team/" + filename, nil
}

type fakeUsers struct {
	byEmail map[string]*domain.User
	err     error
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsers) Create(context.Context, *domain.User) error   { return nil }
func (f *fakeUsers) SetAdmin(context.Context, string, bool) error { return nil }

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestApp() *App {
	return &App{
		Logger:    zerolog.Nop(),
		JWTSecret: "test-secret",
		Programs:  &fakePrograms{details: map[string]*service.ProgramDetail{}},
		Donations: &fakeDonations{},
		Team:      &fakeTeam{year: "2025/26"},
		Users:     &fakeUsers{byEmail: map[string]*domain.User{}},
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"society/internal/auth"
	"society/internal/domain"
	"society/internal/middleware"
	"society/internal/progress"
	"society/internal/service"
)

const (
	programID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	itemID    = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	payload := decodeBody(t, rr)
	e, ok := payload["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error envelope, got %#v", payload)
	}
	return e["code"].(string)
}

func TestSubmitDonation_RecordsCountryFromRequest(t *testing.T) {
	app := newTestApp()
	donations := app.Donations.(*fakeDonations)

	body := fmt.Sprintf(`{"donor_name":"Nimal","donor_contact":"0771234567","program_id":%q,"donation_type":"Money","amount":"5,000"}`, programID)
	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(body))
	req.Header.Set("CF-IPCountry", "lk")
	rr := httptest.NewRecorder()

	middleware.I18N("en", nil)(http.HandlerFunc(app.SubmitDonation)).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got %d, want 201 (%s)", rr.Code, rr.Body.String())
	}
	if len(donations.submitted) != 1 {
		t.Fatalf("expected one submission, got %d", len(donations.submitted))
	}
	in := donations.submitted[0]
	if in.DonorCountry != "LK" {
		t.Fatalf("expected donor country LK, got %q", in.DonorCountry)
	}
	if in.Type != domain.DonationTypeMoney {
		t.Fatalf("expected type to be normalised to money, got %q", in.Type)
	}
	if in.Amount != "5,000" {
		t.Fatalf("expected raw amount to reach the service, got %q", in.Amount)
	}

	payload := decodeBody(t, rr)
	if payload["status"] != string(domain.DonationStatusPending) {
		t.Fatalf("expected Pending status, got %#v", payload["status"])
	}
	if _, ok := payload["donor_contact"]; ok {
		t.Fatalf("public response must not echo donor contact: %#v", payload)
	}
}

func TestSubmitDonation_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		svcErr  error
		want    int
		wantErr string
	}{
		{name: "malformed program id", body: `{"donor_name":"A","program_id":"abc","donation_type":"money","amount":"10"}`, want: http.StatusBadRequest, wantErr: "bad_request"},
		{name: "malformed item id", body: fmt.Sprintf(`{"donor_name":"A","program_id":%q,"donation_type":"goods","items":[{"goods_item_id":"x","quantity":"2"}]}`, programID), want: http.StatusBadRequest, wantErr: "bad_request"},
		{name: "unknown field", body: `{"donor":"A"}`, want: http.StatusBadRequest, wantErr: "bad_request"},
		{name: "unparseable quantity", body: fmt.Sprintf(`{"donor_name":"A","program_id":%q,"donation_type":"goods","items":[{"goods_item_id":%q,"quantity":"a few"}]}`, programID, itemID), svcErr: fmt.Errorf("%w: a few", domain.ErrInvalidQuantity), want: http.StatusBadRequest, wantErr: "bad_request"},
		{name: "program gone", body: fmt.Sprintf(`{"donor_name":"A","program_id":%q,"donation_type":"money","amount":"10"}`, programID), svcErr: domain.ErrNotFound, want: http.StatusNotFound, wantErr: "not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp()
			app.Donations.(*fakeDonations).err = tc.svcErr

			req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			app.SubmitDonation(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("unexpected status: got %d, want %d (%s)", rr.Code, tc.want, rr.Body.String())
			}
			if code := errorCode(t, rr); code != tc.wantErr {
				t.Fatalf("unexpected error code: got %q, want %q", code, tc.wantErr)
			}
		})
	}
}

func TestGetProgram_MalformedAndDraftIDsAreNotFound(t *testing.T) {
	app := newTestApp()
	app.Programs.(*fakePrograms).details[programID] = &service.ProgramDetail{
		Program: domain.Program{ID: programID, Title: "Book drive", Category: domain.ProgramCategoryCharity, Status: domain.ProgramStatusDraft},
	}

	for _, id := range []string{"not-a-uuid", programID} {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/programs/"+id, nil), "id", id)
		rr := httptest.NewRecorder()
		app.GetProgram(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("id %q: unexpected status: got %d, want 404", id, rr.Code)
		}
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/admin/programs/"+programID, nil), "id", programID)
	rr := httptest.NewRecorder()
	app.AdminGetProgram(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin should see drafts: got %d", rr.Code)
	}
}

func TestGetProgram_FundingAndGoodsProgress(t *testing.T) {
	goal := decimal.NewFromInt(100000)
	remaining := decimal.NewFromInt(90000)
	app := newTestApp()
	app.Programs.(*fakePrograms).details[programID] = &service.ProgramDetail{
		Program: domain.Program{
			ID:          programID,
			Title:       "School supplies",
			Category:    domain.ProgramCategoryCharity,
			Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			FundingGoal: &goal,
			Status:      domain.ProgramStatusPublished,
		},
		FeatureImage: &domain.ProgramImage{ID: "img-0", ImageURL: "http://cdn/feature.jpg"},
		Funding: &service.FundingSummary{
			Goal:          &goal,
			Raised:        decimal.NewFromInt(50000),
			Expenses:      decimal.NewFromInt(10000),
			Remaining:     &remaining,
			Percentage:    50,
			DonationCount: 3,
		},
		Goods: []progress.ItemProgress{{ItemID: itemID, ItemName: "Exercise books", Required: "100", RequiredValid: true, Collected: 40, Percentage: 40}},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/programs/"+programID, nil), "id", programID)
	rr := httptest.NewRecorder()
	app.GetProgram(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d (%s)", rr.Code, rr.Body.String())
	}
	payload := decodeBody(t, rr)
	if payload["date"] != "2025-03-01" {
		t.Fatalf("unexpected date: %#v", payload["date"])
	}
	funding := payload["funding"].(map[string]any)
	if funding["percentage"].(float64) != 50 {
		t.Fatalf("unexpected percentage: %#v", funding["percentage"])
	}
	raised := funding["raised"].(map[string]any)
	if raised["value"] != "50000" {
		t.Fatalf("unexpected raised value: %#v", raised["value"])
	}
	goods := payload["goods_progress"].([]any)
	if len(goods) != 1 || goods[0].(map[string]any)["collected"].(float64) != 40 {
		t.Fatalf("unexpected goods progress: %#v", goods)
	}
}

func TestListPrograms_RejectsUnknownCategory(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/v1/programs?category=festival", nil)
	rr := httptest.NewRecorder()
	app.ListPrograms(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d, want 400", rr.Code)
	}
}

func TestAdminCreateProgram_ValidatesDate(t *testing.T) {
	app := newTestApp()
	body := `{"title":"Run","category":"event","date":"01/03/2025"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/programs", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.AdminCreateProgram(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d, want 400", rr.Code)
	}
	if n := len(app.Programs.(*fakePrograms).saved); n != 0 {
		t.Fatalf("expected nothing saved, got %d", n)
	}
}

func TestAdminUploadProgramImage(t *testing.T) {
	app := newTestApp()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "cover.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write([]byte("jpeg-bytes"))
	_ = mw.WriteField("feature", "true")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/programs/"+programID+"/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = withURLParam(req, "id", programID)
	rr := httptest.NewRecorder()
	app.AdminUploadProgramImage(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got %d (%s)", rr.Code, rr.Body.String())
	}
	payload := decodeBody(t, rr)
	if payload["display_order"].(float64) != float64(domain.FeatureImageOrder) {
		t.Fatalf("expected feature image order, got %#v", payload["display_order"])
	}
}

func TestAdminUploadProgramImage_TooLarge(t *testing.T) {
	app := newTestApp()
	app.MaxUpload = 8

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "big.jpg")
	_, _ = part.Write(bytes.Repeat([]byte("x"), 64))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = withURLParam(req, "id", programID)
	rr := httptest.NewRecorder()
	app.AdminUploadProgramImage(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("unexpected status: got %d, want 413", rr.Code)
	}
}

func TestTeamChart_DefaultYearAndTiers(t *testing.T) {
	app := newTestApp()
	app.Team.(*fakeTeam).members = []domain.TeamMember{
		{ID: "1", Name: "Kamal", Position: "President", Year: "2025/26"},
		{ID: "2", Name: "Sunil", Position: "Senior Treasurer", Year: "2025/26"},
		{ID: "3", Name: "Ruwan", Position: "Mascot", Year: "2025/26"},
		{ID: "4", Name: "Old", Position: "President", Year: "2024/25"},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/team", nil)
	rr := httptest.NewRecorder()
	app.TeamChart(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}
	if asked := app.Team.(*fakeTeam).asked; asked != "2025/26" {
		t.Fatalf("expected default year, got %q", asked)
	}

	var chart teamChartDTO
	if err := json.NewDecoder(rr.Body).Decode(&chart); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(chart.Tiers) != 4 {
		t.Fatalf("expected 4 tiers, got %d", len(chart.Tiers))
	}
	if len(chart.Tiers[0].Members) != 1 || chart.Tiers[0].Members[0].Name != "Sunil" {
		t.Fatalf("unexpected patron tier: %#v", chart.Tiers[0])
	}
	if len(chart.Tiers[1].Members) != 1 || chart.Tiers[1].Members[0].Name != "Kamal" {
		t.Fatalf("unexpected executive tier: %#v", chart.Tiers[1])
	}
	if len(chart.Unassigned) != 1 || chart.Unassigned[0].Name != "Ruwan" {
		t.Fatalf("unknown positions belong in unassigned: %#v", chart.Unassigned)
	}
}

func TestAdminCreateTeamMember_RejectsUnknownPosition(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/team", strings.NewReader(`{"name":"X","position":"Mascot"}`))
	rr := httptest.NewRecorder()
	app.AdminCreateTeamMember(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d, want 400", rr.Code)
	}
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	app := newTestApp()
	app.JWTTTL = time.Hour
	app.Users.(*fakeUsers).byEmail["admin@society.lk"] = &domain.User{ID: "u-1", Email: "admin@society.lk", IsAdmin: true, PasswordHash: hash}

	login := func(email, password string) *httptest.ResponseRecorder {
		body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
		rr := httptest.NewRecorder()
		app.Login(rr, httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body)))
		return rr
	}

	rr := login("admin@society.lk", "correct horse")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d (%s)", rr.Code, rr.Body.String())
	}
	var resp loginResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	claims, err := middleware.VerifyJWT("test-secret", resp.Token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Sub != "u-1" || !claims.Admin {
		t.Fatalf("unexpected claims: %#v", claims)
	}

	wrong := login("admin@society.lk", "wrong password")
	unknown := login("nobody@society.lk", "correct horse")
	if wrong.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", wrong.Code, unknown.Code)
	}
	if wrong.Body.String() != unknown.Body.String() {
		t.Fatalf("unknown account and wrong password must answer alike: %q vs %q", wrong.Body.String(), unknown.Body.String())
	}
}

func TestFail_UnexpectedErrorAppendsMessage(t *testing.T) {
	app := newTestApp()
	rr := httptest.NewRecorder()
	app.fail(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("connection reset"), "load programs")

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "load programs failed: connection reset") {
		t.Fatalf("expected backend message in body, got %s", rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp()
	app.DB = fakePinger{}
	rr := httptest.NewRecorder()
	app.Health(rr, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}

	app.DB = fakePinger{err: errors.New("down")}
	rr = httptest.NewRecorder()
	app.Health(rr, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: got %d, want 503", rr.Code)
	}
}

func TestOpenAPIJSON_Revalidates(t *testing.T) {
	app := newTestApp()
	rr := httptest.NewRecorder()
	app.OpenAPIJSON(rr, httptest.NewRequest(http.MethodGet, "/v1/openapi.json", nil))
	if rr.Code != http.StatusOK || !json.Valid(rr.Body.Bytes()) {
		t.Fatalf("expected valid JSON document, got %d", rr.Code)
	}
	etag := rr.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/openapi.json", nil)
	req.Header.Set("If-None-Match", etag)
	rr = httptest.NewRecorder()
	app.OpenAPIJSON(rr, req)
	if rr.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rr.Code)
	}
}

func TestAdminCreateRequirement_RejectsNonNumericQuantity(t *testing.T) {
	app := newTestApp()
	body := fmt.Sprintf(`{"goods_item_id":%q,"required_quantity":"plenty"}`, itemID)
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), "id", programID)
	rr := httptest.NewRecorder()
	app.AdminCreateRequirement(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d, want 400 (%s)", rr.Code, rr.Body.String())
	}
}

func TestValidateGoodsItem(t *testing.T) {
	cases := []struct {
		item    domain.GoodsItem
		wantErr bool
	}{
		{item: domain.GoodsItem{Name: "Rice", RequiredQuantity: "10 kg"}},
		{item: domain.GoodsItem{Name: "Pens"}},
		{item: domain.GoodsItem{Name: "Soap", RequiredQuantity: "some"}, wantErr: true},
		{item: domain.GoodsItem{RequiredQuantity: "3"}, wantErr: true},
	}
	for _, tc := range cases {
		err := validateGoodsItem(&tc.item)
		if (err != nil) != tc.wantErr {
			t.Fatalf("validateGoodsItem(%+v) error = %v, wantErr %v", tc.item, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	}
}

func TestMe_ReportsProfileAndTokenExpiry(t *testing.T) {
	app := newTestApp()
	app.Users.(*fakeUsers).byEmail["member@society.lk"] = &domain.User{ID: "u-2", Email: "member@society.lk", FullName: "Member"}

	token, exp, err := middleware.IssueToken("test-secret", "u-2", "member@society.lk", false, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	middleware.AuthJWT("test-secret")(http.HandlerFunc(app.Me)).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d (%s)", rr.Code, rr.Body.String())
	}
	payload := decodeBody(t, rr)
	if payload["email"] != "member@society.lk" || payload["is_admin"] != false {
		t.Fatalf("unexpected profile: %#v", payload)
	}
	if got := int64(payload["token_expires_at"].(float64)); got != exp.Unix() {
		t.Fatalf("token_expires_at = %d, want %d", got, exp.Unix())
	}
}

func TestMe_UnknownUserIsUnauthorized(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "gone"))
	rr := httptest.NewRecorder()
	app.Me(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d, want 401", rr.Code)
	}
}

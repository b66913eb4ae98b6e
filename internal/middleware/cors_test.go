package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	tests := []struct {
		name      string
		allowed   []string
		origin    string
		preflight bool
		wantCode  int
		wantAllow string
		wantCreds string
	}{
		{name: "listed origin", allowed: []string{"https://society.lk/"}, origin: "https://society.lk", wantCode: http.StatusTeapot, wantAllow: "https://society.lk", wantCreds: "true"},
		{name: "unlisted origin", allowed: []string{"https://society.lk"}, origin: "https://evil.example", wantCode: http.StatusTeapot},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://any.example", wantCode: http.StatusTeapot, wantAllow: "*"},
		{name: "preflight", allowed: []string{"https://admin.society.lk"}, origin: "https://admin.society.lk", preflight: true, wantCode: http.StatusNoContent, wantAllow: "https://admin.society.lk", wantCreds: "true"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			method := http.MethodGet
			if tc.preflight {
				method = http.MethodOptions
			}
			req := httptest.NewRequest(method, "/v1/programs", nil)
			req.Header.Set("Origin", tc.origin)
			if tc.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rr := httptest.NewRecorder()
			CORS(tc.allowed)(next).ServeHTTP(rr, req)

			if rr.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantCode)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.wantAllow {
				t.Fatalf("allow origin = %q, want %q", got, tc.wantAllow)
			}
			if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != tc.wantCreds {
				t.Fatalf("allow credentials = %q, want %q", got, tc.wantCreds)
			}
			if tc.preflight && rr.Header().Get("Access-Control-Allow-Methods") == "" {
				t.Fatalf("preflight missing allowed methods")
			}
		})
	}
}

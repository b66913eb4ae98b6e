package infra

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestExtractMarker(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantMarker string
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "valid marker",
			query:      "--sql 0f0557a2-1731-4fc6-8cbe-8540b1d2b6df\nselect 1;\n",
			wantMarker: "0f0557a2-1731-4fc6-8cbe-8540b1d2b6df",
			wantBody:   "select 1;",
		},
		{
			name:       "leading whitespace tolerated",
			query:      "\n  --sql 0f0557a2-1731-4fc6-8cbe-8540b1d2b6df\nselect 1;",
			wantMarker: "0f0557a2-1731-4fc6-8cbe-8540b1d2b6df",
			wantBody:   "select 1;",
		},
		{name: "missing marker", query: "select 1;", wantErr: true},
		{name: "uppercase uuid rejected", query: "--sql 0F0557A2-1731-4FC6-8CBE-8540B1D2B6DF\nselect 1;", wantErr: true},
		{name: "empty", query: "   ", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			marker, body, err := extractMarker(tc.query)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("extractMarker() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("extractMarker() unexpected error: %v", err)
			}
			if marker != tc.wantMarker {
				t.Fatalf("marker = %q, want %q", marker, tc.wantMarker)
			}
			if body != tc.wantBody {
				t.Fatalf("body = %q, want %q", body, tc.wantBody)
			}
		})
	}
}

func TestSQLRunnerRejectsUnmarkedQueries(t *testing.T) {
	r := &SQLRunner{logger: zerolog.Nop()}
	if _, err := r.Exec(context.Background(), "delete from programs"); err == nil {
		t.Fatalf("Exec() expected marker error")
	}
	if _, err := r.Query(context.Background(), "select 1"); err == nil {
		t.Fatalf("Query() expected marker error")
	}
	var n int
	if err := r.QueryRow(context.Background(), "select 1").Scan(&n); err == nil {
		t.Fatalf("QueryRow().Scan() expected marker error")
	}
}

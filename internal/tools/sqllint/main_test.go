package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const markedFile = "package q\n\nconst QOne = `--sql 6f1c3b52-0f4e-4f0c-9a3b-2d5e7c8a9b10\nselect 1;\n`\n"

func TestLintFile(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		issues int
	}{
		{name: "marked", src: markedFile, issues: 0},
		{name: "missing marker", src: "package q\n\nconst QTwo = `select id from programs`\n", issues: 1},
		{name: "malformed uuid", src: "package q\n\nconst QThree = `--sql not-a-uuid\ndelete from team_members`\n", issues: 1},
		{name: "not sql", src: "package q\n\nconst Greeting = \"hello there\"\n", issues: 0},
		{name: "interpreted string", src: "package q\n\nvar QFour = \"update users set is_admin = true\"\n", issues: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newLinter()
			if err := l.lintFile("q.go", tc.src); err != nil {
				t.Fatalf("lint: %v", err)
			}
			if len(l.violations) != tc.issues {
				t.Fatalf("expected %d violations, got %d: %v", tc.issues, len(l.violations), l.violations)
			}
		})
	}
}

func TestDuplicateMarkersAcrossFiles(t *testing.T) {
	l := newLinter()
	if err := l.lintFile("a.go", markedFile); err != nil {
		t.Fatalf("lint a: %v", err)
	}
	if err := l.lintFile("b.go", strings.Replace(markedFile, "QOne", "QAgain", 1)); err != nil {
		t.Fatalf("lint b: %v", err)
	}
	if len(l.violations) != 1 {
		t.Fatalf("expected one duplicate violation, got %v", l.violations)
	}
	if !strings.Contains(l.violations[0].message, "a.go:3") {
		t.Fatalf("violation should point at the first use: %q", l.violations[0].message)
	}
}

func TestRunWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write("sqlinline/q.go", markedFile)
	write("_scratch/bad.go", "package s\n\nconst Q = `select 1`\n")

	var stderr bytes.Buffer
	if code := run([]string{dir}, &stderr); code != 0 {
		t.Fatalf("expected clean run, got %d: %s", code, stderr.String())
	}

	write("sqlinline/bad.go", "package q\n\nconst QBad = `insert into programs default values`\n")
	stderr.Reset()
	if code := run([]string{dir}, &stderr); code != 1 {
		t.Fatalf("expected failure, got %d", code)
	}
	if !strings.Contains(stderr.String(), "QBad") {
		t.Fatalf("expected offending constant in report: %s", stderr.String())
	}
}

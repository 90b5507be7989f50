package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"reel/internal/catalog"
	"reel/internal/lists"
)

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		in      string
		want    catalog.MediaType
		wantErr bool
	}{
		{"", catalog.MediaMovie, false},
		{"movie", catalog.MediaMovie, false},
		{"tv", catalog.MediaTV, false},
		{"all", catalog.MediaAll, false},
		{"podcast", "", true},
	}
	for _, tt := range tests {
		got, err := parseMediaType(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseMediaType(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("parseMediaType(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestParseListName(t *testing.T) {
	tests := []struct {
		in      string
		want    lists.List
		wantErr bool
	}{
		{"favorites", lists.ListFavorites, false},
		{"fav", lists.ListFavorites, false},
		{"watchlist", lists.ListWatchlist, false},
		{"wl", lists.ListWatchlist, false},
		{"watched", lists.ListWatched, false},
		{"queue", "", true},
	}
	for _, tt := range tests {
		got, err := parseListName(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseListName(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("parseListName(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestMaskKey(t *testing.T) {
	if got := maskKey(""); got != "(not set)" {
		t.Fatalf("maskKey(empty) = %q", got)
	}
	if got := maskKey("abc"); got != "****" {
		t.Fatalf("maskKey(short) = %q", got)
	}
	got := maskKey("abcdefgh1234")
	if !strings.HasSuffix(got, "1234") || strings.Contains(got, "abcd") {
		t.Fatalf("maskKey = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	got := truncate("a very long movie title indeed", 10)
	if len([]rune(got)) > 10 || !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate = %q", got)
	}

	// Titles come back in the configured language; cutting on byte
	// offsets would split accented characters.
	got = truncate("Canción triste de una ciudad", 7)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if got != "Canció…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("películas únicas", 16); got != "películas únicas" {
		t.Fatalf("truncate must count runes, not bytes: %q", got)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"config", "init", "--path", target})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), target) {
		t.Fatalf("output missing target path: %s", out.String())
	}

	cmd = newRootCommand()
	out.Reset()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when config already exists")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	rendered := renderTable(
		[]string{"ID", "Title"},
		[][]string{{"movie-1"}},
		[]columnAlignment{alignLeft, alignLeft},
	)
	if !strings.Contains(rendered, "movie-1") {
		t.Fatalf("rendered table missing row: %s", rendered)
	}
}

package catalog_test

import (
	"testing"

	"reel/internal/catalog"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		id       string
		wantType catalog.MediaType
		wantNum  int64
		wantOK   bool
	}{
		{"movie-123", catalog.MediaMovie, 123, true},
		{"tv-456", catalog.MediaTV, 456, true},
		{" movie-7 ", catalog.MediaMovie, 7, true},
		{"movie-", "", 0, false},
		{"123", "", 0, false},
		{"series-5", "", 0, false},
		{"", "", 0, false},
	}
	for _, tc := range cases {
		mediaType, num, ok := catalog.ParseID(tc.id)
		if ok != tc.wantOK {
			t.Fatalf("ParseID(%q) ok = %v, want %v", tc.id, ok, tc.wantOK)
		}
		if !ok {
			continue
		}
		if mediaType != tc.wantType || num != tc.wantNum {
			t.Fatalf("ParseID(%q) = %s, %d", tc.id, mediaType, num)
		}
	}
}

func TestExcludeKeyCanonicalization(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"movie-123", "movie:123"},
		{"tv-456", "tv:456"},
		{"movie:123", "movie:123"},
		{"123", "movie:123"},
		{"tv99", "tv:99"},
		{"", ""},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := catalog.ExcludeKey(tc.id); got != tc.want {
			t.Fatalf("ExcludeKey(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

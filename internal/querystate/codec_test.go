package querystate_test

import (
	"testing"

	"reel/internal/querystate"
)

func TestDecodeAppliesDefaults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  querystate.State
	}{
		{
			name:  "empty string",
			query: "",
			want:  querystate.State{Type: "movie", SortBy: "popularity.desc", Page: 1},
		},
		{
			name:  "full set",
			query: "q=matrix&type=tv&genre=28&year=1999&sort=vote_average.desc&page=3",
			want: querystate.State{
				Query: "matrix", Type: "tv", Genre: "28", Year: "1999",
				SortBy: "vote_average.desc", Page: 3,
			},
		},
		{
			name:  "leading question mark tolerated",
			query: "?q=dune",
			want:  querystate.State{Query: "dune", Type: "movie", SortBy: "popularity.desc", Page: 1},
		},
		{
			name:  "non-numeric page clamps to one",
			query: "page=abc",
			want:  querystate.State{Type: "movie", SortBy: "popularity.desc", Page: 1},
		},
		{
			name:  "negative page clamps to one",
			query: "page=-4",
			want:  querystate.State{Type: "movie", SortBy: "popularity.desc", Page: 1},
		},
		{
			name:  "unrecognized keys ignored",
			query: "q=dune&utm_source=mail&foo=bar",
			want:  querystate.State{Query: "dune", Type: "movie", SortBy: "popularity.desc", Page: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := querystate.Decode(tt.query); got != tt.want {
				t.Fatalf("Decode(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	state := querystate.State{Query: "matrix", Type: "movie", SortBy: "popularity.desc", Page: 1}
	if got := querystate.Encode(state); got != "q=matrix" {
		t.Fatalf("Encode = %q, want %q", got, "q=matrix")
	}

	if got := querystate.Encode(querystate.State{}); got != "" {
		t.Fatalf("Encode(zero) = %q, want empty", got)
	}

	state = querystate.State{Type: "tv", Genre: "18", Page: 2}
	got := querystate.Encode(state)
	want := "genre=18&page=2&type=tv"
	if got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestRoundTripLaw(t *testing.T) {
	states := []querystate.State{
		{},
		{Query: "the matrix", Type: "all", Genre: "28", Year: "1999", SortBy: "vote_average.asc", Page: 7},
		{Query: "dune"},
		{Genre: "18", Page: 0},
		{Type: "tv", SortBy: "popularity.desc"},
	}
	for _, s := range states {
		normalized := querystate.Normalize(s)
		if got := querystate.Decode(querystate.Encode(s)); got != normalized {
			t.Fatalf("decode(encode(%+v)) = %+v, want %+v", s, got, normalized)
		}
	}
}

func TestIsSearchable(t *testing.T) {
	tests := []struct {
		state querystate.State
		want  bool
	}{
		{querystate.State{}, false},
		{querystate.State{Query: "   "}, false},
		{querystate.State{Query: "dune"}, true},
		{querystate.State{Genre: "28"}, true},
		{querystate.State{Year: "1999"}, false},
	}
	for _, tt := range tests {
		if got := querystate.IsSearchable(tt.state); got != tt.want {
			t.Fatalf("IsSearchable(%+v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

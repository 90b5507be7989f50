// Package querystate encodes search parameters to and from URL query
// strings in a canonical minimal form: fields at their default value are
// omitted, so equal states always encode to the same string.
package querystate

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultType   = "movie"
	DefaultSortBy = "popularity.desc"
)

// State is the full set of search parameters carried in a query string.
type State struct {
	Query  string
	Type   string
	Genre  string
	Year   string
	SortBy string
	Page   int
}

// Normalize substitutes defaults for empty fields and clamps the page to a
// minimum of 1.
func Normalize(s State) State {
	if s.Type == "" {
		s.Type = DefaultType
	}
	if s.SortBy == "" {
		s.SortBy = DefaultSortBy
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}

// Decode reads the recognized keys from a query string. Unrecognized keys
// are ignored; missing or malformed values resolve to defaults. Decode
// never fails: an unparsable query string decodes as the default state.
func Decode(query string) State {
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		values = url.Values{}
	}

	page, err := strconv.Atoi(values.Get("page"))
	if err != nil {
		page = 1
	}

	return Normalize(State{
		Query:  values.Get("q"),
		Type:   values.Get("type"),
		Genre:  values.Get("genre"),
		Year:   values.Get("year"),
		SortBy: values.Get("sort"),
		Page:   page,
	})
}

// Encode renders the state as a query string, omitting every field that
// matches its default.
func Encode(s State) string {
	s = Normalize(s)
	values := url.Values{}
	if s.Query != "" {
		values.Set("q", s.Query)
	}
	if s.Type != DefaultType {
		values.Set("type", s.Type)
	}
	if s.Genre != "" {
		values.Set("genre", s.Genre)
	}
	if s.Year != "" {
		values.Set("year", s.Year)
	}
	if s.SortBy != DefaultSortBy {
		values.Set("sort", s.SortBy)
	}
	if s.Page != 1 {
		values.Set("page", strconv.Itoa(s.Page))
	}
	return values.Encode()
}

// IsSearchable reports whether the state would trigger a search: a
// non-blank query or a genre filter.
func IsSearchable(s State) bool {
	return strings.TrimSpace(s.Query) != "" || s.Genre != ""
}

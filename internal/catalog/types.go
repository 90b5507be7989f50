package catalog

// MediaType discriminates movies from TV shows.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
	MediaAll   MediaType = "all"
)

// Item is a catalog entry in reel's normalized shape. Items are produced
// fresh from each remote call and never persisted as-is.
type Item struct {
	ID          string    `json:"id"` // "movie-<num>" or "tv-<num>"
	Title       string    `json:"title"`
	Year        string    `json:"year"`
	PosterURL   string    `json:"poster_url,omitempty"`
	MediaType   MediaType `json:"media_type"`
	VoteAverage float64   `json:"vote_average,omitempty"`
	VoteCount   int64     `json:"vote_count,omitempty"`
	GenreIDs    []int64   `json:"genre_ids,omitempty"`
}

// Detail extends Item with the full detail-view fields.
type Detail struct {
	Item
	Plot                string  `json:"plot,omitempty"`
	Genres              string  `json:"genres,omitempty"` // comma-joined names
	Runtime             int     `json:"runtime,omitempty"`
	Status              string  `json:"status,omitempty"`
	Tagline             string  `json:"tagline,omitempty"`
	Homepage            string  `json:"homepage,omitempty"`
	IMDBID              string  `json:"imdb_id,omitempty"`
	OriginalLanguage    string  `json:"original_language,omitempty"`
	ReleaseDate         string  `json:"release_date,omitempty"`
	Budget              int64   `json:"budget,omitempty"`
	Revenue             int64   `json:"revenue,omitempty"`
	ProductionCountries string  `json:"production_countries,omitempty"`
}

// SearchPage is one page of search or discover results.
type SearchPage struct {
	Items        []Item `json:"items"`
	TotalResults int    `json:"total_results"`
	TotalPages   int    `json:"total_pages"`
}

// Filters constrains a title search.
type Filters struct {
	Type   MediaType // movie, tv, or all; empty means movie
	Genre  string    // TMDB genre id as a string
	Year   string
	SortBy string // popularity|vote_average|primary_release_date + .asc/.desc
}

// Video is a trailer reference on the designated video host.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ProviderOffer is a single streaming/rent/buy offering.
type ProviderOffer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Providers groups watch offerings for one region.
type Providers struct {
	Flatrate []ProviderOffer `json:"flatrate"`
	Rent     []ProviderOffer `json:"rent"`
	Buy      []ProviderOffer `json:"buy"`
}

// CastMember is an on-screen credit.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// CrewMember is a directing or writing credit.
type CrewMember struct {
	Name        string `json:"name"`
	Job         string `json:"job,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Credits holds the reshaped credits for the detail view: all directors,
// writers de-duplicated by name, and the first twelve cast members.
type Credits struct {
	Directors []CrewMember `json:"directors"`
	Writers   []CrewMember `json:"writers"`
	Cast      []CastMember `json:"cast"`
}

// Genre is a catalog genre vocabulary entry.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Company is a production company reference.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Person is a people-search result.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ForYouQuery parameterizes personalized discovery.
type ForYouQuery struct {
	GenreIDs    []int64
	ExcludeKeys map[string]struct{} // canonical "type:id" exclusion keys
	Type        MediaType
	Limit       int
}

// RandomFilters constrains random title selection.
type RandomFilters struct {
	Type      MediaType
	Genre     string
	Year      string
	CompanyID string
	PersonID  string
}

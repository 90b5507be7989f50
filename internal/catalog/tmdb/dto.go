package tmdb

// Result represents a single TMDB list item as returned by search, discover,
// similar, and trending endpoints.
type Result struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	MediaType    string  `json:"media_type"`
	PosterPath   string  `json:"poster_path"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	GenreIDs     []int64 `json:"genre_ids"`
}

// Response models the TMDB paginated list response.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Genre is a TMDB genre list entry.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreList models the /genre/{type}/list response.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Details captures the full movie or TV detail payload.
type Details struct {
	ID                  int64    `json:"id"`
	Title               string   `json:"title"`
	Name                string   `json:"name"`
	Overview            string   `json:"overview"`
	ReleaseDate         string   `json:"release_date"`
	FirstAirDate        string   `json:"first_air_date"`
	PosterPath          string   `json:"poster_path"`
	VoteAverage         float64  `json:"vote_average"`
	VoteCount           int64    `json:"vote_count"`
	Genres              []Genre  `json:"genres"`
	Runtime             int      `json:"runtime"`
	Status              string   `json:"status"`
	Tagline             string   `json:"tagline"`
	Homepage            string   `json:"homepage"`
	IMDBID              string   `json:"imdb_id"`
	OriginalLanguage    string   `json:"original_language"`
	Budget              int64    `json:"budget"`
	Revenue             int64    `json:"revenue"`
	ProductionCountries []struct {
		Name string `json:"name"`
	} `json:"production_countries"`
}

// Video is a single entry from the /videos endpoint.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// VideoList models the /videos response.
type VideoList struct {
	Results []Video `json:"results"`
}

// Provider is a single watch provider offering.
type Provider struct {
	ProviderID   int64  `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

// RegionProviders groups provider offerings for one region.
type RegionProviders struct {
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}

// ProviderMap models the /watch/providers response, keyed by region code.
type ProviderMap struct {
	Results map[string]RegionProviders `json:"results"`
}

// CastMember is a single cast credit.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// CrewMember is a single crew credit.
type CrewMember struct {
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// CreditList models the /credits response.
type CreditList struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Person models the /person/{id} response with appended TV credits.
type Person struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TVCredits struct {
		Cast []Result `json:"cast"`
	} `json:"tv_credits"`
}

// Company is a production company search result.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PersonResult is a person search result.
type PersonResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type companyResponse struct {
	Results []Company `json:"results"`
}

type personSearchResponse struct {
	Results []PersonResult `json:"results"`
}

type apiError struct {
	StatusMessage string `json:"status_message"`
	StatusCode    int    `json:"status_code"`
}

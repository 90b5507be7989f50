package config

const (
	defaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL = "https://image.tmdb.org/t/p/w500"
	defaultTMDBLogoBaseURL  = "https://image.tmdb.org/t/p/w92"
	defaultTMDBLanguage     = "en-US"
	defaultStorageDir       = "~/.local/share/reel"
	defaultCacheTTLMinutes  = 30
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"

	// Region used when the locale yields no usable country code, matching the
	// catalog service's original deployment audience.
	FallbackRegion = "AR"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultTMDBImageBaseURL,
			LogoBaseURL:  defaultTMDBLogoBaseURL,
			Language:     defaultTMDBLanguage,
		},
		Storage: Storage{
			Dir: defaultStorageDir,
		},
		Cache: Cache{
			TTLMinutes: defaultCacheTTLMinutes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

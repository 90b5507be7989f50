// Package config loads and validates the reel configuration file.
//
// Configuration lives in a TOML file resolved from an explicit path, a
// project-local reel.toml, or ~/.config/reel/config.toml. Defaults are
// applied first, then file values, then normalization (path expansion,
// environment fallbacks) and validation. A missing TMDB API key is a fatal
// configuration error reported before any network request is attempted.
package config

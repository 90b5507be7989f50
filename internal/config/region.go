package config

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// InferRegion derives an ISO 3166-1 alpha-2 region code from the process
// locale: es-AR yields AR, en_US.UTF-8 yields US. Falls back to
// FallbackRegion when no locale variable carries a usable country code.
func InferRegion() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if region := regionFromLocale(value); region != "" {
			return region
		}
	}
	return FallbackRegion
}

func regionFromLocale(locale string) string {
	// Strip encoding and modifier suffixes ("en_US.UTF-8@euro" -> "en_US").
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		locale = locale[:idx]
	}
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	region, conf := tag.Region()
	if conf == language.No || !region.IsCountry() {
		return ""
	}
	return region.String()
}

package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var idPattern = regexp.MustCompile(`^(movie|tv)-(\d+)$`)

var nonDigits = regexp.MustCompile(`\D`)

// MakeID builds the canonical "<type>-<num>" item id.
func MakeID(mediaType MediaType, tmdbID int64) string {
	return fmt.Sprintf("%s-%d", mediaType, tmdbID)
}

// ParseID splits a canonical item id into its media type and numeric id.
// The second return is false when the id does not match "<movie|tv>-<digits>".
func ParseID(id string) (MediaType, int64, bool) {
	match := idPattern.FindStringSubmatch(strings.TrimSpace(id))
	if match == nil {
		return "", 0, false
	}
	numeric, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return MediaType(match[1]), numeric, true
}

// ExcludeKey canonicalizes an item id into the "type:id" exclusion key space.
// Already-canonical keys pass through. Ids that classify as neither kind fall
// back to the movie prefix; bare numeric TV ids are therefore misclassified,
// an inherited ambiguity kept for compatibility with stored data.
func ExcludeKey(id string) string {
	s := strings.TrimSpace(id)
	if s == "" {
		return ""
	}
	if match := idPattern.FindStringSubmatch(s); match != nil {
		return match[1] + ":" + match[2]
	}
	if strings.Contains(s, ":") && !strings.Contains(s, "-") {
		return s
	}
	kind := "movie"
	if strings.HasPrefix(s, "tv") {
		kind = "tv"
	}
	num := nonDigits.ReplaceAllString(s, "")
	if num == "" {
		return ""
	}
	return kind + ":" + num
}

package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeText(str string) string {
	result, _, _ := transform.String(normalizer, str)
	return strings.ToLower(result)
}

// MatchesKeywords reports whether a post body matches any configured keyword.
// The match is case- and accent-insensitive. An empty keyword list keeps
// every post.
func MatchesKeywords(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	normalized := normalizeText(text)
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, normalizeText(keyword)) {
			return true
		}
	}
	return false
}

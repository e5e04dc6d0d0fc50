package linkedin

import (
	"fmt"
	"strings"
)

// CompanyNameFromURL pulls the company slug out of a posts-page URL like
// https://www.linkedin.com/company/acme-corp/posts/.
func CompanyNameFromURL(rawURL string) (string, error) {
	_, after, found := strings.Cut(rawURL, "/company/")
	if !found {
		return "", fmt.Errorf("no /company/ segment in URL %q", rawURL)
	}
	name, _, _ := strings.Cut(after, "/")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty company name in URL %q", rawURL)
	}
	return name, nil
}

// digitsOnly keeps the digit runes of a rendered count ("12 comments" -> "12").
// A count with no digits at all comes back as "0".
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// classifyCountSpan maps a rendered social-count span to the field it feeds.
// Returns "" for spans that aren't counts (author names, timestamps, ...).
func classifyCountSpan(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(lower, "comment"):
		return "comments"
	case strings.Contains(lower, "share"), strings.Contains(lower, "repost"):
		return "shares"
	default:
		return ""
	}
}

// isPlaceholderSrc filters out the inline gif placeholders LinkedIn renders
// before lazy media loads.
func isPlaceholderSrc(src string) bool {
	return src == "" || strings.HasPrefix(src, "data:")
}

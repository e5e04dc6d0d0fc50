// Define the shared post record and scraper interface
// Ensure consistency across site scrapers

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Post is one extracted feed item. Counts are kept as the raw strings the
// page renders ("1,204", "1.2K") rather than parsed numbers.
type Post struct {
	Text         string   `json:"text"`
	Author       string   `json:"author,omitempty"`
	Timestamp    string   `json:"timestamp,omitempty"`
	Likes        string   `json:"likes"`
	Comments     string   `json:"comments"`
	Shares       string   `json:"shares"`
	Images       []string `json:"images"`
	Videos       []string `json:"videos"`
	CommentTexts []string `json:"comment_texts"`
}

// Result is the document written for one company page.
type Result struct {
	CompanyName string `json:"company_name"`
	Timestamp   string `json:"timestamp"`
	SourceURL   string `json:"source_url"`
	Posts       []Post `json:"posts"`
}

//Scraper defines the interface that all site scrapers must implement
type Scraper interface {
	//Scrape posts from one target page URL
	Scrape(ctx context.Context, page playwright.Page, targetURL string) ([]Post, error)

	//Name is the platform name
	Name() string
}

package linkedin

import (
	"context"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/dedup"
)

//helper start mock browser, skipping when no playwright install is present
func setupPlaywright(t *testing.T) (*playwright.Playwright, playwright.Browser, playwright.Page) {
	t.Helper()
	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright driver unavailable: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		t.Skipf("could not launch browser: %v", err)
	}
	page, err := browser.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	return pw, browser, page
}

func routeMockFeed(t *testing.T, page playwright.Page, html string) {
	t.Helper()
	err := page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        html,
		})
	})
	require.NoError(t, err)
}

const staticFeedHTML = `<html><body>
<div class="feed-shared-update-v2">
  <span class="update-components-actor__title">Acme Corp</span>
  <span class="update-components-actor__sub-description">2d</span>
  <span class="break-words">Launching our new product line today!</span>
  <span class="social-details-social-counts__reactions-count">87</span>
  <span aria-hidden="true">12 comments</span>
  <span aria-hidden="true">3 reposts</span>
  <img class="feed-shared-image__image" src="https://media.example.com/launch.jpg"/>
  <img class="feed-shared-image__img" src="data:image/gif;base64,R0lGOD"/>
</div>
<div class="feed-shared-update-v2">
  <span class="update-components-actor__title">Acme Corp</span>
  <span class="update-components-actor__sub-description">4d</span>
  <span class="break-words">We are hiring Go engineers.</span>
  <span class="social-details-social-counts__reactions-count">1,204</span>
  <span aria-hidden="true">56 comments</span>
</div>
<div class="feed-shared-update-v2">
  <p>unparsable markup with no recognized sub-elements</p>
</div>
<div class="feed-shared-update-v2">
  <span class="break-words">Quarterly results are out.</span>
  <video class="feed-shared-video__video" src="https://media.example.com/q3.mp4"></video>
</div>
<div class="feed-shared-update-v2">
  <span class="break-words">Throwback to our first office.</span>
  <span aria-hidden="true">2 shares</span>
</div>
</body></html>`

func TestScrape_StaticFeed(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	routeMockFeed(t, page, staticFeedHTML)

	cfg := &config.Config{NumScrolls: 2, ScrollPause: 0, MaxComments: 0}
	cfg.ApplyDefaults()
	s := NewCompanyPostsScraper(cfg, dedup.NewPostCache(""))

	posts, err := s.Scrape(context.Background(), page, "https://www.linkedin.com/company/acme/posts/")
	require.NoError(t, err)
	require.Len(t, posts, 5, "5 static post elements should yield exactly 5 records")

	//document order is preserved
	assert.Equal(t, "Launching our new product line today!", posts[0].Text)
	assert.Equal(t, "We are hiring Go engineers.", posts[1].Text)

	//engagement counts stay opaque strings
	assert.Equal(t, "87", posts[0].Likes)
	assert.Equal(t, "12", posts[0].Comments)
	assert.Equal(t, "3", posts[0].Shares)
	assert.Equal(t, "1,204", posts[1].Likes)

	//placeholder data: URIs are dropped, real media kept
	assert.Equal(t, []string{"https://media.example.com/launch.jpg"}, posts[0].Images)
	assert.Equal(t, []string{"https://media.example.com/q3.mp4"}, posts[3].Videos)

	//the malformed post is zeroed, not fatal
	malformed := posts[2]
	assert.Equal(t, "", malformed.Text)
	assert.Equal(t, "0", malformed.Likes)
	assert.Equal(t, "0", malformed.Comments)
	assert.Equal(t, "0", malformed.Shares)

	//max_comments = 0 means no comment extraction at all
	for _, p := range posts {
		assert.Empty(t, p.CommentTexts)
		assert.NotNil(t, p.CommentTexts)
	}
}

func TestScrape_DedupAcrossPasses(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	routeMockFeed(t, page, staticFeedHTML)

	cfg := &config.Config{NumScrolls: 0, ScrollPause: 0, MaxComments: 0}
	cfg.ApplyDefaults()
	cache := dedup.NewPostCache("")
	s := NewCompanyPostsScraper(cfg, cache)

	first, err := s.Scrape(context.Background(), page, "https://www.linkedin.com/company/acme/posts/")
	require.NoError(t, err)
	require.Len(t, first, 5)

	//same DOM snapshot, same cache: nothing new may be emitted
	second, err := s.Scrape(context.Background(), page, "https://www.linkedin.com/company/acme/posts/")
	require.NoError(t, err)
	assert.Empty(t, second)
}

const commentFeedHTML = `<html><body>
<div class="feed-shared-update-v2">
  <span class="break-words">Post with a comment thread</span>
  <button aria-label="4 comments on this post">Comment</button>
  <div class="comments-comment-item"><span class="comments-comment-item__main-content">First comment</span></div>
  <div class="comments-comment-item"><span class="comments-comment-item__main-content">Second comment</span></div>
  <div class="comments-comment-item"><span class="comments-comment-item__main-content">Third comment</span></div>
  <div class="comments-comment-item"><span class="comments-comment-item__main-content">Fourth comment</span></div>
</div>
</body></html>`

func TestScrape_CommentCap(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	routeMockFeed(t, page, commentFeedHTML)

	cfg := &config.Config{NumScrolls: 0, ScrollPause: 0, MaxComments: 2}
	cfg.ApplyDefaults()
	s := NewCompanyPostsScraper(cfg, dedup.NewPostCache(""))

	posts, err := s.Scrape(context.Background(), page, "https://www.linkedin.com/company/acme/posts/")
	require.NoError(t, err)
	require.Len(t, posts, 1)

	assert.Equal(t, []string{"First comment", "Second comment"}, posts[0].CommentTexts)
}

func TestScrape_EmptyFeed(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	routeMockFeed(t, page, `<html><body><main>No posts here</main></body></html>`)

	cfg := &config.Config{NumScrolls: 0, ScrollPause: 0, MaxComments: 0}
	cfg.ApplyDefaults()
	s := NewCompanyPostsScraper(cfg, dedup.NewPostCache(""))

	posts, err := s.Scrape(context.Background(), page, "https://www.linkedin.com/company/acme/posts/")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

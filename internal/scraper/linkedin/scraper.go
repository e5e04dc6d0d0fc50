package linkedin

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/dedup"
	"go-linkedin-scraper/internal/scraper"
)

// CompanyPostsScraper extracts the post feed of a LinkedIn company page.
type CompanyPostsScraper struct {
	cfg   *config.Config
	cache *dedup.PostCache
}

func NewCompanyPostsScraper(cfg *config.Config, cache *dedup.PostCache) *CompanyPostsScraper {
	return &CompanyPostsScraper{
		cfg:   cfg,
		cache: cache,
	}
}

func (s *CompanyPostsScraper) Name() string {
	return "LinkedIn"
}

func (s *CompanyPostsScraper) Scrape(ctx context.Context, page playwright.Page, targetURL string) ([]scraper.Post, error) {
	log.Printf("🏢 Navigating to company page: %s", targetURL)
	if _, err := page.Goto(targetURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("failed to load company page: %w", err)
	}

	//let the initial feed chunk render
	browser.RandomDelay(2000, 4000)
	browser.MouseJiggle(page)

	if err := s.loadFeed(ctx, page); err != nil {
		return nil, err
	}

	return s.extractPosts(ctx, page), nil
}

// loadFeed runs the configured number of scroll passes. The scroll count is a
// fixed budget, not a convergence condition: the loop does not stop early when
// the feed stops growing, it only logs the document height so an operator can
// see where growth plateaued.
func (s *CompanyPostsScraper) loadFeed(ctx context.Context, page playwright.Page) error {
	pause := s.cfg.ScrollPauseDuration()
	for i := 0; i < s.cfg.NumScrolls; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		height, err := page.Evaluate("() => { window.scrollTo(0, document.body.scrollHeight); return document.body.scrollHeight; }")
		if err != nil {
			log.Printf("  ⚠️ Scroll pass %d failed: %v", i+1, err)
			continue
		}
		log.Printf("  📜 Scroll pass %d/%d (document height: %v)", i+1, s.cfg.NumScrolls, height)

		time.Sleep(pause)
	}
	return nil
}

// extractPosts walks every feed-item element in document order. A post that
// cannot be read at all is skipped with a warning; the batch always continues.
func (s *CompanyPostsScraper) extractPosts(ctx context.Context, page playwright.Page) []scraper.Post {
	elements, err := page.Locator(postSelector).All()
	if err != nil || len(elements) == 0 {
		//fallback selector for the older feed markup
		elements, _ = page.Locator(postFallbackSelector).All()
	}
	log.Printf("\n📦 Found %d post elements (selector table v%d)\n", len(elements), selectorsVersion)

	var posts []scraper.Post
	skipped := 0
	duplicates := 0
	for idx, el := range elements {
		if ctx.Err() != nil {
			break
		}

		post, err := s.extractPost(page, el)
		if err != nil {
			log.Printf("  ⚠️ Skipping post %d: %v", idx+1, err)
			skipped++
			continue
		}

		fp := dedup.Fingerprint(post.Text, post.Author, post.Timestamp)
		if !s.cache.MarkSeen(fp) {
			duplicates++
			continue
		}

		posts = append(posts, post)
		printPostSummary(post, idx+1)
	}

	if skipped > 0 || duplicates > 0 {
		log.Printf("🔍 Extraction done: %d posts, %d skipped, %d duplicates dropped", len(posts), skipped, duplicates)
	}
	return posts
}

// extractPost reads one feed item. Missing sub-elements zero the field and
// never fail the post; only a fully unreadable element returns an error.
func (s *CompanyPostsScraper) extractPost(page playwright.Page, el playwright.Locator) (scraper.Post, error) {
	post := scraper.Post{
		Likes:        "0",
		Comments:     "0",
		Shares:       "0",
		Images:       []string{},
		Videos:       []string{},
		CommentTexts: []string{},
	}

	//bring the post into the viewport so lazy media resolves
	if err := el.ScrollIntoViewIfNeeded(); err != nil {
		return post, fmt.Errorf("element unreachable: %w", err)
	}

	//expand truncated body text
	seeMore := el.Locator(seeMoreSelector).First()
	if visible, _ := seeMore.IsVisible(); visible {
		if err := seeMore.Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(2000),
		}); err == nil {
			browser.RandomDelay(500, 1000)
		}
	}

	post.Text = innerTextOrEmpty(el.Locator(postTextSelector).First())
	post.Author = innerTextOrEmpty(el.Locator(postAuthorSelector).First())
	post.Timestamp = innerTextOrEmpty(el.Locator(postTimeSelector).First())

	//likes stay as the raw rendered string ("87", "1.2K", ...)
	if likes := innerTextOrEmpty(el.Locator(reactionsCountSelector).First()); likes != "" {
		post.Likes = likes
	}

	//comment/share counts come from the aria-hidden social count spans
	spans, err := el.Locator(countSpanSelector).All()
	if err != nil {
		log.Printf("  ⚠️ Error reading social count spans: %v", err)
	}
	for _, span := range spans {
		text, err := span.InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(1000),
		})
		if err != nil {
			continue
		}
		switch classifyCountSpan(text) {
		case "comments":
			post.Comments = digitsOnly(text)
		case "shares":
			post.Shares = digitsOnly(text)
		}
	}

	post.Images = collectMediaURLs(el, "img", imageClassList)
	post.Videos = collectMediaURLs(el, "video", videoClassList)

	if comments := s.extractComments(el); comments != nil {
		post.CommentTexts = comments
	}

	return post, nil
}

// extractComments expands and reads up to MaxComments comments for one post.
// It never fails the enclosing post: on any error it returns what it has.
func (s *CompanyPostsScraper) extractComments(el playwright.Locator) []string {
	max := s.cfg.MaxComments
	if max <= 0 {
		return nil
	}

	//open the comment section if the post exposes a control for it
	commentsBtn := el.Locator(commentsButtonSelector).First()
	if visible, _ := commentsBtn.IsVisible(); visible {
		if err := commentsBtn.Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(2000),
		}); err == nil {
			browser.RandomDelay(800, 1500)
		}
	}

	//expand until enough comments are visible or no control remains;
	//the iteration cap keeps a sticky button from looping forever
	const maxExpandClicks = 10
	items := el.Locator(commentItemSelector)
	for i := 0; i < maxExpandClicks; i++ {
		count, err := items.Count()
		if err != nil || count >= max {
			break
		}
		loadMore := el.Locator(loadMoreButtonSelector).First()
		if visible, _ := loadMore.IsVisible(); !visible {
			break
		}
		if err := loadMore.Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(2000),
		}); err != nil {
			break
		}
		browser.RandomDelay(500, 1000)
	}

	blocks, err := items.All()
	if err != nil {
		return nil
	}

	comments := []string{}
	for _, block := range blocks {
		if len(comments) >= max {
			break
		}
		textEl := block.Locator(commentTextSelector).First()
		if count, _ := textEl.Count(); count == 0 {
			continue
		}
		text, err := textEl.InnerText(playwright.LocatorInnerTextOptions{
			Timeout: playwright.Float(1000),
		})
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			comments = append(comments, text)
		}
	}
	return comments
}

func collectMediaURLs(el playwright.Locator, tag, classList string) []string {
	urls := []string{}
	for _, class := range strings.Split(classList, ",") {
		elements, err := el.Locator(tag + "." + class).All()
		if err != nil {
			continue
		}
		for _, media := range elements {
			src, err := media.GetAttribute("src")
			if err != nil || isPlaceholderSrc(src) {
				continue
			}
			urls = append(urls, src)
		}
	}
	return urls
}

func innerTextOrEmpty(loc playwright.Locator) string {
	if count, _ := loc.Count(); count == 0 {
		return ""
	}
	text, err := loc.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(2000),
	})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func printPostSummary(post scraper.Post, idx int) {
	preview := post.Text
	if runes := []rune(preview); len(runes) > 100 {
		preview = string(runes[:100]) + "..."
	}
	log.Printf("  ✅ Post %d: %q | 👍 %s | 💬 %s | 🔁 %s | 🖼 %d | 🎬 %d | comments captured: %d",
		idx, preview, post.Likes, post.Comments, post.Shares,
		len(post.Images), len(post.Videos), len(post.CommentTexts))
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-linkedin-scraper/internal/auth"
	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/dedup"
	"go-linkedin-scraper/internal/filter"
	"go-linkedin-scraper/internal/output"
	"go-linkedin-scraper/internal/scraper"
	"go-linkedin-scraper/internal/scraper/linkedin"
	"go-linkedin-scraper/internal/telegram"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Targets: %v", cfg.CompanyURLs)

	if err := run(cfg); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

// run keeps all fatal paths on an error return so the deferred browser
// teardown executes no matter where the run dies.
func run(cfg *config.Config) error {
	//init telegram bot (optional)
	var bot *telegram.Bot
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		b, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
		} else {
			bot = b
			log.Println("🤖 Telegram Bot initialized.")
		}
	}
	notifyError := func(err error) {
		if bot != nil {
			if sendErr := bot.SendError(err); sendErr != nil {
				log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
			}
		}
	}

	//setup context with timeout = 30 mins
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	log.Println("🚀 Starting LinkedIn post scraper...")

	//init playwright manager
	pwManager, err := browser.NewPlaywright(cfg)
	if err != nil {
		notifyError(err)
		return fmt.Errorf("failed to init Playwright: %w", err)
	}
	//release the browser on every exit path
	defer pwManager.Close()

	//load cookies (optional session reuse)
	var cookies []playwright.OptionalCookie
	if cfg.CookiesPath != "" {
		loaded, err := browser.LoadCookies(filepath.Join(cfg.CookiesPath, "cookies-linkedin.json"))
		if err != nil {
			log.Printf("⚠️ Could not load cookies: %v. Falling back to form login.", err)
		} else {
			cookies = loaded
			log.Printf("🍪 Loaded linkedin cookies (%d)", len(cookies))
		}
	}

	//create new browser context with cookies
	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		notifyError(err)
		return err
	}

	//create new page
	page, err := browserCtx.NewPage()
	if err != nil {
		notifyError(err)
		return fmt.Errorf("failed to create new page: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")

	//authenticate: restored cookie session first, form login as fallback
	loggedIn := false
	if len(cookies) > 0 {
		if auth.VerifySession(page) {
			loggedIn = true
			log.Println("✅ Session restored from cookies.")
		} else {
			log.Println("⚠️ Cookie session expired or invalid.")
		}
	}
	if !loggedIn {
		if err := auth.Login(page, cfg.Email, cfg.Password); err != nil {
			notifyError(err)
			return fmt.Errorf("login failed: %w", err)
		}
	}
	browser.RandomDelay(1000, 2000)

	//scrape each company page
	cache := dedup.NewPostCache(cfg.CachePath)
	var postScraper scraper.Scraper = linkedin.NewCompanyPostsScraper(cfg, cache)
	writer := output.NewWriter(cfg.OutputDir)

	for _, companyURL := range cfg.CompanyURLs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		companyName, err := linkedin.CompanyNameFromURL(companyURL)
		if err != nil {
			log.Printf("⚠️ Skipping target %s: %v", companyURL, err)
			continue
		}

		log.Printf("\n▶️ Scraping %s", companyName)
		posts, err := postScraper.Scrape(ctx, page, companyURL)
		if err != nil {
			log.Printf("⚠️ Scrape of %s failed: %v", companyName, err)
			continue
		}

		//optional keyword filter
		if len(cfg.Keywords) > 0 {
			var kept []scraper.Post
			for _, p := range posts {
				if filter.MatchesKeywords(p.Text, cfg.Keywords) {
					kept = append(kept, p)
				}
			}
			log.Printf("🔑 Keyword filter: %d/%d posts kept", len(kept), len(posts))
			posts = kept
		}
		if posts == nil {
			posts = []scraper.Post{}
		}

		result := &scraper.Result{
			CompanyName: companyName,
			Timestamp:   time.Now().Format(output.TimestampFormat),
			SourceURL:   companyURL,
			Posts:       posts,
		}

		//write output; this is the run's entire purpose, so failure is fatal
		path, err := writer.Write(result)
		if err != nil {
			notifyError(err)
			return fmt.Errorf("failed to write output for %s: %w", companyName, err)
		}
		log.Printf("📦 %s: %d posts -> %s", companyName, len(posts), path)

		if bot != nil {
			if err := bot.SendRunSummary(companyName, len(posts), path); err != nil {
				log.Printf("⚠️ Failed to send Telegram summary: %v", err)
			}
		}
	}

	cache.Flush()

	log.Println("🏁 Execution finished.")
	return nil
}

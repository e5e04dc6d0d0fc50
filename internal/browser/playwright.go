package browser

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"go-linkedin-scraper/internal/config"
)

// PlaywrightManager owns the driver and browser process for one run.
// Close is safe on every exit path, including a partially failed start.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.Config
}

func NewPlaywright(cfg *config.Config) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright driver: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args: []string{
			fmt.Sprintf("--window-size=%d,%d", cfg.WindowWidth, cfg.WindowHeight),
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}

	return &PlaywrightManager{
		pw:      pw,
		browser: browser,
		cfg:     cfg,
	}, nil
}

// NewContext creates a browser context sized to the configured viewport,
// seeding it with session cookies when any are given.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	browserCtx, err := pm.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  pm.cfg.WindowWidth,
			Height: pm.cfg.WindowHeight,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	if len(cookies) > 0 {
		if err := browserCtx.AddCookies(cookies); err != nil {
			browserCtx.Close()
			return nil, fmt.Errorf("failed to add cookies: %w", err)
		}
	}

	return browserCtx, nil
}

func (pm *PlaywrightManager) Close() error {
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser: %v", err)
		}
		pm.browser = nil
	}
	if pm.pw != nil {
		if err := pm.pw.Stop(); err != nil {
			return err
		}
		pm.pw = nil
	}
	return nil
}

package main

import (
	"fmt"
	"log"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
)

// Manual smoke check for the browser stack: starts playwright, opens a page,
// loads the LinkedIn login screen and prints the title.
func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	cfg := &config.Config{Headless: true}
	cfg.ApplyDefaults()

	pm, err := browser.NewPlaywright(cfg)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	browserCtx, err := pm.NewContext(nil)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	fmt.Println("✅ Browser context created")

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	fmt.Println("🔍 Navigating to LinkedIn login...")
	if _, err := page.Goto("https://www.linkedin.com/login"); err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}

	title, _ := page.Title()
	fmt.Printf("✅ Page title: %s\n", title)
}

package auth

import (
	"errors"
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/utils"
)

const loginURL = "https://www.linkedin.com/login"

// Login page selectors. LinkedIn markup changes without notice, so every
// selector this package touches lives here.
const (
	emailInputSelector    = "#username"
	passwordInputSelector = "#password, input[name=\"session_password\"]"
	submitButtonSelector  = "button[data-litms-control-urn=\"login-submit\"], button[type=\"submit\"]"
	// loggedInSelector marks a completed navigation into the feed.
	loggedInSelector = "#global-nav"
	// checkpointSelector matches LinkedIn's captcha/verification interstitials.
	checkpointSelector = "iframe[src*=\"captcha\"], iframe[src*=\"challenge\"], #captcha-internal"
)

var (
	//ErrFormNotFound means the login form selectors no longer match the page
	ErrFormNotFound = errors.New("login form not found (site markup may have changed)")
	//ErrLoginTimeout means no post-login navigation happened within the wait window
	ErrLoginTimeout = errors.New("timed out waiting for post-login navigation")
)

const (
	formTimeoutMs  = 10000
	loginTimeoutMs = 30000
)

// Login fills and submits the LinkedIn login form, then waits for the feed
// navigation to land. It is attempted exactly once; any failure aborts the run.
func Login(page playwright.Page, email, password string) error {
	log.Println("🔐 Navigating to LinkedIn login...")
	if _, err := page.Goto(loginURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return fmt.Errorf("failed to load login page: %w", err)
	}

	browser.RandomDelay(1000, 2000)

	//locate form fields
	emailInput := page.Locator(emailInputSelector).First()
	passwordInput := page.Locator(passwordInputSelector).First()

	if count, _ := emailInput.Count(); count == 0 {
		return ErrFormNotFound
	}
	if count, _ := passwordInput.Count(); count == 0 {
		return ErrFormNotFound
	}

	//fill credentials
	if err := emailInput.Fill(email, playwright.LocatorFillOptions{
		Timeout: playwright.Float(formTimeoutMs),
	}); err != nil {
		return fmt.Errorf("%w: could not fill email field", ErrFormNotFound)
	}
	if err := passwordInput.Fill(password, playwright.LocatorFillOptions{
		Timeout: playwright.Float(formTimeoutMs),
	}); err != nil {
		return fmt.Errorf("%w: could not fill password field", ErrFormNotFound)
	}

	//submit: click the button, fall back to Enter in the password field
	submitBtn := page.Locator(submitButtonSelector).First()
	if err := submitBtn.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(formTimeoutMs),
	}); err != nil {
		if pressErr := passwordInput.Press("Enter"); pressErr != nil {
			return fmt.Errorf("%w: submit failed", ErrFormNotFound)
		}
	}

	//wait for the feed nav to confirm login
	if _, err := page.WaitForSelector(loggedInSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(loginTimeoutMs),
	}); err != nil {
		//screenshot helps diagnose captcha/checkpoint interstitials
		if count, _ := page.Locator(checkpointSelector).Count(); count > 0 {
			debugger := utils.NewScreenShotDebugger()
			debugger.CaptureAndLog(page, "login-checkpoint", "🚨 Login blocked by verification challenge")
		}
		return ErrLoginTimeout
	}

	log.Println("✅ Login confirmed.")
	return nil
}

// VerifySession checks whether an existing (cookie-restored) session is still
// logged in by loading the feed and looking for the nav marker.
func VerifySession(page playwright.Page) bool {
	if _, err := page.Goto("https://www.linkedin.com/feed/", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return false
	}
	_, err := page.WaitForSelector(loggedInSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(10000),
	})
	return err == nil
}

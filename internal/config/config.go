// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Credentials (env overrides yaml so secrets stay out of the repo)
	Email    string `yaml:"email" env:"LINKEDIN_EMAIL"`
	Password string `yaml:"password" env:"LINKEDIN_PASSWORD"`
	//Browser
	Headless     bool `yaml:"headless"`
	WindowWidth  int  `yaml:"window_width"`
	WindowHeight int  `yaml:"window_height"`
	//Feed loading
	NumScrolls  int     `yaml:"num_scrolls"`
	ScrollPause float64 `yaml:"scroll_pause"` //seconds, fractional allowed
	MaxComments int     `yaml:"max_comments"`
	//Targets
	CompanyURLs []string `yaml:"company_urls"`
	//Optional keyword filter on post text (empty = keep everything)
	Keywords []string `yaml:"keywords"`
	//Paths
	OutputDir   string `yaml:"output_dir"`
	CachePath   string `yaml:"cache_path"`
	CookiesPath string `yaml:"cookies_path"`
	//Optional Telegram notification
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// ScrollPauseDuration converts the configured pause to a time.Duration.
func (c *Config) ScrollPauseDuration() time.Duration {
	return time.Duration(c.ScrollPause * float64(time.Second))
}

func Load() *Config {
	return LoadFrom("configs/config.yaml")
}

func LoadFrom(path string) *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if email := os.Getenv("LINKEDIN_EMAIL"); email != "" {
		cfg.Email = email
	}

	if password := os.Getenv("LINKEDIN_PASSWORD"); password != "" {
		cfg.Password = password
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	cfg.ApplyDefaults()

	//Validate required fields
	if len(cfg.CompanyURLs) == 0 {
		log.Fatal("company_urls is required")
	}

	if cfg.CookiesPath == "" && (cfg.Email == "" || cfg.Password == "") {
		log.Fatal("LINKEDIN_EMAIL and LINKEDIN_PASSWORD are required (or set cookies_path)")
	}

	return cfg
}

// ApplyDefaults fills unset fields with the values the scraper always ran with.
func (c *Config) ApplyDefaults() {
	if c.WindowWidth <= 0 {
		c.WindowWidth = 1200
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 900
	}
	if c.NumScrolls < 0 {
		c.NumScrolls = 0
	}
	if c.ScrollPause < 0 {
		c.ScrollPause = 0
	}
	if c.MaxComments < 0 {
		c.MaxComments = 0
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Default endpoints of the NewOldCamera shop.
const (
	defaultAPIURL    = "https://apinocservice.azurewebsites.net/api/products"
	defaultBrandsURL = "https://www.newoldcamera.com/_Marche.aspx"
)

type Config struct {
	Env         string        // Env is the current environment: local, development, production.
	APIURL      string        // APIURL is the product lookup endpoint.
	BrandsURL   string        // BrandsURL is the brand catalog page.
	Interval    time.Duration // Interval is the pause between poll cycles.
	StoragePath string        // StoragePath enables the sqlite alert journal when non-empty.
	Tg          Telegram
}

type Telegram struct {
	Token  string // Token is a unique telegram bot token.
	ChatID int64  // ChatID is the destination chat for alerts.
}

// Enabled reports whether notification delivery is configured.
func (t Telegram) Enabled() bool {
	return t.Token != "" && t.ChatID != 0
}

// MustLoad loads the configuration from environment variables and returns a
// Config struct. Telegram credential problems are never fatal: a missing or
// unreadable credentials file only disables notification delivery.
func MustLoad() *Config {
	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("NOC")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("API_URL", defaultAPIURL)
	viper.SetDefault("BRANDS_URL", defaultBrandsURL)
	viper.SetDefault("INTERVAL", "60s")
	viper.SetDefault("CREDENTIALS_FILE", "telegram_data.json")

	tg := Telegram{
		Token:  viper.GetString("TELEGRAM_TOKEN"),
		ChatID: viper.GetInt64("TELEGRAM_CHAT_ID"),
	}

	// Environment wins; the JSON credentials file fills in whatever is missing.
	if !tg.Enabled() {
		fileTg, err := loadCredentialsFile(viper.GetString("CREDENTIALS_FILE"))
		if err != nil {
			// The loop must run even without credentials, so a broken
			// file only costs the notifications.
			slog.Warn("Could not read telegram credentials file, notifications may be disabled", "error", err)
		}
		if tg.Token == "" {
			tg.Token = fileTg.Token
		}
		if tg.ChatID == 0 {
			tg.ChatID = fileTg.ChatID
		}
	}

	return &Config{
		Env:         viper.GetString("ENV"),
		APIURL:      viper.GetString("API_URL"),
		BrandsURL:   viper.GetString("BRANDS_URL"),
		Interval:    viper.GetDuration("INTERVAL"),
		StoragePath: viper.GetString("STORAGE_PATH"),
		Tg:          tg,
	}
}

// loadCredentialsFile reads Telegram credentials from a JSON file with
// "api_key" and "chat_id" keys. A missing file is not an error.
func loadCredentialsFile(path string) (Telegram, error) {
	if path == "" {
		return Telegram{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		return Telegram{}, nil
	}

	fv := viper.New()
	fv.SetConfigFile(path)
	fv.SetConfigType("json")
	if err := fv.ReadInConfig(); err != nil {
		return Telegram{}, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	return Telegram{
		Token:  fv.GetString("api_key"),
		ChatID: fv.GetInt64("chat_id"),
	}, nil
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amonetti/nocwatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("defaults with credentials from env", func(t *testing.T) {
		t.Setenv("NOC_ENV", "local")
		t.Setenv("NOC_TELEGRAM_TOKEN", "telegramToken")
		t.Setenv("NOC_TELEGRAM_CHAT_ID", "123456")
		t.Setenv("NOC_STORAGE_PATH", "some/path/to/db")
		t.Setenv("NOC_CREDENTIALS_FILE", "")

		cfg := config.MustLoad()

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, 60*time.Second, cfg.Interval)
		assert.Equal(t, "telegramToken", cfg.Tg.Token)
		assert.Equal(t, int64(123456), cfg.Tg.ChatID)
		assert.Equal(t, "some/path/to/db", cfg.StoragePath)
		assert.Contains(t, cfg.APIURL, "/api/products")
		assert.True(t, cfg.Tg.Enabled())
	})

	t.Run("missing credentials disable notifications, not the loop", func(t *testing.T) {
		t.Setenv("NOC_TELEGRAM_TOKEN", "")
		t.Setenv("NOC_TELEGRAM_CHAT_ID", "")
		t.Setenv("NOC_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "missing.json"))

		cfg := config.MustLoad()

		assert.False(t, cfg.Tg.Enabled())
		assert.Equal(t, 60*time.Second, cfg.Interval)
	})

	t.Run("credentials file fills in missing env values", func(t *testing.T) {
		credsPath := filepath.Join(t.TempDir(), "telegram_data.json")
		err := os.WriteFile(credsPath, []byte(`{"api_key": "fileToken", "chat_id": 987}`), 0o600)
		require.NoError(t, err)

		t.Setenv("NOC_TELEGRAM_TOKEN", "")
		t.Setenv("NOC_TELEGRAM_CHAT_ID", "")
		t.Setenv("NOC_CREDENTIALS_FILE", credsPath)

		cfg := config.MustLoad()

		assert.Equal(t, "fileToken", cfg.Tg.Token)
		assert.Equal(t, int64(987), cfg.Tg.ChatID)
		assert.True(t, cfg.Tg.Enabled())
	})

	t.Run("malformed credentials file only disables notifications", func(t *testing.T) {
		credsPath := filepath.Join(t.TempDir(), "telegram_data.json")
		err := os.WriteFile(credsPath, []byte(`{broken`), 0o600)
		require.NoError(t, err)

		t.Setenv("NOC_TELEGRAM_TOKEN", "")
		t.Setenv("NOC_TELEGRAM_CHAT_ID", "")
		t.Setenv("NOC_CREDENTIALS_FILE", credsPath)

		var cfg *config.Config
		assert.NotPanics(t, func() {
			cfg = config.MustLoad()
		})

		// The loop config survives; only delivery is off.
		assert.False(t, cfg.Tg.Enabled())
		assert.Equal(t, 60*time.Second, cfg.Interval)
	})
}

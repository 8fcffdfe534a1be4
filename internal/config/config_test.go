package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadBotConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError string
		validate    func(*testing.T, *BotConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
discord:
  token: "test-token"
  guild_id: "123456789"
registry:
  path: "testdata/addresses.json"
collections:
  pixelpepes: "Pixel Pepe Holder"
  space-pepes: "Space Pepe Holder"
rate_limit:
  calls_per_window: 10
  window: "30s"
sweep:
  interval: "10m"
  user_pause: "250ms"
nats:
  url: "nats://localhost:4222"
`,
			validate: func(t *testing.T, cfg *BotConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "test-token", cfg.Discord.Token)
				assert.Equal(t, "123456789", cfg.Discord.GuildID)
				assert.Equal(t, "testdata/addresses.json", cfg.Registry.Path)
				assert.Equal(t, "Pixel Pepe Holder", cfg.Collections["pixelpepes"])
				assert.Equal(t, 10, cfg.RateLimit.CallsPerWindow)
				assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
				assert.Equal(t, 10*time.Minute, cfg.Sweep.Interval)
				assert.Equal(t, 250*time.Millisecond, cfg.Sweep.UserPause)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
			},
		},
		{
			name: "defaults applied",
			configFile: `
discord:
  token: "test-token"
  guild_id: "123456789"
collections:
  pixelpepes: "Pixel Pepe Holder"
`,
			validate: func(t *testing.T, cfg *BotConfig) {
				assert.Equal(t, "data/user_addresses.json", cfg.Registry.Path)
				assert.Equal(t, "https://v2api.bestinslot.xyz/collection/snapshot", cfg.Snapshot.APIURL)
				assert.Equal(t, "https://api-mainnet.magiceden.dev/v2/wallets", cfg.Profile.APIURL)
				assert.Equal(t, 30, cfg.RateLimit.CallsPerWindow)
				assert.Equal(t, 60*time.Second, cfg.RateLimit.Window)
				assert.Equal(t, 30*time.Minute, cfg.Sweep.Interval)
				assert.Equal(t, time.Second, cfg.Sweep.UserPause)
				assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, "bot.lock", cfg.LockFilePath)
				assert.Empty(t, cfg.NATS.URL)
			},
		},
		{
			name: "missing token",
			configFile: `
discord:
  guild_id: "123456789"
collections:
  pixelpepes: "Pixel Pepe Holder"
`,
			expectError: "discord.token is required",
		},
		{
			name: "missing guild",
			configFile: `
discord:
  token: "test-token"
collections:
  pixelpepes: "Pixel Pepe Holder"
`,
			expectError: "discord.guild_id is required",
		},
		{
			name: "missing collections",
			configFile: `
discord:
  token: "test-token"
  guild_id: "123456789"
`,
			expectError: "at least one collection must be configured",
		},
		{
			name: "invalid rate limit",
			configFile: `
discord:
  token: "test-token"
  guild_id: "123456789"
collections:
  pixelpepes: "Pixel Pepe Holder"
rate_limit:
  calls_per_window: 0
`,
			expectError: "rate_limit.calls_per_window must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.configFile)

			cfg, err := LoadBotConfig(path, t.TempDir())
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadBotConfig_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
discord:
  token: "file-token"
  guild_id: "123456789"
collections:
  pixelpepes: "Pixel Pepe Holder"
`)

	t.Setenv("HOLDERBOT_DISCORD_TOKEN", "env-token")

	cfg, err := LoadBotConfig(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Discord.Token)
}

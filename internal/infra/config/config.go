package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/seojun-park/injeungbot/internal/common/week"
	"github.com/seojun-park/injeungbot/internal/models"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DiscordToken  string
	ApplicationID string
	GuildID       string
	ChannelID     string

	RedisAddr     string
	RedisPassword string

	Timezone            string
	SlotsPerWeek        int
	WeekendPolicy       models.WeekendPolicy
	AutoCreateOnMention bool
	GraceEndHour        int
	AckEmoji            string

	CronSpecRollover string
	CronSpecDaily    string

	LogLevel    string
	Environment string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DiscordToken = os.Getenv("DISCORD_TOKEN")
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set")
	}

	cfg.ApplicationID = os.Getenv("APPLICATION_ID")

	cfg.GuildID = os.Getenv("GUILD_ID")
	if cfg.GuildID == "" {
		return nil, fmt.Errorf("GUILD_ID is not set")
	}

	cfg.ChannelID = os.Getenv("CHANNEL_ID")
	if cfg.ChannelID == "" {
		return nil, fmt.Errorf("CHANNEL_ID is not set")
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.Timezone = os.Getenv("TIMEZONE")
	if cfg.Timezone == "" {
		cfg.Timezone = week.DefaultZoneName
	}

	slotsStr := os.Getenv("SLOTS_PER_WEEK")
	if slotsStr == "" {
		cfg.SlotsPerWeek = 5
	} else {
		slots, err := strconv.Atoi(slotsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SLOTS_PER_WEEK: %w", err)
		}
		if slots != 5 && slots != 7 {
			return nil, fmt.Errorf("SLOTS_PER_WEEK must be 5 or 7, got %d", slots)
		}
		cfg.SlotsPerWeek = slots
	}

	switch strings.ToLower(os.Getenv("WEEKEND_POLICY")) {
	case "", string(models.WeekendPolicyOptional):
		cfg.WeekendPolicy = models.WeekendPolicyOptional
	case string(models.WeekendPolicyNotRequired):
		cfg.WeekendPolicy = models.WeekendPolicyNotRequired
	default:
		return nil, fmt.Errorf("invalid WEEKEND_POLICY: %q", os.Getenv("WEEKEND_POLICY"))
	}

	autoCreateStr := os.Getenv("AUTO_CREATE_ON_MENTION")
	if autoCreateStr != "" {
		autoCreate, err := strconv.ParseBool(autoCreateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTO_CREATE_ON_MENTION: %w", err)
		}
		cfg.AutoCreateOnMention = autoCreate
	}

	graceStr := os.Getenv("GRACE_END_HOUR")
	if graceStr == "" {
		cfg.GraceEndHour = 1
	} else {
		grace, err := strconv.Atoi(graceStr)
		if err != nil {
			return nil, fmt.Errorf("invalid GRACE_END_HOUR: %w", err)
		}
		if grace < 0 || grace > 23 {
			return nil, fmt.Errorf("GRACE_END_HOUR must be in [0,23], got %d", grace)
		}
		cfg.GraceEndHour = grace
	}

	cfg.AckEmoji = os.Getenv("ACK_EMOJI")
	if cfg.AckEmoji == "" {
		cfg.AckEmoji = "✅"
	}

	cfg.CronSpecRollover = os.Getenv("CRON_SPEC_ROLLOVER")
	if cfg.CronSpecRollover == "" {
		cfg.CronSpecRollover = "5 0 * * 1" // Monday 00:05
	}

	cfg.CronSpecDaily = os.Getenv("CRON_SPEC_DAILY")
	if cfg.CronSpecDaily == "" {
		cfg.CronSpecDaily = "0 8 * * 2-5" // 08:00 Tue-Fri, skipping the rollover day
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}

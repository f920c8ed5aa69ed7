package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/seojun-park/injeungbot/internal/common/clock"
	"github.com/seojun-park/injeungbot/internal/common/uuid"
	"github.com/seojun-park/injeungbot/internal/handlers/discord"
	"github.com/seojun-park/injeungbot/internal/infra/config"
	"github.com/seojun-park/injeungbot/internal/infra/logger"
	"github.com/seojun-park/injeungbot/internal/infra/scheduler"
	"github.com/seojun-park/injeungbot/internal/repositories/attendance"
	challengeService "github.com/seojun-park/injeungbot/internal/services/challenge"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load time zone %s: %v", cfg.Timezone, err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repository
	attendanceRepo, err := attendance.NewRedis(&attendance.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create attendance repository: %v", err)
	}

	// Initialize the Discord session and transport adapter
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsGuildMembers | discordgo.IntentMessageContent

	adapter, err := discord.NewAdapter(session, cfg.GuildID)
	if err != nil {
		log.Fatalf("Failed to create Discord adapter: %v", err)
	}

	self, err := session.User("@me")
	if err != nil {
		log.Fatalf("Failed to look up bot user: %v", err)
	}

	systemClock := &clock.DefaultClock{}
	uuidGen := uuid.New()

	// Initialize challenge service
	challengeSvc, err := challengeService.New(&challengeService.Config{
		SlotsPerWeek:        cfg.SlotsPerWeek,
		WeekendPolicy:       cfg.WeekendPolicy,
		AutoCreateOnMissing: cfg.AutoCreateOnMention,
		GraceEndHour:        cfg.GraceEndHour,
		Location:            loc,
		BotUserID:           self.ID,
		AckEmoji:            cfg.AckEmoji,
		AttendanceRepo:      attendanceRepo,
		Messenger:           adapter,
		Roster:              adapter,
		Clock:               systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create challenge service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		ChannelID:        cfg.ChannelID,
		ChallengeService: challengeSvc,
		Clock:            systemClock,
		UUIDGen:          uuidGen,
		Logger:           log,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Initialize the scheduled triggers
	sched := scheduler.New(challengeSvc, systemClock, log, loc, cfg.ChannelID, cfg.CronSpecRollover, cfg.CronSpecDaily)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Wait for a termination signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down...")
	sched.Stop()
	if err := bot.Stop(); err != nil {
		log.Warnf("Error stopping bot: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Warnf("Error closing Redis client: %v", err)
	}
}

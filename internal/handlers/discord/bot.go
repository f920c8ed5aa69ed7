package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/seojun-park/injeungbot/internal/common/clock"
	"github.com/seojun-park/injeungbot/internal/common/uuid"
	"github.com/seojun-park/injeungbot/internal/services/challenge"
	"github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	challengeService challenge.Service
	clock            clock.Clock
	uuidGen          uuid.UUID
	logger           *logrus.Logger
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord session, already constructed with the bot token
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Guild the cohort lives in
	GuildID string

	// Cohort channel; mentions outside it are ignored. Empty means any
	// channel.
	ChannelID string

	// Challenge service
	ChallengeService challenge.Service

	// Common dependencies
	Clock   clock.Clock
	UUIDGen uuid.UUID
	Logger  *logrus.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.ChallengeService == nil {
		return nil, errors.New("challenge service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUIDGen == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	bot := &Bot{
		session:          cfg.Session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		challengeService: cfg.ChallengeService,
		clock:            cfg.Clock,
		uuidGen:          cfg.UUIDGen,
		logger:           cfg.Logger,
		config:           cfg,
	}

	// Register the event handlers
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start opens the Discord connection and registers the slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewStartChallengeCommand(b)); err != nil {
		return fmt.Errorf("failed to register start-challenge command: %w", err)
	}

	if err := b.RegisterCommand(NewDeleteChallengeCommand(b)); err != nil {
		return fmt.Errorf("failed to register delete-challenge command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop deregisters the commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" && b.session.State != nil && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}

	for name, commandID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, commandID); err != nil {
			b.logger.WithError(err).Warnf("failed to delete command %s", name)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command handler with Discord
func (b *Bot) RegisterCommand(handler CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" && b.session.State != nil && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}

	command, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, handler.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", handler.GetName(), err)
	}

	b.commands[handler.GetName()] = handler
	b.commandIDs[handler.GetName()] = command.ID

	return nil
}

// handleInteraction dispatches an interaction to the matching command
// handler. Any handler error is contained here and reported as one generic
// notice.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	handler, ok := b.commands[name]
	if !ok {
		return
	}

	if err := handler.Handle(s, i); err != nil {
		b.logger.WithError(err).WithField("command", name).Error("command handler failed")
		if followErr := FollowUp(s, i, genericFailureNotice); followErr != nil {
			b.logger.WithError(followErr).Warn("failed to send failure notice")
		}
	}
}

// opLogger returns a log entry tagged with the operation name and a fresh
// operation ID for correlation
func (b *Bot) opLogger(op string) *logrus.Entry {
	return b.logger.WithFields(logrus.Fields{
		"op":    op,
		"op_id": b.uuidGen.NewUUID(),
	})
}

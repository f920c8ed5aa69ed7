package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/seojun-park/injeungbot/internal/services/challenge"
	"github.com/sirupsen/logrus"
)

// StartChallengeCommand handles the /start-challenge command
type StartChallengeCommand struct {
	BaseCommand
	bot *Bot
}

// NewStartChallengeCommand creates a new start-challenge command handler
func NewStartChallengeCommand(bot *Bot) *StartChallengeCommand {
	return &StartChallengeCommand{
		BaseCommand: BaseCommand{
			Name:        "start-challenge",
			Description: "이번 주 인증 챌린지 메시지를 올립니다",
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the start-challenge command
func (c *StartChallengeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand || i.ApplicationCommandData().Name != c.Name {
		return nil
	}

	// Acknowledge immediately; the outcome follows as a reply
	if err := AcknowledgeInteraction(s, i); err != nil {
		return err
	}

	log := c.bot.opLogger("start-challenge")

	output, err := c.bot.challengeService.PostChallenge(context.Background(), &challenge.PostChallengeInput{
		ChannelID: i.ChannelID,
		Now:       c.bot.clock.Now(),
	})
	if err != nil {
		log.WithError(err).Error("start-challenge failed")
		return FollowUp(s, i, noticeForCheckInError(err))
	}

	log.WithFields(logrus.Fields{
		"week_id":    output.WeekID,
		"message_id": output.MessageID,
	}).Info("challenge posted")

	return FollowUp(s, i, renderStartChallengeNotice(output))
}

// DeleteChallengeCommand handles the /delete-challenge command
type DeleteChallengeCommand struct {
	BaseCommand
	bot *Bot
}

// NewDeleteChallengeCommand creates a new delete-challenge command handler
func NewDeleteChallengeCommand(bot *Bot) *DeleteChallengeCommand {
	return &DeleteChallengeCommand{
		BaseCommand: BaseCommand{
			Name:        "delete-challenge",
			Description: "이번 주 인증 기록을 삭제합니다",
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the delete-challenge command
func (c *DeleteChallengeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand || i.ApplicationCommandData().Name != c.Name {
		return nil
	}

	if err := AcknowledgeInteraction(s, i); err != nil {
		return err
	}

	log := c.bot.opLogger("delete-challenge")

	output, err := c.bot.challengeService.DeleteWeek(context.Background(), &challenge.DeleteWeekInput{
		Now: c.bot.clock.Now(),
	})
	if err != nil {
		log.WithError(err).Error("delete-challenge failed")
		return FollowUp(s, i, genericFailureNotice)
	}

	log.WithFields(logrus.Fields{
		"week_id":       output.WeekID,
		"deleted_count": output.DeletedCount,
	}).Info("challenge deleted")

	return FollowUp(s, i, renderDeleteWeekNotice(output))
}

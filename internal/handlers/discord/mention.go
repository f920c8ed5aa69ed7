package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/seojun-park/injeungbot/internal/services/challenge"
	"github.com/sirupsen/logrus"
)

// handleMessageCreate treats a message that mentions the bot in the cohort
// channel as a check-in attempt. Rejections and failures are reported as a
// threaded reply; accepted check-ins are acknowledged by the service's
// reaction.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if b.config.ChannelID != "" && m.ChannelID != b.config.ChannelID {
		return
	}

	if !b.mentionsBot(s, m) {
		return
	}

	log := b.opLogger("record-check-in").WithFields(logrus.Fields{
		"sender_id":  m.Author.ID,
		"message_id": m.ID,
	})

	output, err := b.challengeService.RecordCheckIn(context.Background(), &challenge.RecordCheckInInput{
		ChannelID:      m.ChannelID,
		SenderID:       m.Author.ID,
		Text:           m.Content,
		EventTime:      m.Timestamp,
		EventMessageID: m.ID,
		Now:            b.clock.Now(),
	})
	if err != nil {
		// Validation rejections are expected outcomes; only unexpected
		// errors are logged at error level
		if notice := noticeForCheckInError(err); notice != genericFailureNotice {
			log.WithError(err).Debug("check-in rejected")
			b.reply(m, notice)
		} else {
			log.WithError(err).Error("check-in failed")
			b.reply(m, genericFailureNotice)
		}
		return
	}

	log = log.WithFields(logrus.Fields{
		"week_id":     output.WeekID,
		"participant": output.Participant,
		"day":         output.Day,
	})

	if output.AlreadyMarked {
		log.Info("duplicate check-in ignored")
		return
	}

	if output.AckFailed {
		log.Warn("check-in recorded but reaction failed")
	} else {
		log.Info("check-in recorded")
	}
}

// mentionsBot reports whether the message mentions the bot user
func (b *Bot) mentionsBot(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if s.State == nil || s.State.User == nil {
		return false
	}

	for _, user := range m.Mentions {
		if user.ID == s.State.User.ID {
			return true
		}
	}

	return false
}

// reply sends a threaded reply to the triggering message; a failed reply is
// only logged
func (b *Bot) reply(m *discordgo.MessageCreate, text string) {
	if _, err := b.session.ChannelMessageSendReply(m.ChannelID, text, m.Reference()); err != nil {
		b.logger.WithError(err).Warn("failed to send reply")
	}
}

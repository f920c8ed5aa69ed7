package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/seojun-park/injeungbot/internal/platform"
)

// Adapter implements the platform.Messenger and platform.Roster interfaces
// over a Discord session
type Adapter struct {
	session *discordgo.Session
	guildID string
}

// NewAdapter creates a new Discord transport adapter
func NewAdapter(session *discordgo.Session, guildID string) (*Adapter, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if guildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	return &Adapter{
		session: session,
		guildID: guildID,
	}, nil
}

// PostMessage posts a new channel message
func (a *Adapter) PostMessage(ctx context.Context, input *platform.PostMessageInput) (*platform.PostMessageOutput, error) {
	message, err := a.session.ChannelMessageSend(input.ChannelID, input.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	return &platform.PostMessageOutput{
		MessageID: message.ID,
	}, nil
}

// UpdateMessage edits a channel message in place. A vanished message is
// reported as UpdateStatusNotFound rather than an error so the caller can
// recover the stale handle.
func (a *Adapter) UpdateMessage(ctx context.Context, input *platform.UpdateMessageInput) (*platform.UpdateMessageOutput, error) {
	_, err := a.session.ChannelMessageEdit(input.ChannelID, input.MessageID, input.Text)
	if err != nil {
		if isUnknownMessage(err) {
			return &platform.UpdateMessageOutput{
				Status: platform.UpdateStatusNotFound,
			}, nil
		}
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	return &platform.UpdateMessageOutput{
		Status: platform.UpdateStatusOK,
	}, nil
}

// AddReaction places a reaction on a message
func (a *Adapter) AddReaction(ctx context.Context, input *platform.AddReactionInput) error {
	if err := a.session.MessageReactionAdd(input.ChannelID, input.MessageID, input.Emoji); err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}

	return nil
}

// ListParticipants returns the display names of the guild's human members,
// excluding bots and the configured bot user
func (a *Adapter) ListParticipants(ctx context.Context, input *platform.ListParticipantsInput) (*platform.ListParticipantsOutput, error) {
	var names []string

	after := ""
	for {
		members, err := a.session.GuildMembers(a.guildID, after, 1000)
		if err != nil {
			return nil, fmt.Errorf("failed to list guild members: %w", err)
		}

		if len(members) == 0 {
			break
		}

		var cursor string
		names, cursor = appendParticipants(names, members, input.ExcludeUserID)
		if cursor == "" {
			break
		}

		after = cursor
		if len(members) < 1000 {
			break
		}
	}

	return &platform.ListParticipantsOutput{
		Names: names,
	}, nil
}

// appendParticipants collects the page's human display names and returns the
// pagination cursor, the ID of the page's last member that carries a user.
// An empty cursor means the page had no usable member to advance past.
func appendParticipants(names []string, members []*discordgo.Member, excludeUserID string) ([]string, string) {
	cursor := ""
	for _, member := range members {
		if member.User == nil {
			continue
		}

		cursor = member.User.ID

		if member.User.Bot || member.User.ID == excludeUserID {
			continue
		}
		names = append(names, displayName(member))
	}

	return names, cursor
}

// ResolveDisplayName resolves a user ID to its guild display name
func (a *Adapter) ResolveDisplayName(ctx context.Context, input *platform.ResolveDisplayNameInput) (*platform.ResolveDisplayNameOutput, error) {
	member, err := a.session.GuildMember(a.guildID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve member %s: %w", input.UserID, err)
	}

	return &platform.ResolveDisplayNameOutput{
		Name: displayName(member),
	}, nil
}

// displayName prefers the guild nickname over the account username
func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	return member.User.Username
}

// isUnknownMessage reports whether err is Discord's "unknown message"
// REST error
func isUnknownMessage(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}

	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMessage {
		return true
	}

	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

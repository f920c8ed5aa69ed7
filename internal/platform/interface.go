// Package platform defines the chat-transport boundary the orchestration
// core depends on. Implementations live in the handler layer; the core
// only sends, updates, and reacts to messages and resolves the channel
// roster through these interfaces.
package platform

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/seojun-park/injeungbot/internal/platform Messenger,Roster

import (
	"context"
)

// Messenger defines the outbound message operations the core needs
type Messenger interface {
	// PostMessage posts a new message and returns its platform-assigned ID
	PostMessage(ctx context.Context, input *PostMessageInput) (*PostMessageOutput, error)

	// UpdateMessage edits an existing message in place. A message that no
	// longer exists is reported via UpdateStatusNotFound, not an error.
	UpdateMessage(ctx context.Context, input *UpdateMessageInput) (*UpdateMessageOutput, error)

	// AddReaction places an acknowledgement reaction on a message
	AddReaction(ctx context.Context, input *AddReactionInput) error
}

// Roster defines the participant-identity operations the core needs
type Roster interface {
	// ListParticipants returns the display names of the channel's human
	// members, excluding the bot itself
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// ResolveDisplayName resolves a user ID to its display name
	ResolveDisplayName(ctx context.Context, input *ResolveDisplayNameInput) (*ResolveDisplayNameOutput, error)
}

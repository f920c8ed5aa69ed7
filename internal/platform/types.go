package platform

// UpdateStatus is the tagged result of a message update. An explicit status
// replaces string-matching platform error codes to detect a vanished
// message.
type UpdateStatus string

const (
	// UpdateStatusOK indicates the message was edited in place
	UpdateStatusOK UpdateStatus = "ok"

	// UpdateStatusNotFound indicates the message no longer exists and its
	// handle is stale
	UpdateStatusNotFound UpdateStatus = "not_found"
)

// PostMessageInput holds parameters for posting a new message
type PostMessageInput struct {
	// ChannelID is the channel to post in
	ChannelID string

	// Text is the message body
	Text string
}

// PostMessageOutput reports the result of posting a message
type PostMessageOutput struct {
	// MessageID is the platform-assigned identifier of the new message
	MessageID string
}

// UpdateMessageInput holds parameters for editing a message in place
type UpdateMessageInput struct {
	// ChannelID is the channel the message lives in
	ChannelID string

	// MessageID identifies the message to edit
	MessageID string

	// Text is the replacement body
	Text string
}

// UpdateMessageOutput reports the result of a message edit
type UpdateMessageOutput struct {
	// Status distinguishes a successful edit from a stale handle
	Status UpdateStatus
}

// AddReactionInput holds parameters for reacting to a message
type AddReactionInput struct {
	// ChannelID is the channel the message lives in
	ChannelID string

	// MessageID identifies the message to react to
	MessageID string

	// Emoji is the reaction emoji
	Emoji string
}

// ListParticipantsInput holds parameters for listing channel participants
type ListParticipantsInput struct {
	// ChannelID is the channel whose members to list
	ChannelID string

	// ExcludeUserID is the bot's own user ID, always excluded
	ExcludeUserID string
}

// ListParticipantsOutput reports the channel's human participants
type ListParticipantsOutput struct {
	// Names holds display names in the order the platform returned them
	Names []string
}

// ResolveDisplayNameInput holds parameters for resolving a display name
type ResolveDisplayNameInput struct {
	// UserID is the platform user ID to resolve
	UserID string
}

// ResolveDisplayNameOutput reports a resolved display name
type ResolveDisplayNameOutput struct {
	// Name is the user's display name in the channel
	Name string
}

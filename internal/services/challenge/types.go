package challenge

import (
	"time"

	"github.com/seojun-park/injeungbot/internal/common/clock"
	"github.com/seojun-park/injeungbot/internal/common/week"
	"github.com/seojun-park/injeungbot/internal/models"
	"github.com/seojun-park/injeungbot/internal/platform"
	"github.com/seojun-park/injeungbot/internal/repositories/attendance"
)

// Config holds configuration for the challenge service
type Config struct {
	// SlotsPerWeek is the number of day slots per record, 5 or 7
	SlotsPerWeek int

	// WeekendPolicy controls how weekend slots are seeded and marked
	WeekendPolicy models.WeekendPolicy

	// AutoCreateOnMissing makes a mention with no active challenge create
	// one instead of being rejected
	AutoCreateOnMissing bool

	// GraceEndHour closes the post-midnight window: check-ins are rejected
	// while the local hour is below this value. Zero disables the closure
	// entirely.
	GraceEndHour int

	// Location is the reference time zone for week identity. Defaults to
	// Asia/Seoul.
	Location *time.Location

	// BotUserID is the bot's own user ID, excluded from the roster
	BotUserID string

	// AckEmoji is the reaction placed on an accepted check-in
	AckEmoji string

	// Repository dependencies
	AttendanceRepo attendance.Repository

	// Transport dependencies
	Messenger platform.Messenger
	Roster    platform.Roster

	// Common dependencies
	Clock clock.Clock
}

// InitializeWeekInput holds parameters for initializing a week
type InitializeWeekInput struct {
	// ChannelID is the cohort channel
	ChannelID string

	// Now is the trigger time; the zero value means "the clock's now"
	Now time.Time
}

// InitializeWeekOutput reports the result of initializing a week
type InitializeWeekOutput struct {
	// WeekID is the cycle that was initialized
	WeekID week.ID

	// Participants holds the roster the record was built from, in order
	Participants []string
}

// PostChallengeInput holds parameters for posting the weekly summary message
type PostChallengeInput struct {
	// ChannelID is the cohort channel
	ChannelID string

	// Now is the trigger time; the zero value means "the clock's now"
	Now time.Time
}

// PostChallengeOutput reports the result of posting the summary message
type PostChallengeOutput struct {
	// WeekID is the active cycle
	WeekID week.ID

	// MessageID is the ID of the posted summary message
	MessageID string

	// ParticipantCount is the number of participants on the posted record
	ParticipantCount int

	// Initialized is true when the record was missing and the operation
	// fell back to initializing the week first
	Initialized bool
}

// RecordCheckInInput holds parameters for a mention-triggered check-in
type RecordCheckInInput struct {
	// ChannelID is the channel the mention arrived in
	ChannelID string

	// SenderID is the platform user ID of the sender
	SenderID string

	// Text is the mention's message text
	Text string

	// EventTime is the platform timestamp of the mention message
	EventTime time.Time

	// EventMessageID identifies the mention message, for the reaction
	EventMessageID string

	// Now is the processing time; the zero value means "the clock's now"
	Now time.Time
}

// RecordCheckInOutput reports the result of an accepted check-in
type RecordCheckInOutput struct {
	// WeekID is the active cycle
	WeekID week.ID

	// Participant is the resolved display name that was marked
	Participant string

	// Day is the 0-based slot index that was marked
	Day int

	// Mark is the slot's value after the operation
	Mark models.Mark

	// AlreadyMarked is true when the slot was marked before this check-in;
	// the record was not mutated
	AlreadyMarked bool

	// AckFailed is true when the record was persisted but the
	// acknowledgement reaction could not be placed
	AckFailed bool
}

// DeleteWeekInput holds parameters for deleting the current week
type DeleteWeekInput struct {
	// Now is the trigger time; the zero value means "the clock's now"
	Now time.Time
}

// DeleteWeekOutput reports the result of deleting the current week
type DeleteWeekOutput struct {
	// WeekID is the cycle that was targeted
	WeekID week.ID

	// DeletedCount is 1 when a record existed and was removed, 0 otherwise
	DeletedCount int64
}

package challenge

import "context"

// Service defines the interface for the weekly challenge lifecycle
type Service interface {
	// InitializeWeek builds and persists a fresh attendance record for the
	// week containing the trigger time, from the channel roster. It does
	// not post a message. Re-invocation overwrites the prior record.
	InitializeWeek(ctx context.Context, input *InitializeWeekInput) (*InitializeWeekOutput, error)

	// PostChallenge posts a new summary message for the current week and
	// persists its handle, initializing the week first if no record exists
	PostChallenge(ctx context.Context, input *PostChallengeInput) (*PostChallengeOutput, error)

	// RecordCheckIn validates a mention event and, if it qualifies, marks
	// the sender's slot for today, refreshes the summary message, persists
	// the record, and acknowledges the mention
	RecordCheckIn(ctx context.Context, input *RecordCheckInInput) (*RecordCheckInOutput, error)

	// DeleteWeek removes the current week's record and summary-message
	// reference, reporting whether a record existed to delete
	DeleteWeek(ctx context.Context, input *DeleteWeekInput) (*DeleteWeekOutput, error)
}

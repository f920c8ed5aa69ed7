package attendance

import (
	"github.com/seojun-park/injeungbot/internal/models"
)

// GetRecordInput holds parameters for retrieving a week's record
type GetRecordInput struct {
	// WeekID identifies the weekly cycle
	WeekID string
}

// SaveRecordInput holds parameters for persisting a week's record
type SaveRecordInput struct {
	// Record is the attendance record to persist
	Record *models.AttendanceRecord
}

// GetMessageRefInput holds parameters for retrieving a week's summary-message reference
type GetMessageRefInput struct {
	// WeekID identifies the weekly cycle
	WeekID string
}

// SaveMessageRefInput holds parameters for persisting a week's summary-message reference
type SaveMessageRefInput struct {
	// Message is the message reference to persist
	Message *models.ChallengeMessage
}

// DeleteWeekInput holds parameters for deleting a week's stored state
type DeleteWeekInput struct {
	// WeekID identifies the weekly cycle
	WeekID string
}

// DeleteWeekOutput reports the result of a week deletion
type DeleteWeekOutput struct {
	// DeletedCount is 1 when a record existed and was removed, 0 otherwise.
	// The message reference is removed in the same call but not counted.
	DeletedCount int64
}

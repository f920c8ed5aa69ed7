package attendance

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/seojun-park/injeungbot/internal/repositories/attendance Repository

import (
	"context"

	"github.com/seojun-park/injeungbot/internal/models"
)

// Repository defines the interface for weekly attendance persistence
type Repository interface {
	// GetRecord retrieves the attendance record for a week
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.AttendanceRecord, error)

	// SaveRecord persists an attendance record (last writer wins)
	SaveRecord(ctx context.Context, input *SaveRecordInput) error

	// GetMessageRef retrieves the summary-message reference for a week
	GetMessageRef(ctx context.Context, input *GetMessageRefInput) (*models.ChallengeMessage, error)

	// SaveMessageRef persists the summary-message reference for a week
	SaveMessageRef(ctx context.Context, input *SaveMessageRefInput) error

	// DeleteWeek removes a week's record and message reference, reporting
	// whether a record actually existed to delete
	DeleteWeek(ctx context.Context, input *DeleteWeekInput) (*DeleteWeekOutput, error)
}

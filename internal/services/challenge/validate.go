package challenge

import (
	"regexp"
	"time"

	"github.com/seojun-park/injeungbot/internal/common/week"
	"github.com/seojun-park/injeungbot/internal/models"
)

// linkPattern matches an absolute http(s) URL anywhere in the text
var linkPattern = regexp.MustCompile(`https?://[^\s]+`)

// CheckWindow returns ErrSubmissionWindowClosed when a check-in for the
// event can no longer be accepted at now: the event's calendar day has
// already passed, or now falls inside the post-midnight grace-closure
// window (local hour below graceEndHour).
func CheckWindow(eventTime, now time.Time, graceEndHour int, loc *time.Location) error {
	if now.In(loc).Hour() < graceEndHour {
		return ErrSubmissionWindowClosed
	}

	if !week.SameDay(eventTime, now, loc) && eventTime.In(loc).Before(now.In(loc)) {
		return ErrSubmissionWindowClosed
	}

	return nil
}

// CheckLink returns ErrMissingLink when the text carries no absolute
// http(s) URL
func CheckLink(text string) error {
	if !linkPattern.MatchString(text) {
		return ErrMissingLink
	}
	return nil
}

// CheckParticipant returns ErrUnknownParticipant when name is not a
// participant key of the record
func CheckParticipant(record *models.AttendanceRecord, name string) error {
	if !record.HasParticipant(name) {
		return ErrUnknownParticipant
	}
	return nil
}

// CheckSlot returns ErrNotACheckInDay when the record has no markable slot
// for the given day index: the index is past the sequence length (a
// weekend mention against a 5-slot week) or the slot was seeded
// MarkNotRequired.
func CheckSlot(record *models.AttendanceRecord, name string, day int) error {
	marks, ok := record.Marks[name]
	if !ok {
		return ErrUnknownParticipant
	}

	if day < 0 || day >= len(marks) {
		return ErrNotACheckInDay
	}

	if marks[day] == models.MarkNotRequired {
		return ErrNotACheckInDay
	}

	return nil
}

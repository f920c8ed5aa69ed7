package models

import (
	"time"
)

// Mark represents the per-day attendance state for one participant
type Mark string

const (
	// MarkPending indicates no check-in has been recorded for the day yet
	MarkPending Mark = "pending"

	// MarkDone indicates a valid weekday check-in
	MarkDone Mark = "done"

	// MarkDoneOptional indicates a valid check-in on an optional (weekend) day
	MarkDoneOptional Mark = "done_optional"

	// MarkNotRequired indicates the day never required a check-in
	MarkNotRequired Mark = "not_required"
)

// WeekendPolicy controls how weekend slots of a 7-day week are treated
type WeekendPolicy string

const (
	// WeekendPolicyOptional leaves weekend slots pending; weekend check-ins
	// record MarkDoneOptional
	WeekendPolicyOptional WeekendPolicy = "optional"

	// WeekendPolicyNotRequired pre-seeds weekend slots with MarkNotRequired
	// at initialization; weekend check-ins are not accepted
	WeekendPolicyNotRequired WeekendPolicy = "not_required"
)

// AttendanceRecord is one week's scoreboard: an ordered set of participants,
// each with a fixed-length sequence of day marks. The slot count is fixed at
// creation and index i always refers to the same weekday (0 = Monday).
type AttendanceRecord struct {
	// WeekID identifies the weekly cycle this record belongs to
	WeekID string

	// Names holds participant display names in initialization order.
	// The summary message renders lines in this order.
	Names []string

	// Marks maps a participant name to its day-mark sequence
	Marks map[string][]Mark

	// CreatedAt is when the record was initialized
	CreatedAt time.Time

	// UpdatedAt is when the record was last mutated
	UpdatedAt time.Time
}

// NewAttendanceRecord builds a fresh record for the given participants with
// every slot pending. With seven slots and WeekendPolicyNotRequired the two
// trailing weekend slots are seeded MarkNotRequired instead.
func NewAttendanceRecord(weekID string, names []string, slots int, policy WeekendPolicy, now time.Time) *AttendanceRecord {
	record := &AttendanceRecord{
		WeekID:    weekID,
		Names:     make([]string, 0, len(names)),
		Marks:     make(map[string][]Mark, len(names)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, name := range names {
		if _, exists := record.Marks[name]; exists {
			continue
		}

		marks := make([]Mark, slots)
		for i := range marks {
			if policy == WeekendPolicyNotRequired && i >= 5 {
				marks[i] = MarkNotRequired
			} else {
				marks[i] = MarkPending
			}
		}

		record.Names = append(record.Names, name)
		record.Marks[name] = marks
	}

	return record
}

// HasParticipant reports whether name is a registered participant
func (r *AttendanceRecord) HasParticipant(name string) bool {
	_, ok := r.Marks[name]
	return ok
}

// Slots returns the fixed slot count of the record
func (r *AttendanceRecord) Slots() int {
	for _, marks := range r.Marks {
		return len(marks)
	}
	return 0
}

// CheckIn applies mark to the participant's slot for the given day. It
// returns true when the slot transitioned from MarkPending, false when the
// slot was already marked or the day has no slot. Marks never revert.
func (r *AttendanceRecord) CheckIn(name string, day int, mark Mark, now time.Time) bool {
	marks, ok := r.Marks[name]
	if !ok || day < 0 || day >= len(marks) {
		return false
	}

	if marks[day] != MarkPending {
		return false
	}

	marks[day] = mark
	r.UpdatedAt = now
	return true
}

// ChallengeMessage associates a weekly cycle with the single summary message
// posted for it. At most one live message exists per week; a stale message
// ID is replaced, never treated as a permanent binding.
type ChallengeMessage struct {
	// WeekID identifies the weekly cycle the message belongs to
	WeekID string

	// ChannelID is the channel the message was posted in
	ChannelID string

	// MessageID is the platform-assigned identifier of the summary message
	MessageID string

	// PostedAt is when the message was (re)posted
	PostedAt time.Time
}

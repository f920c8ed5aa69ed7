package challenge

import "errors"

// Define errors
var (
	// ErrInitializationFailed signals a roster or store failure while
	// building a fresh week; no partial state is committed
	ErrInitializationFailed = errors.New("challenge initialization failed")

	// ErrNoActiveChallenge signals that no summary message exists for the
	// current week and auto-creation is disabled
	ErrNoActiveChallenge = errors.New("no active challenge for this week")

	// ErrSubmissionWindowClosed signals that the check-in window for the
	// event's day has passed
	ErrSubmissionWindowClosed = errors.New("submission window closed")

	// ErrMissingLink signals a submission without an http(s) link
	ErrMissingLink = errors.New("submission contains no link")

	// ErrUnknownParticipant signals a sender who is not in this week's record
	ErrUnknownParticipant = errors.New("unknown participant")

	// ErrNotACheckInDay signals a day with no slot in the week's sequence
	ErrNotACheckInDay = errors.New("no check-in slot for this day")

	// ErrStaleMessageHandle signals that the summary message could not be
	// updated even after reposting it once
	ErrStaleMessageHandle = errors.New("challenge message handle is stale")

	// Constructor validation errors
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilAttendanceRepo = errors.New("attendance repository cannot be nil")
	ErrNilMessenger      = errors.New("messenger cannot be nil")
	ErrNilRoster         = errors.New("roster cannot be nil")
	ErrNilClock          = errors.New("clock cannot be nil")
)

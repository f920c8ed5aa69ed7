package challenge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/seojun-park/injeungbot/internal/common/clock"
	"github.com/seojun-park/injeungbot/internal/common/week"
	"github.com/seojun-park/injeungbot/internal/models"
	"github.com/seojun-park/injeungbot/internal/platform"
	"github.com/seojun-park/injeungbot/internal/repositories/attendance"
)

// service implements the Service interface
type service struct {
	config    *Config
	repo      attendance.Repository
	messenger platform.Messenger
	roster    platform.Roster
	clock     clock.Clock
	loc       *time.Location

	// mu guards weekLocks and cache. Per-week locks serialize the
	// read-modify-write across the store calls of one mutation; the store
	// itself stays last-writer-wins across processes.
	mu        sync.Mutex
	weekLocks map[week.ID]*sync.Mutex

	// cache is write-through over the repository; the store is
	// authoritative and mutations reload from it before writing
	cache map[week.ID]*models.AttendanceRecord
}

// New creates a new challenge service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AttendanceRepo == nil {
		return nil, ErrNilAttendanceRepo
	}

	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	if cfg.Roster == nil {
		return nil, ErrNilRoster
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	// Set default values if not provided
	if cfg.SlotsPerWeek == 0 {
		cfg.SlotsPerWeek = 5
	}

	if cfg.WeekendPolicy == "" {
		cfg.WeekendPolicy = models.WeekendPolicyOptional
	}

	if cfg.AckEmoji == "" {
		cfg.AckEmoji = "✅"
	}

	if cfg.Location == nil {
		loc, err := time.LoadLocation(week.DefaultZoneName)
		if err != nil {
			return nil, fmt.Errorf("failed to load default time zone: %w", err)
		}
		cfg.Location = loc
	}

	return &service{
		config:    cfg,
		repo:      cfg.AttendanceRepo,
		messenger: cfg.Messenger,
		roster:    cfg.Roster,
		clock:     cfg.Clock,
		loc:       cfg.Location,
		weekLocks: make(map[week.ID]*sync.Mutex),
		cache:     make(map[week.ID]*models.AttendanceRecord),
	}, nil
}

// InitializeWeek builds and persists a fresh attendance record for the week
// containing the trigger time
func (s *service) InitializeWeek(ctx context.Context, input *InitializeWeekInput) (*InitializeWeekOutput, error) {
	now := s.resolveNow(input.Now)
	weekID := week.FromTime(now, s.loc)

	members, err := s.roster.ListParticipants(ctx, &platform.ListParticipantsInput{
		ChannelID:     input.ChannelID,
		ExcludeUserID: s.config.BotUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: roster lookup: %v", ErrInitializationFailed, err)
	}

	record := models.NewAttendanceRecord(string(weekID), members.Names, s.config.SlotsPerWeek, s.config.WeekendPolicy, now)

	if err := s.repo.SaveRecord(ctx, &attendance.SaveRecordInput{
		Record: record,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitializationFailed, err)
	}

	s.cacheRecord(weekID, record)

	return &InitializeWeekOutput{
		WeekID:       weekID,
		Participants: record.Names,
	}, nil
}

// PostChallenge posts a new summary message for the current week. A missing
// record triggers one initialization fallback; a record that is still
// missing afterwards is a fatal initialization failure and no message is
// sent.
func (s *service) PostChallenge(ctx context.Context, input *PostChallengeInput) (*PostChallengeOutput, error) {
	now := s.resolveNow(input.Now)
	weekID := week.FromTime(now, s.loc)

	initialized := false

	record, err := s.repo.GetRecord(ctx, &attendance.GetRecordInput{
		WeekID: string(weekID),
	})
	if errors.Is(err, attendance.ErrRecordNotFound) {
		if _, initErr := s.InitializeWeek(ctx, &InitializeWeekInput{
			ChannelID: input.ChannelID,
			Now:       now,
		}); initErr != nil {
			return nil, initErr
		}

		initialized = true
		record, err = s.repo.GetRecord(ctx, &attendance.GetRecordInput{
			WeekID: string(weekID),
		})
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: record missing after initialization", ErrInitializationFailed)
		}
	}
	if err != nil {
		return nil, err
	}

	s.cacheRecord(weekID, record)

	text := FormatScoreboard(record, now, s.loc)

	posted, err := s.messenger.PostMessage(ctx, &platform.PostMessageInput{
		ChannelID: input.ChannelID,
		Text:      text,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveMessageRef(ctx, &attendance.SaveMessageRefInput{
		Message: &models.ChallengeMessage{
			WeekID:    string(weekID),
			ChannelID: input.ChannelID,
			MessageID: posted.MessageID,
			PostedAt:  now,
		},
	}); err != nil {
		return nil, err
	}

	return &PostChallengeOutput{
		WeekID:           weekID,
		MessageID:        posted.MessageID,
		ParticipantCount: len(record.Names),
		Initialized:      initialized,
	}, nil
}

// RecordCheckIn processes a mention event as a check-in attempt. Rejections
// surface as the validation sentinel errors; an accepted check-in mutates
// exactly one slot, refreshes the summary message, persists the record, and
// reacts to the mention.
func (s *service) RecordCheckIn(ctx context.Context, input *RecordCheckInInput) (*RecordCheckInOutput, error) {
	now := s.resolveNow(input.Now)
	weekID := week.FromTime(now, s.loc)

	// The summary message must exist before check-ins are accepted, unless
	// auto-creation is enabled
	messageRef, err := s.repo.GetMessageRef(ctx, &attendance.GetMessageRefInput{
		WeekID: string(weekID),
	})
	if errors.Is(err, attendance.ErrMessageRefNotFound) {
		if !s.config.AutoCreateOnMissing {
			return nil, ErrNoActiveChallenge
		}

		if _, err := s.PostChallenge(ctx, &PostChallengeInput{
			ChannelID: input.ChannelID,
			Now:       now,
		}); err != nil {
			return nil, err
		}

		messageRef, err = s.repo.GetMessageRef(ctx, &attendance.GetMessageRefInput{
			WeekID: string(weekID),
		})
	}
	if err != nil {
		return nil, err
	}

	if err := CheckWindow(input.EventTime, now, s.config.GraceEndHour, s.loc); err != nil {
		return nil, err
	}

	if err := CheckLink(input.Text); err != nil {
		return nil, err
	}

	resolved, err := s.roster.ResolveDisplayName(ctx, &platform.ResolveDisplayNameInput{
		UserID: input.SenderID,
	})
	if err != nil {
		return nil, err
	}
	name := resolved.Name

	record, err := s.loadRecord(ctx, weekID)
	if err != nil {
		return nil, err
	}

	if err := CheckParticipant(record, name); err != nil {
		return nil, err
	}

	day := week.DayIndex(now, s.loc)
	if err := CheckSlot(record, name, day); err != nil {
		return nil, err
	}

	lock := s.weekLock(weekID)
	lock.Lock()
	defer lock.Unlock()

	// Reload from the store, not the cache, immediately before mutating
	record, err = s.repo.GetRecord(ctx, &attendance.GetRecordInput{
		WeekID: string(weekID),
	})
	if err != nil {
		return nil, err
	}

	// The freshly loaded record may differ from the prechecked one if the
	// week was re-initialized in between
	if err := CheckParticipant(record, name); err != nil {
		return nil, err
	}
	if err := CheckSlot(record, name, day); err != nil {
		return nil, err
	}

	mark := models.MarkDone
	if week.IsWeekend(now, s.loc) {
		mark = models.MarkDoneOptional
	}

	changed := record.CheckIn(name, day, mark, now)

	output := &RecordCheckInOutput{
		WeekID:        weekID,
		Participant:   name,
		Day:           day,
		Mark:          record.Marks[name][day],
		AlreadyMarked: !changed,
	}

	// A repeat check-in on the same day changes nothing: no message
	// update, no second persistence, no second reaction
	if !changed {
		return output, nil
	}

	text := FormatScoreboard(record, now, s.loc)
	if _, err := s.syncMessage(ctx, weekID, messageRef, text); err != nil {
		return nil, err
	}

	if err := s.repo.SaveRecord(ctx, &attendance.SaveRecordInput{
		Record: record,
	}); err != nil {
		return nil, err
	}

	s.cacheRecord(weekID, record)

	// The record is already persisted; a failed reaction is reported, not
	// rolled back
	if err := s.messenger.AddReaction(ctx, &platform.AddReactionInput{
		ChannelID: input.ChannelID,
		MessageID: input.EventMessageID,
		Emoji:     s.config.AckEmoji,
	}); err != nil {
		output.AckFailed = true
	}

	return output, nil
}

// DeleteWeek removes the current week's stored state and evicts it from the
// cache
func (s *service) DeleteWeek(ctx context.Context, input *DeleteWeekInput) (*DeleteWeekOutput, error) {
	now := s.resolveNow(input.Now)
	weekID := week.FromTime(now, s.loc)

	lock := s.weekLock(weekID)
	lock.Lock()
	defer lock.Unlock()

	deleted, err := s.repo.DeleteWeek(ctx, &attendance.DeleteWeekInput{
		WeekID: string(weekID),
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.cache, weekID)
	s.mu.Unlock()

	return &DeleteWeekOutput{
		WeekID:       weekID,
		DeletedCount: deleted.DeletedCount,
	}, nil
}

// syncMessage updates the summary message at the stored handle. A stale
// handle is recovered exactly once: post a replacement, persist its
// reference, retry the update against it.
func (s *service) syncMessage(ctx context.Context, weekID week.ID, ref *models.ChallengeMessage, text string) (*models.ChallengeMessage, error) {
	updated, err := s.messenger.UpdateMessage(ctx, &platform.UpdateMessageInput{
		ChannelID: ref.ChannelID,
		MessageID: ref.MessageID,
		Text:      text,
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == platform.UpdateStatusOK {
		return ref, nil
	}

	posted, err := s.messenger.PostMessage(ctx, &platform.PostMessageInput{
		ChannelID: ref.ChannelID,
		Text:      text,
	})
	if err != nil {
		return nil, err
	}

	fresh := &models.ChallengeMessage{
		WeekID:    string(weekID),
		ChannelID: ref.ChannelID,
		MessageID: posted.MessageID,
		PostedAt:  s.clock.Now(),
	}

	if err := s.repo.SaveMessageRef(ctx, &attendance.SaveMessageRefInput{
		Message: fresh,
	}); err != nil {
		return nil, err
	}

	updated, err = s.messenger.UpdateMessage(ctx, &platform.UpdateMessageInput{
		ChannelID: fresh.ChannelID,
		MessageID: fresh.MessageID,
		Text:      text,
	})
	if err != nil {
		return nil, err
	}

	if updated.Status != platform.UpdateStatusOK {
		return nil, ErrStaleMessageHandle
	}

	return fresh, nil
}

// loadRecord returns the cached record for the week, falling back to the
// store. Mutation paths reload from the store again under the week lock.
func (s *service) loadRecord(ctx context.Context, weekID week.ID) (*models.AttendanceRecord, error) {
	s.mu.Lock()
	record, ok := s.cache[weekID]
	s.mu.Unlock()
	if ok {
		return record, nil
	}

	record, err := s.repo.GetRecord(ctx, &attendance.GetRecordInput{
		WeekID: string(weekID),
	})
	if err != nil {
		return nil, err
	}

	s.cacheRecord(weekID, record)
	return record, nil
}

func (s *service) cacheRecord(weekID week.ID, record *models.AttendanceRecord) {
	s.mu.Lock()
	s.cache[weekID] = record
	s.mu.Unlock()
}

func (s *service) weekLock(weekID week.ID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.weekLocks[weekID]
	if !ok {
		lock = &sync.Mutex{}
		s.weekLocks[weekID] = lock
	}

	return lock
}

func (s *service) resolveNow(now time.Time) time.Time {
	if now.IsZero() {
		return s.clock.Now()
	}
	return now
}

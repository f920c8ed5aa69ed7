package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/seojun-park/injeungbot/internal/common/clock/mocks"
	"github.com/seojun-park/injeungbot/internal/common/week"
	"github.com/seojun-park/injeungbot/internal/models"
	"github.com/seojun-park/injeungbot/internal/platform"
	platformMocks "github.com/seojun-park/injeungbot/internal/platform/mocks"
	"github.com/seojun-park/injeungbot/internal/repositories/attendance"
	attendanceMocks "github.com/seojun-park/injeungbot/internal/repositories/attendance/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChallengeServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *attendanceMocks.MockRepository
	mockMessenger *platformMocks.MockMessenger
	mockRoster    *platformMocks.MockRoster
	mockClock     *clockMocks.MockClock
	service       Service
	ctx           context.Context
	loc           *time.Location

	// Test data
	testTime      time.Time // Monday, 2nd week of March
	testWeekID    week.ID
	testChannelID string
	testSenderID  string
	testMessageID string
	testEventID   string

	// Reusable test fixtures
	testMessageRef *models.ChallengeMessage
}

func (s *ChallengeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = attendanceMocks.NewMockRepository(s.mockCtrl)
	s.mockMessenger = platformMocks.NewMockMessenger(s.mockCtrl)
	s.mockRoster = platformMocks.NewMockRoster(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	loc, err := time.LoadLocation("Asia/Seoul")
	s.Require().NoError(err)
	s.loc = loc

	// Initialize test data
	s.testTime = time.Date(2026, 3, 2, 12, 0, 0, 0, s.loc)
	s.testWeekID = week.ID("2026-W10")
	s.testChannelID = "test-channel-id"
	s.testSenderID = "test-sender-id"
	s.testMessageID = "test-message-id"
	s.testEventID = "test-event-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.testMessageRef = &models.ChallengeMessage{
		WeekID:    string(s.testWeekID),
		ChannelID: s.testChannelID,
		MessageID: s.testMessageID,
		PostedAt:  s.testTime,
	}

	s.service = s.newService(nil)
}

func (s *ChallengeServiceTestSuite) newService(mutate func(*Config)) Service {
	cfg := &Config{
		SlotsPerWeek:   5,
		WeekendPolicy:  models.WeekendPolicyOptional,
		GraceEndHour:   1,
		Location:       s.loc,
		BotUserID:      "test-bot-id",
		AckEmoji:       "✅",
		AttendanceRepo: s.mockRepo,
		Messenger:      s.mockMessenger,
		Roster:         s.mockRoster,
		Clock:          s.mockClock,
	}
	if mutate != nil {
		mutate(cfg)
	}

	svc, err := New(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *ChallengeServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChallengeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChallengeServiceTestSuite))
}

func (s *ChallengeServiceTestSuite) newTestRecord() *models.AttendanceRecord {
	return models.NewAttendanceRecord(string(s.testWeekID), []string{"Alice", "Bob"}, 5, models.WeekendPolicyOptional, s.testTime)
}

func (s *ChallengeServiceTestSuite) checkInInput() *RecordCheckInInput {
	return &RecordCheckInInput{
		ChannelID:      s.testChannelID,
		SenderID:       s.testSenderID,
		Text:           "<@test-bot-id> 오늘도 완료! https://github.com/alice/til/pull/3",
		EventTime:      s.testTime.Add(-time.Hour),
		EventMessageID: s.testEventID,
		Now:            s.testTime,
	}
}

func (s *ChallengeServiceTestSuite) expectResolveName(name string) {
	s.mockRoster.EXPECT().ResolveDisplayName(gomock.Any(), &platform.ResolveDisplayNameInput{
		UserID: s.testSenderID,
	}).Return(&platform.ResolveDisplayNameOutput{Name: name}, nil)
}

const mondayScoreboard = "3월 2주차 [월요일] 인증 기록\n" +
	"Alice : ❌❌❌❌❌\n" +
	"Bob : ❌❌❌❌❌\n"

const mondayScoreboardAliceDone = "3월 2주차 [월요일] 인증 기록\n" +
	"Alice : ✅❌❌❌❌\n" +
	"Bob : ❌❌❌❌❌\n"

func (s *ChallengeServiceTestSuite) TestInitializeWeek() {
	s.mockRoster.EXPECT().ListParticipants(gomock.Any(), &platform.ListParticipantsInput{
		ChannelID:     s.testChannelID,
		ExcludeUserID: "test-bot-id",
	}).Return(&platform.ListParticipantsOutput{Names: []string{"Alice", "Bob"}}, nil)

	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *attendance.SaveRecordInput) error {
			s.Equal(string(s.testWeekID), input.Record.WeekID)
			s.Equal([]string{"Alice", "Bob"}, input.Record.Names)
			s.Equal([]models.Mark{
				models.MarkPending, models.MarkPending, models.MarkPending,
				models.MarkPending, models.MarkPending,
			}, input.Record.Marks["Alice"])
			return nil
		})

	output, err := s.service.InitializeWeek(s.ctx, &InitializeWeekInput{
		ChannelID: s.testChannelID,
		Now:       s.testTime,
	})

	s.Require().NoError(err)
	s.Equal(s.testWeekID, output.WeekID)
	s.Equal([]string{"Alice", "Bob"}, output.Participants)
}

func (s *ChallengeServiceTestSuite) TestInitializeWeekRosterFailure() {
	s.mockRoster.EXPECT().ListParticipants(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("membership lookup failed"))

	_, err := s.service.InitializeWeek(s.ctx, &InitializeWeekInput{
		ChannelID: s.testChannelID,
		Now:       s.testTime,
	})

	s.ErrorIs(err, ErrInitializationFailed)
}

func (s *ChallengeServiceTestSuite) TestInitializeWeekStoreFailure() {
	s.mockRoster.EXPECT().ListParticipants(gomock.Any(), gomock.Any()).
		Return(&platform.ListParticipantsOutput{Names: []string{"Alice"}}, nil)
	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).
		Return(errors.New("write failed"))

	_, err := s.service.InitializeWeek(s.ctx, &InitializeWeekInput{
		ChannelID: s.testChannelID,
		Now:       s.testTime,
	})

	s.ErrorIs(err, ErrInitializationFailed)
}

func (s *ChallengeServiceTestSuite) TestPostChallenge() {
	record := s.newTestRecord()

	s.mockRepo.EXPECT().GetRecord(gomock.Any(), &attendance.GetRecordInput{
		WeekID: string(s.testWeekID),
	}).Return(record, nil)

	s.mockMessenger.EXPECT().PostMessage(gomock.Any(), &platform.PostMessageInput{
		ChannelID: s.testChannelID,
		Text:      mondayScoreboard,
	}).Return(&platform.PostMessageOutput{MessageID: s.testMessageID}, nil)

	s.mockRepo.EXPECT().SaveMessageRef(gomock.Any(), &attendance.SaveMessageRefInput{
		Message: s.testMessageRef,
	}).Return(nil)

	output, err := s.service.PostChallenge(s.ctx, &PostChallengeInput{
		ChannelID: s.testChannelID,
		Now:       s.testTime,
	})

	s.Require().NoError(err)
	s.Equal(s.testWeekID, output.WeekID)
	s.Equal(s.testMessageID, output.MessageID)
	s.Equal(2, output.ParticipantCount)
	s.False(output.Initialized)
}

func (s *ChallengeServiceTestSuite) TestPostChallengeInitializesMissingWeek() {
	record := s.newTestRecord()

	gomock.InOrder(
		s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).
			Return(nil, attendance.ErrRecordNotFound),
		s.mockRoster.EXPECT().ListParticipants(gomock.Any(), gomock.Any()).
			Return(&platform.ListParticipantsOutput{Names: []string{"Alice", "Bob"}}, nil),
		s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil),
		s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil),
		s.mockMessenger.EXPECT().PostMessage(gomock.Any(), gomock.Any()).
			Return(&platform.PostMessageOutput{MessageID: s.testMessageID}, nil),
		s.mockRepo.EXPECT().SaveMessageRef(gomock.Any(), gomock.Any()).Return(nil),
	)

	output, err := s.service.PostChallenge(s.ctx, &PostChallengeInput{
		ChannelID: s.testChannelID,
		Now:       s.testTime,
	})

	s.Require().NoError(err)
	s.True(output.Initialized)
}

func (s *ChallengeServiceTestSuite) TestPostChallengeInitializationFailure() {
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).
		Return(nil, attendance.ErrRecordNotFound)
	s.mockRoster.EXPECT().ListParticipants(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("membership lookup failed"))

	_, err := s.service.PostChallenge(s.ctx, &PostChallengeInput{
		ChannelID: s.testChannelID,
		Now:       s.testTime,
	})

	s.ErrorIs(err, ErrInitializationFailed)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckIn() {
	record := s.newTestRecord()

	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), &attendance.GetMessageRefInput{
		WeekID: string(s.testWeekID),
	}).Return(s.testMessageRef, nil)

	s.expectResolveName("Alice")

	// Once for the membership precheck, once reloading under the week lock
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), &attendance.GetRecordInput{
		WeekID: string(s.testWeekID),
	}).Return(record, nil).Times(2)

	s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), &platform.UpdateMessageInput{
		ChannelID: s.testChannelID,
		MessageID: s.testMessageID,
		Text:      mondayScoreboardAliceDone,
	}).Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusOK}, nil)

	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *attendance.SaveRecordInput) error {
			s.Equal(models.MarkDone, input.Record.Marks["Alice"][0])
			s.Equal(models.MarkPending, input.Record.Marks["Bob"][0])
			return nil
		})

	s.mockMessenger.EXPECT().AddReaction(gomock.Any(), &platform.AddReactionInput{
		ChannelID: s.testChannelID,
		MessageID: s.testEventID,
		Emoji:     "✅",
	}).Return(nil)

	output, err := s.service.RecordCheckIn(s.ctx, s.checkInInput())

	s.Require().NoError(err)
	s.Equal(s.testWeekID, output.WeekID)
	s.Equal("Alice", output.Participant)
	s.Equal(0, output.Day)
	s.Equal(models.MarkDone, output.Mark)
	s.False(output.AlreadyMarked)
	s.False(output.AckFailed)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInDuplicateIsIdempotent() {
	record := s.newTestRecord()
	record.CheckIn("Alice", 0, models.MarkDone, s.testTime)

	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)
	s.expectResolveName("Alice")
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil).Times(2)

	// No message update, no persistence, no second reaction

	output, err := s.service.RecordCheckIn(s.ctx, s.checkInInput())

	s.Require().NoError(err)
	s.True(output.AlreadyMarked)
	s.Equal(models.MarkDone, output.Mark)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInNoActiveChallenge() {
	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).
		Return(nil, attendance.ErrMessageRefNotFound)

	_, err := s.service.RecordCheckIn(s.ctx, s.checkInInput())

	s.ErrorIs(err, ErrNoActiveChallenge)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInAutoCreatesWhenEnabled() {
	service := s.newService(func(cfg *Config) {
		cfg.AutoCreateOnMissing = true
	})
	record := s.newTestRecord()

	gomock.InOrder(
		s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).
			Return(nil, attendance.ErrMessageRefNotFound),
		s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).
			Return(nil, attendance.ErrRecordNotFound),
		s.mockRoster.EXPECT().ListParticipants(gomock.Any(), gomock.Any()).
			Return(&platform.ListParticipantsOutput{Names: []string{"Alice", "Bob"}}, nil),
		s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil),
		s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil),
		s.mockMessenger.EXPECT().PostMessage(gomock.Any(), gomock.Any()).
			Return(&platform.PostMessageOutput{MessageID: s.testMessageID}, nil),
		s.mockRepo.EXPECT().SaveMessageRef(gomock.Any(), gomock.Any()).Return(nil),
		s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).
			Return(s.testMessageRef, nil),
	)

	s.expectResolveName("Alice")

	// The record is cached by the auto-create path; only the locked reload
	// hits the store again
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil)
	s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).
		Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusOK}, nil)
	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().AddReaction(gomock.Any(), gomock.Any()).Return(nil)

	output, err := service.RecordCheckIn(s.ctx, s.checkInInput())

	s.Require().NoError(err)
	s.Equal("Alice", output.Participant)
	s.False(output.AlreadyMarked)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInWindowClosedPreviousDay() {
	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)

	input := s.checkInInput()
	input.EventTime = s.testTime.AddDate(0, 0, -1) // Sunday's event processed Monday

	_, err := s.service.RecordCheckIn(s.ctx, input)

	s.ErrorIs(err, ErrSubmissionWindowClosed)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInGraceHourZeroDisablesClosure() {
	service := s.newService(func(cfg *Config) {
		cfg.GraceEndHour = 0
	})
	record := s.newTestRecord()

	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)
	s.expectResolveName("Alice")
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil).Times(2)
	s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).
		Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusOK}, nil)
	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().AddReaction(gomock.Any(), gomock.Any()).Return(nil)

	// An explicit zero leaves the post-midnight window open
	input := s.checkInInput()
	input.Now = time.Date(2026, 3, 2, 0, 30, 0, 0, s.loc)
	input.EventTime = time.Date(2026, 3, 2, 0, 10, 0, 0, s.loc)

	output, err := service.RecordCheckIn(s.ctx, input)

	s.Require().NoError(err)
	s.Equal(models.MarkDone, output.Mark)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInWindowClosedGraceHour() {
	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)

	input := s.checkInInput()
	input.Now = time.Date(2026, 3, 2, 0, 30, 0, 0, s.loc)
	input.EventTime = time.Date(2026, 3, 2, 0, 10, 0, 0, s.loc)

	_, err := s.service.RecordCheckIn(s.ctx, input)

	s.ErrorIs(err, ErrSubmissionWindowClosed)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInMissingLink() {
	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)

	input := s.checkInInput()
	input.Text = "<@test-bot-id> 오늘도 완료!"

	_, err := s.service.RecordCheckIn(s.ctx, input)

	s.ErrorIs(err, ErrMissingLink)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInUnknownParticipant() {
	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)
	s.expectResolveName("Mallory")
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(s.newTestRecord(), nil)

	_, err := s.service.RecordCheckIn(s.ctx, s.checkInInput())

	s.ErrorIs(err, ErrUnknownParticipant)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInWeekendHasNoSlot() {
	saturday := time.Date(2026, 3, 7, 12, 0, 0, 0, s.loc)

	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)
	s.expectResolveName("Alice")
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(s.newTestRecord(), nil)

	input := s.checkInInput()
	input.Now = saturday
	input.EventTime = saturday.Add(-time.Hour)

	_, err := s.service.RecordCheckIn(s.ctx, input)

	s.ErrorIs(err, ErrNotACheckInDay)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInWeekendOptionalMark() {
	service := s.newService(func(cfg *Config) {
		cfg.SlotsPerWeek = 7
	})
	saturday := time.Date(2026, 3, 7, 12, 0, 0, 0, s.loc)
	record := models.NewAttendanceRecord(string(s.testWeekID), []string{"Alice", "Bob"}, 7, models.WeekendPolicyOptional, s.testTime)

	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)
	s.expectResolveName("Alice")
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil).Times(2)
	s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).
		Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusOK}, nil)
	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().AddReaction(gomock.Any(), gomock.Any()).Return(nil)

	input := s.checkInInput()
	input.Now = saturday
	input.EventTime = saturday.Add(-time.Hour)

	output, err := service.RecordCheckIn(s.ctx, input)

	s.Require().NoError(err)
	s.Equal(5, output.Day)
	s.Equal(models.MarkDoneOptional, output.Mark)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInRecoversStaleHandle() {
	record := s.newTestRecord()
	newMessageID := "new-message-id"

	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)
	s.expectResolveName("Alice")
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil).Times(2)

	gomock.InOrder(
		// The stored handle no longer resolves to a real message
		s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), &platform.UpdateMessageInput{
			ChannelID: s.testChannelID,
			MessageID: s.testMessageID,
			Text:      mondayScoreboardAliceDone,
		}).Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusNotFound}, nil),

		// Recovery: post a replacement, persist its handle, retry once
		s.mockMessenger.EXPECT().PostMessage(gomock.Any(), &platform.PostMessageInput{
			ChannelID: s.testChannelID,
			Text:      mondayScoreboardAliceDone,
		}).Return(&platform.PostMessageOutput{MessageID: newMessageID}, nil),

		s.mockRepo.EXPECT().SaveMessageRef(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input *attendance.SaveMessageRefInput) error {
				s.Equal(newMessageID, input.Message.MessageID)
				s.Equal(string(s.testWeekID), input.Message.WeekID)
				return nil
			}),

		s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), &platform.UpdateMessageInput{
			ChannelID: s.testChannelID,
			MessageID: newMessageID,
			Text:      mondayScoreboardAliceDone,
		}).Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusOK}, nil),
	)

	// The attendance record itself is persisted exactly once
	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().AddReaction(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.service.RecordCheckIn(s.ctx, s.checkInInput())

	s.Require().NoError(err)
	s.False(output.AlreadyMarked)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInStaleHandleRecoveryFailsOnce() {
	record := s.newTestRecord()
	newMessageID := "new-message-id"

	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)
	s.expectResolveName("Alice")
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil).Times(2)

	gomock.InOrder(
		s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).
			Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusNotFound}, nil),
		s.mockMessenger.EXPECT().PostMessage(gomock.Any(), gomock.Any()).
			Return(&platform.PostMessageOutput{MessageID: newMessageID}, nil),
		s.mockRepo.EXPECT().SaveMessageRef(gomock.Any(), gomock.Any()).Return(nil),

		// Recovery is attempted exactly once; a second stale result aborts
		s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).
			Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusNotFound}, nil),
	)

	// No record persistence, no reaction

	_, err := s.service.RecordCheckIn(s.ctx, s.checkInInput())

	s.ErrorIs(err, ErrStaleMessageHandle)
}

func (s *ChallengeServiceTestSuite) TestRecordCheckInReactionFailureIsReported() {
	record := s.newTestRecord()

	s.mockRepo.EXPECT().GetMessageRef(gomock.Any(), gomock.Any()).Return(s.testMessageRef, nil)
	s.expectResolveName("Alice")
	s.mockRepo.EXPECT().GetRecord(gomock.Any(), gomock.Any()).Return(record, nil).Times(2)
	s.mockMessenger.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).
		Return(&platform.UpdateMessageOutput{Status: platform.UpdateStatusOK}, nil)
	s.mockRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().AddReaction(gomock.Any(), gomock.Any()).
		Return(errors.New("reaction failed"))

	output, err := s.service.RecordCheckIn(s.ctx, s.checkInInput())

	// The persisted mutation is not rolled back
	s.Require().NoError(err)
	s.True(output.AckFailed)
	s.Equal(models.MarkDone, output.Mark)
}

func (s *ChallengeServiceTestSuite) TestDeleteWeek() {
	s.mockRepo.EXPECT().DeleteWeek(gomock.Any(), &attendance.DeleteWeekInput{
		WeekID: string(s.testWeekID),
	}).Return(&attendance.DeleteWeekOutput{DeletedCount: 1}, nil)

	output, err := s.service.DeleteWeek(s.ctx, &DeleteWeekInput{Now: s.testTime})

	s.Require().NoError(err)
	s.Equal(s.testWeekID, output.WeekID)
	s.Equal(int64(1), output.DeletedCount)
}

func (s *ChallengeServiceTestSuite) TestDeleteWeekNothingToDelete() {
	s.mockRepo.EXPECT().DeleteWeek(gomock.Any(), gomock.Any()).
		Return(&attendance.DeleteWeekOutput{DeletedCount: 0}, nil)

	output, err := s.service.DeleteWeek(s.ctx, &DeleteWeekInput{Now: s.testTime})

	s.Require().NoError(err)
	s.Equal(int64(0), output.DeletedCount)
}

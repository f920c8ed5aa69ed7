package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/seojun-park/injeungbot/internal/common/clock"
	"github.com/seojun-park/injeungbot/internal/services/challenge"
	"github.com/sirupsen/logrus"
)

// ChallengeScheduler fires the two external triggers of the weekly cycle:
// the rollover job initializes a fresh week and the daily job posts the
// day's summary message. The cron specs decide which days each fires on.
type ChallengeScheduler struct {
	cronEngine       *cron.Cron
	challengeService challenge.Service
	clock            clock.Clock
	logger           *logrus.Logger
	channelID        string
	cronSpecRollover string
	cronSpecDaily    string
}

// New creates a scheduler running in the given reference zone
func New(
	challengeService challenge.Service,
	clk clock.Clock,
	logger *logrus.Logger,
	loc *time.Location,
	channelID string,
	cronSpecRollover string,
	cronSpecDaily string,
) *ChallengeScheduler {
	return &ChallengeScheduler{
		cronEngine:       cron.New(cron.WithLocation(loc)),
		challengeService: challengeService,
		clock:            clk,
		logger:           logger,
		channelID:        channelID,
		cronSpecRollover: cronSpecRollover,
		cronSpecDaily:    cronSpecDaily,
	}
}

// Start registers the jobs and starts the cron engine
func (s *ChallengeScheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.cronSpecRollover, s.runWeeklyRollover); err != nil {
		return err
	}

	if _, err := s.cronEngine.AddFunc(s.cronSpecDaily, s.runDailyKickoff); err != nil {
		return err
	}

	s.cronEngine.Start()
	s.logger.Info("challenge scheduler started")
	return nil
}

// Stop stops the cron engine and waits for running jobs to finish
func (s *ChallengeScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("challenge scheduler stopped")
}

func (s *ChallengeScheduler) runWeeklyRollover() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	output, err := s.challengeService.InitializeWeek(ctx, &challenge.InitializeWeekInput{
		ChannelID: s.channelID,
		Now:       s.clock.Now(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("op", "weekly-rollover").Error("week initialization failed")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"op":           "weekly-rollover",
		"week_id":      output.WeekID,
		"participants": len(output.Participants),
	}).Info("week initialized")
}

func (s *ChallengeScheduler) runDailyKickoff() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	output, err := s.challengeService.PostChallenge(ctx, &challenge.PostChallengeInput{
		ChannelID: s.channelID,
		Now:       s.clock.Now(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("op", "daily-kickoff").Error("challenge post failed")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"op":          "daily-kickoff",
		"week_id":     output.WeekID,
		"message_id":  output.MessageID,
		"initialized": output.Initialized,
	}).Info("challenge posted")
}

package discord

import (
	"errors"
	"fmt"

	"github.com/seojun-park/injeungbot/internal/services/challenge"
)

// genericFailureNotice is the catch-all reply for unexpected errors; the
// detail goes to the log, not the channel
const genericFailureNotice = "처리 중 오류가 발생했어요. 잠시 후 다시 시도해 주세요. 🙏"

// noticeForCheckInError maps a check-in outcome to its user-facing Korean
// reply. Validation rejections are expected outcomes, so every sentinel has
// a notice; anything else falls through to the generic failure text.
func noticeForCheckInError(err error) string {
	switch {
	case errors.Is(err, challenge.ErrNoActiveChallenge):
		return "이번 주 인증 챌린지가 아직 시작되지 않았어요. `/start-challenge` 명령으로 시작해 주세요."
	case errors.Is(err, challenge.ErrSubmissionWindowClosed):
		return "오늘의 인증 마감 시간이 지났어요. 내일 다시 도전해 주세요! ⏰"
	case errors.Is(err, challenge.ErrMissingLink):
		return "인증 링크가 없어요. http:// 또는 https:// 로 시작하는 링크를 함께 올려 주세요."
	case errors.Is(err, challenge.ErrUnknownParticipant):
		return "등록된 참가자가 아니에요. 이번 주 챌린지 명단을 확인해 주세요."
	case errors.Is(err, challenge.ErrNotACheckInDay):
		return "오늘은 인증 요일이 아니에요. 푹 쉬세요! 😴"
	case errors.Is(err, challenge.ErrInitializationFailed):
		return "챌린지 초기화에 실패했어요. 잠시 후 다시 시도해 주세요."
	default:
		return genericFailureNotice
	}
}

// renderStartChallengeNotice builds the reply for a successful
// start-challenge command
func renderStartChallengeNotice(output *challenge.PostChallengeOutput) string {
	if output.Initialized {
		return fmt.Sprintf("%s 인증 챌린지를 새로 시작했어요! 참가자는 %d명이에요. 💪", output.WeekID, output.ParticipantCount)
	}
	return fmt.Sprintf("%s 인증 기록을 다시 올렸어요. 참가자는 %d명이에요.", output.WeekID, output.ParticipantCount)
}

// renderDeleteWeekNotice builds the reply for a delete-challenge command
func renderDeleteWeekNotice(output *challenge.DeleteWeekOutput) string {
	if output.DeletedCount == 0 {
		return fmt.Sprintf("%s 인증 기록이 없어서 삭제할 것이 없어요.", output.WeekID)
	}
	return fmt.Sprintf("%s 인증 기록을 삭제했어요.", output.WeekID)
}

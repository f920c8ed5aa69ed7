package challenge

import (
	"fmt"
	"strings"
	"time"

	"github.com/seojun-park/injeungbot/internal/common/week"
	"github.com/seojun-park/injeungbot/internal/models"
)

// markSymbols maps each mark to its scoreboard symbol
var markSymbols = map[models.Mark]string{
	models.MarkPending:      "❌",
	models.MarkDone:         "✅",
	models.MarkDoneOptional: "☑️",
	models.MarkNotRequired:  "➖",
}

// koreanWeekdays is indexed by week.DayIndex (Monday first)
var koreanWeekdays = [7]string{"월요일", "화요일", "수요일", "목요일", "금요일", "토요일", "일요일"}

// FormatScoreboard renders the week's record as the summary message text.
// The output is deterministic: participants appear in the record's
// insertion order and an unchanged record always renders byte-identical
// text, so the message can be diffed and updated idempotently.
func FormatScoreboard(record *models.AttendanceRecord, now time.Time, loc *time.Location) string {
	month, ordinal := week.MonthAndOrdinalWeek(now, loc)

	var b strings.Builder
	fmt.Fprintf(&b, "%d월 %d주차 [%s] 인증 기록\n", int(month), ordinal, koreanWeekdays[week.DayIndex(now, loc)])

	for _, name := range record.Names {
		b.WriteString(name)
		b.WriteString(" : ")
		for _, mark := range record.Marks[name] {
			b.WriteString(markSymbols[mark])
		}
		b.WriteString("\n")
	}

	return b.String()
}

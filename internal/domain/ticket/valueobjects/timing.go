package valueobjects

import "fmt"

// ProblemTiming captures when the reported problem started or last occurred.
type ProblemTiming string

const (
	TimingNow       ProblemTiming = "now"
	TimingToday     ProblemTiming = "today"
	TimingYesterday ProblemTiming = "yesterday"
	TimingThisWeek  ProblemTiming = "this_week"
	TimingRecurrent ProblemTiming = "recurrent"
)

var validTimings = map[ProblemTiming]bool{
	TimingNow:       true,
	TimingToday:     true,
	TimingYesterday: true,
	TimingThisWeek:  true,
	TimingRecurrent: true,
}

var timingLabels = map[ProblemTiming]string{
	TimingNow:       "Agora mesmo",
	TimingToday:     "Hoje",
	TimingYesterday: "Ontem",
	TimingThisWeek:  "Essa semana",
	TimingRecurrent: "Sempre acontece",
}

func (t ProblemTiming) String() string {
	return string(t)
}

// Label returns the display text shown on the Telegram keyboard.
func (t ProblemTiming) Label() string {
	return timingLabels[t]
}

func (t ProblemTiming) IsValid() bool {
	return validTimings[t]
}

// IsImmediate reports whether the problem is happening now or started today.
// Immediate timings feed the HIGH urgency rule.
func (t ProblemTiming) IsImmediate() bool {
	return t == TimingNow || t == TimingToday
}

// IsRecent reports whether the problem is at most a day old. Recent timings
// feed the NORMAL urgency rule.
func (t ProblemTiming) IsRecent() bool {
	return t.IsImmediate() || t == TimingYesterday
}

// AllTimings returns the fixed timing set in display order.
func AllTimings() []ProblemTiming {
	return []ProblemTiming{
		TimingNow,
		TimingToday,
		TimingYesterday,
		TimingThisWeek,
		TimingRecurrent,
	}
}

func NewProblemTiming(s string) (ProblemTiming, error) {
	t := ProblemTiming(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid problem timing: %s", s)
	}
	return t, nil
}

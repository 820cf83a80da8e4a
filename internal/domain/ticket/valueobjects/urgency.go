package valueobjects

import "fmt"

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyNormal UrgencyLevel = "normal"
	UrgencyHigh   UrgencyLevel = "high"
)

var validUrgencies = map[UrgencyLevel]bool{
	UrgencyLow:    true,
	UrgencyNormal: true,
	UrgencyHigh:   true,
}

func (u UrgencyLevel) String() string {
	return string(u)
}

func (u UrgencyLevel) IsValid() bool {
	return validUrgencies[u]
}

func (u UrgencyLevel) IsLow() bool {
	return u == UrgencyLow
}

func (u UrgencyLevel) IsNormal() bool {
	return u == UrgencyNormal
}

func (u UrgencyLevel) IsHigh() bool {
	return u == UrgencyHigh
}

// Elevate raises the urgency one level. It is monotonic: HIGH stays HIGH and
// nothing ever lowers urgency through this path.
func (u UrgencyLevel) Elevate() UrgencyLevel {
	switch u {
	case UrgencyLow:
		return UrgencyNormal
	case UrgencyNormal:
		return UrgencyHigh
	default:
		return UrgencyHigh
	}
}

func NewUrgencyLevel(s string) (UrgencyLevel, error) {
	u := UrgencyLevel(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency level: %s", s)
	}
	return u, nil
}

// ClassifyUrgency derives the urgency for a new ticket from its category and
// timing. Category classification takes precedence over timing when both
// rules could apply: a connectivity problem happening now is HIGH even though
// "now" is also recent. This is a best-effort classifier, not a strict
// contract; technicians can elevate afterwards.
func ClassifyUrgency(category Category, timing ProblemTiming) UrgencyLevel {
	if category.IsConnectivityRelated() && timing.IsImmediate() {
		return UrgencyHigh
	}
	if category.IsPerformanceRelated() && timing.IsRecent() {
		return UrgencyNormal
	}
	return UrgencyLow
}

package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyElevateIsMonotonic(t *testing.T) {
	u := UrgencyLow

	u = u.Elevate()
	assert.Equal(t, UrgencyNormal, u)

	u = u.Elevate()
	assert.Equal(t, UrgencyHigh, u)

	// Further elevation is a no-op at HIGH.
	u = u.Elevate()
	assert.Equal(t, UrgencyHigh, u)
}

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		timing   ProblemTiming
		want     UrgencyLevel
	}{
		{"connectivity now", CategoryConnectivity, TimingNow, UrgencyHigh},
		{"connectivity today", CategoryConnectivity, TimingToday, UrgencyHigh},
		{"equipment now", CategoryEquipment, TimingNow, UrgencyHigh},
		{"connectivity yesterday", CategoryConnectivity, TimingYesterday, UrgencyLow},
		{"performance now", CategoryPerformance, TimingNow, UrgencyNormal},
		{"performance yesterday", CategoryPerformance, TimingYesterday, UrgencyNormal},
		{"game issue today", CategoryGameIssue, TimingToday, UrgencyNormal},
		{"performance chronic", CategoryPerformance, TimingRecurrent, UrgencyLow},
		{"other now", CategoryOther, TimingNow, UrgencyLow},
		{"other chronic", CategoryOther, TimingRecurrent, UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUrgency(tt.category, tt.timing))
		})
	}
}

func TestNewUrgencyLevel(t *testing.T) {
	u, err := NewUrgencyLevel("normal")
	assert.NoError(t, err)
	assert.Equal(t, UrgencyNormal, u)

	_, err = NewUrgencyLevel("critical")
	assert.Error(t, err)
}

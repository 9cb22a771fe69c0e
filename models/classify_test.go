package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyRankOrder(t *testing.T) {
	ordered := []Urgency{UrgencyImmediate, UrgencyUrgent, UrgencySoon, UrgencyWatch}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("%s should rank before %s", ordered[i-1], ordered[i])
		}
	}
	if Urgency("").Rank() <= UrgencyWatch.Rank() {
		t.Error("missing urgency should rank after WATCH")
	}
	if Urgency("GARBAGE").Rank() <= UrgencyWatch.Rank() {
		t.Error("unknown urgency should rank after WATCH")
	}
}

func TestSeverityRankOrder(t *testing.T) {
	ordered := []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("%s should rank before %s", ordered[i-1], ordered[i])
		}
	}
}

func TestClassifyDecisionIsTotal(t *testing.T) {
	// A zero-value decision must still yield a defined key.
	key := ClassifyDecision(Decision{})
	assert.Equal(t, Urgency("").Rank(), key.Ordinal)
	assert.Equal(t, 0.0, key.Exposure)
}

func TestClassifyDecisionEqualUrgencyRanksByExposure(t *testing.T) {
	a := ClassifyDecision(Decision{Urgency: UrgencyUrgent, Exposure: 100_000})
	b := ClassifyDecision(Decision{Urgency: UrgencyUrgent, Exposure: 50_000})
	assert.True(t, a.Less(b), "higher exposure should rank first at equal urgency")
	assert.False(t, b.Less(a))
}

func TestClassifyDecisionUrgencyDominatesExposure(t *testing.T) {
	immediate := ClassifyDecision(Decision{Urgency: UrgencyImmediate, Exposure: 1})
	watch := ClassifyDecision(Decision{Urgency: UrgencyWatch, Exposure: 1_000_000})
	assert.True(t, immediate.Less(watch))
}

func TestEscalationBucket(t *testing.T) {
	tests := []struct {
		priority EscalationPriority
		want     UrgencyBucket
	}{
		{EscalationCritical, BucketCritical},
		{EscalationHigh, BucketUrgent},
		{EscalationMedium, BucketNormal},
		{EscalationLow, BucketNormal},
		{EscalationPriority(""), BucketNormal},
		{EscalationPriority("UNKNOWN"), BucketNormal},
	}
	for _, tt := range tests {
		if got := EscalationBucket(tt.priority); got != tt.want {
			t.Errorf("EscalationBucket(%q) = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestDecisionBucket(t *testing.T) {
	tests := []struct {
		urgency Urgency
		want    UrgencyBucket
	}{
		{UrgencyImmediate, BucketCritical},
		{UrgencyUrgent, BucketUrgent},
		{UrgencySoon, BucketNormal},
		{UrgencyWatch, BucketNormal},
	}
	for _, tt := range tests {
		if got := DecisionBucket(tt.urgency); got != tt.want {
			t.Errorf("DecisionBucket(%q) = %v, want %v", tt.urgency, got, tt.want)
		}
	}
}

func TestEnumParsersDefaultUnknown(t *testing.T) {
	assert.Equal(t, DecisionPending, DecisionStatusFrom("???"))
	assert.Equal(t, UrgencyWatch, UrgencyFrom(""))
	assert.Equal(t, SeverityLow, SeverityFrom("bogus"))
	assert.Equal(t, EscalationLow, EscalationPriorityFrom(""))
	assert.Equal(t, SignalActive, SignalStatusFrom(""))
	assert.Equal(t, SortByUrgency, SortingFieldFrom("not-a-field"))
}

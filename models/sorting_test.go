package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortByUrgencyIsStable(t *testing.T) {
	input := []Decision{
		{Id: "a", Urgency: UrgencyImmediate},
		{Id: "b", Urgency: UrgencyUrgent},
		{Id: "c", Urgency: UrgencyUrgent},
		{Id: "d", Urgency: UrgencyWatch},
	}
	got := SortDecisions(input, SortByUrgency)
	assert.Equal(t, []string{"a", "b", "c", "d"}, decisionIds(got))
}

func TestSortByUrgencyBreaksTiesByExposure(t *testing.T) {
	input := []Decision{
		{Id: "low", Urgency: UrgencyUrgent, Exposure: 10_000},
		{Id: "high", Urgency: UrgencyUrgent, Exposure: 500_000},
	}
	got := SortDecisions(input, SortByUrgency)
	assert.Equal(t, []string{"high", "low"}, decisionIds(got))
}

func TestSortByExposureDescending(t *testing.T) {
	input := []Decision{
		{Id: "mid", Exposure: 50_000},
		{Id: "none"},
		{Id: "big", Exposure: 900_000},
	}
	got := SortDecisions(input, SortByExposure)
	assert.Equal(t, []string{"big", "mid", "none"}, decisionIds(got))
}

func TestSortByDeadlineInvalidLast(t *testing.T) {
	early := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	var zero time.Time

	input := []Decision{
		{Id: "missing"},
		{Id: "late", Deadline: &late},
		{Id: "zero", Deadline: &zero},
		{Id: "early", Deadline: &early},
	}
	got := SortDecisions(input, SortByDeadline)
	assert.Equal(t, []string{"early", "late", "missing", "zero"}, decisionIds(got))
}

func TestSortByCreationMostRecentFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	input := []Decision{
		{Id: "old", CreatedAt: base},
		{Id: "new", CreatedAt: base.AddDate(0, 0, 5)},
		{Id: "mid", CreatedAt: base.AddDate(0, 0, 2)},
	}
	got := SortDecisions(input, SortByCreation)
	assert.Equal(t, []string{"new", "mid", "old"}, decisionIds(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := []Decision{
		{Id: "b", Urgency: UrgencyWatch},
		{Id: "a", Urgency: UrgencyImmediate},
	}
	_ = SortDecisions(input, SortByUrgency)
	assert.Equal(t, []string{"b", "a"}, decisionIds(input))
}

func TestRepeatedSortsAreDeterministic(t *testing.T) {
	input := []Decision{
		{Id: "a", Urgency: UrgencyUrgent, Exposure: 100},
		{Id: "b", Urgency: UrgencyUrgent, Exposure: 100},
		{Id: "c", Urgency: UrgencyImmediate},
	}
	first := SortDecisions(input, SortByUrgency)
	second := SortDecisions(first, SortByUrgency)
	assert.Equal(t, decisionIds(first), decisionIds(second))
}

func TestSortEscalationsByDeadline(t *testing.T) {
	soon := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	input := []Escalation{
		{Id: "none"},
		{Id: "later", SlaDeadline: &later},
		{Id: "soon", SlaDeadline: &soon},
	}
	got := SortEscalations(input, SortByDeadline)
	assert.Equal(t, "soon", got[0].Id)
	assert.Equal(t, "later", got[1].Id)
	assert.Equal(t, "none", got[2].Id)
}

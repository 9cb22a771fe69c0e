package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var filterNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func filterFixtures() []Decision {
	return []Decision{
		{Id: "d1", Status: DecisionPending, Urgency: UrgencyImmediate, Severity: SeverityCritical, Summary: "Reroute via Cape of Good Hope", CustomerName: "Meridian Freight", CreatedAt: filterNow.AddDate(0, 0, -1)},
		{Id: "d2", Status: DecisionPending, Urgency: UrgencyUrgent, Severity: SeverityHigh, Summary: "Expedite customs clearance", CustomerName: "Atlas Shipping", CreatedAt: filterNow.AddDate(0, 0, -10)},
		{Id: "d3", Status: DecisionAcknowledged, Urgency: UrgencyImmediate, Severity: SeverityMedium, Summary: "Hold container release", CustomerName: "Meridian Freight", CreatedAt: filterNow.AddDate(0, 0, -40)},
		{Id: "d4", Status: DecisionOverridden, Urgency: UrgencyWatch, Severity: SeverityLow, Summary: "Monitor weather window", CustomerName: "Pacific Lines", CreatedAt: filterNow.AddDate(0, 0, -2)},
	}
}

func decisionIds(decisions []Decision) []string {
	ids := make([]string, len(decisions))
	for i, d := range decisions {
		ids[i] = d.Id
	}
	return ids
}

func TestEmptyCriteriaMatchEverything(t *testing.T) {
	got := FilterDecisions(filterNow, filterFixtures(), FilterCriteria{})
	assert.Len(t, got, 4)
}

func TestFilterByStatusAndUrgency(t *testing.T) {
	criteria := FilterCriteria{Status: "PENDING", Urgency: "IMMEDIATE"}
	got := FilterDecisions(filterNow, filterFixtures(), criteria)
	assert.Equal(t, []string{"d1"}, decisionIds(got))
}

func TestFilteringIsOrderIndependent(t *testing.T) {
	// Same criteria, fields populated in a different declaration order.
	a := FilterCriteria{Status: "PENDING", Urgency: "IMMEDIATE"}
	b := FilterCriteria{Urgency: "IMMEDIATE", Status: "PENDING"}
	fixtures := filterFixtures()
	assert.Equal(t,
		decisionIds(FilterDecisions(filterNow, fixtures, a)),
		decisionIds(FilterDecisions(filterNow, fixtures, b)))
}

func TestSearchMatchesAnyFieldCaseInsensitive(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"summary match", "cape of good hope", []string{"d1"}},
		{"customer match", "MERIDIAN", []string{"d1", "d3"}},
		{"id match", "d4", []string{"d4"}},
		{"no match", "zeppelin", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDecisions(filterNow, filterFixtures(), FilterCriteria{Search: tt.search})
			assert.Equal(t, tt.want, decisionIds(got))
		})
	}
}

func TestSearchAndsWithOtherFilters(t *testing.T) {
	criteria := FilterCriteria{Search: "meridian", Status: "ACKNOWLEDGED"}
	got := FilterDecisions(filterNow, filterFixtures(), criteria)
	assert.Equal(t, []string{"d3"}, decisionIds(got))
}

func TestDateRangeExcludesOlderRecords(t *testing.T) {
	got := FilterDecisions(filterNow, filterFixtures(), FilterCriteria{RangeDays: 7})
	assert.Equal(t, []string{"d1", "d4"}, decisionIds(got))

	got = FilterDecisions(filterNow, filterFixtures(), FilterCriteria{RangeDays: 30})
	assert.Equal(t, []string{"d1", "d2", "d4"}, decisionIds(got))
}

func TestCustomerFilterMatchesSubstring(t *testing.T) {
	got := FilterDecisions(filterNow, filterFixtures(), FilterCriteria{Customer: "pacific"})
	assert.Equal(t, []string{"d4"}, decisionIds(got))
}

func TestFilterEscalations(t *testing.T) {
	escalations := []Escalation{
		{Id: "e1", Status: EscalationPending, Priority: EscalationCritical, Title: "SLA breach imminent", CreatedAt: filterNow},
		{Id: "e2", Status: EscalationResolved, Priority: EscalationLow, Title: "Documentation gap", CreatedAt: filterNow},
		{Id: "e3", Status: EscalationInReview, Priority: EscalationHigh, Reason: "Client disputes exposure model", CreatedAt: filterNow},
	}

	got := FilterEscalations(filterNow, escalations, FilterCriteria{Status: "IN_REVIEW"})
	assert.Len(t, got, 1)
	assert.Equal(t, "e3", got[0].Id)

	got = FilterEscalations(filterNow, escalations, FilterCriteria{Search: "disputes"})
	assert.Len(t, got, 1)
	assert.Equal(t, "e3", got[0].Id)

	// The urgency axis resolves against the shared bucket space.
	got = FilterEscalations(filterNow, escalations, FilterCriteria{Urgency: "IMMEDIATE"})
	assert.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].Id)
}

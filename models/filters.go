package models

import (
	"strings"
	"time"
)

// FilterCriteria composes the independent list-screen filters. The zero value
// matches every record; non-default criteria AND together. Criteria are
// stored by value inside saved views, so this struct must stay comparable.
type FilterCriteria struct {
	Status    string
	Urgency   string
	Severity  string
	Customer  string
	Search    string
	RangeDays int
}

func (f FilterCriteria) IsZero() bool {
	return f == FilterCriteria{}
}

// MatchDecision evaluates the criteria against one decision. Free-text search
// matches on any searchable field, case-insensitively, and ANDs with the
// other filters. No cross-record state: the same input always matches the
// same way regardless of evaluation order.
func (f FilterCriteria) MatchDecision(now time.Time, d Decision) bool {
	if f.Status != "" && d.Status != DecisionStatus(f.Status) {
		return false
	}
	if f.Urgency != "" && d.Urgency != Urgency(f.Urgency) {
		return false
	}
	if f.Severity != "" && d.Severity != Severity(f.Severity) {
		return false
	}
	if f.Customer != "" && !containsFold(d.CustomerName, f.Customer) &&
		!containsFold(d.CustomerId, f.Customer) {
		return false
	}
	if !f.matchSearch(d.Summary, d.CustomerName, d.RecommendedAction, d.Id) {
		return false
	}
	return f.matchRange(now, d.CreatedAt)
}

func (f FilterCriteria) MatchEscalation(now time.Time, e Escalation) bool {
	if f.Status != "" && e.Status != EscalationStatus(f.Status) {
		return false
	}
	// Escalations carry a single priority axis: both the urgency and the
	// severity filters resolve against it so a saved view built for
	// decisions still narrows escalations sensibly.
	if f.Urgency != "" && EscalationBucket(e.Priority) != DecisionBucket(Urgency(f.Urgency)) {
		return false
	}
	if f.Severity != "" && e.Priority != EscalationPriority(f.Severity) {
		return false
	}
	if f.Customer != "" && !containsFold(e.CustomerId, f.Customer) {
		return false
	}
	if !f.matchSearch(e.Title, e.Reason, e.Id) {
		return false
	}
	return f.matchRange(now, e.CreatedAt)
}

func (f FilterCriteria) matchSearch(fields ...string) bool {
	if f.Search == "" {
		return true
	}
	for _, field := range fields {
		if containsFold(field, f.Search) {
			return true
		}
	}
	return false
}

// matchRange excludes records older than now - RangeDays. RangeDays <= 0
// means no cutoff.
func (f FilterCriteria) matchRange(now time.Time, createdAt time.Time) bool {
	if f.RangeDays <= 0 {
		return true
	}
	cutoff := now.AddDate(0, 0, -f.RangeDays)
	return !createdAt.Before(cutoff)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func FilterDecisions(now time.Time, decisions []Decision, f FilterCriteria) []Decision {
	out := make([]Decision, 0, len(decisions))
	for _, d := range decisions {
		if f.MatchDecision(now, d) {
			out = append(out, d)
		}
	}
	return out
}

func FilterEscalations(now time.Time, escalations []Escalation, f FilterCriteria) []Escalation {
	out := make([]Escalation, 0, len(escalations))
	for _, e := range escalations {
		if f.MatchEscalation(now, e) {
			out = append(out, e)
		}
	}
	return out
}

package models

import (
	"slices"
	"time"
)

type SortingField string

const (
	SortByUrgency  SortingField = "urgency"
	SortByExposure SortingField = "exposure"
	SortByDeadline SortingField = "deadline"
	SortByCreation SortingField = "created_at"
)

var ValidSortingFields = []SortingField{
	SortByUrgency,
	SortByExposure,
	SortByDeadline,
	SortByCreation,
}

func SortingFieldFrom(s string) SortingField {
	if slices.Contains(ValidSortingFields, SortingField(s)) {
		return SortingField(s)
	}
	return SortByUrgency
}

// SortDecisions orders a copy of the input by the named comparator. Sorts are
// stable so repeated sorts of the same input paginate identically.
func SortDecisions(decisions []Decision, field SortingField) []Decision {
	out := slices.Clone(decisions)
	slices.SortStableFunc(out, decisionComparator(field))
	return out
}

func decisionComparator(field SortingField) func(a, b Decision) int {
	switch field {
	case SortByExposure:
		return func(a, b Decision) int {
			return compareFloatDesc(a.Exposure, b.Exposure)
		}
	case SortByDeadline:
		return func(a, b Decision) int {
			return compareDeadline(a.Deadline, b.Deadline)
		}
	case SortByCreation:
		return func(a, b Decision) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	default:
		return func(a, b Decision) int {
			return compareRankKeys(ClassifyDecision(a), ClassifyDecision(b))
		}
	}
}

func SortEscalations(escalations []Escalation, field SortingField) []Escalation {
	out := slices.Clone(escalations)
	slices.SortStableFunc(out, escalationComparator(field))
	return out
}

func escalationComparator(field SortingField) func(a, b Escalation) int {
	switch field {
	case SortByExposure:
		return func(a, b Escalation) int {
			return compareFloatDesc(a.Exposure, b.Exposure)
		}
	case SortByDeadline:
		return func(a, b Escalation) int {
			return compareDeadline(a.SlaDeadline, b.SlaDeadline)
		}
	case SortByCreation:
		return func(a, b Escalation) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	default:
		return func(a, b Escalation) int {
			return compareRankKeys(ClassifyEscalation(a), ClassifyEscalation(b))
		}
	}
}

func compareRankKeys(a, b RankKey) int {
	if a.Ordinal != b.Ordinal {
		return a.Ordinal - b.Ordinal
	}
	return compareFloatDesc(a.Exposure, b.Exposure)
}

// Descending order, with NaN treated as zero exposure.
func compareFloatDesc(a, b float64) int {
	a, b = orZero(a), orZero(b)
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

func orZero(f float64) float64 {
	if f != f { // NaN
		return 0
	}
	return f
}

// Missing or zero deadlines sort last.
func compareDeadline(a, b *time.Time) int {
	av, bv := deadlineValid(a), deadlineValid(b)
	switch {
	case av && bv:
		return a.Compare(*b)
	case av:
		return -1
	case bv:
		return 1
	default:
		return 0
	}
}

func deadlineValid(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

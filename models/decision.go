package models

import (
	"slices"
	"time"
)

type Decision struct {
	Id                string
	Status            DecisionStatus
	Urgency           Urgency
	Severity          Severity
	Exposure          float64
	RecommendedAction string
	ActionCost        float64
	InactionCost      float64
	Deadline          *time.Time
	CreatedAt         time.Time
	Summary           string
	CustomerId        string
	CustomerName      string
	AffectedShipments int
	Confidence        float64
}

func (d Decision) IsActionable() bool {
	return d.Status == DecisionPending
}

type DecisionStatus string

const (
	DecisionPending      DecisionStatus = "PENDING"
	DecisionAcknowledged DecisionStatus = "ACKNOWLEDGED"
	DecisionOverridden   DecisionStatus = "OVERRIDDEN"
	DecisionEscalated    DecisionStatus = "ESCALATED"
)

var ValidDecisionStatuses = []DecisionStatus{
	DecisionPending,
	DecisionAcknowledged,
	DecisionOverridden,
	DecisionEscalated,
}

// DecisionStatusFrom is total: anything unrecognized maps to PENDING so a
// record with a garbled status still shows up where an operator will see it.
func DecisionStatusFrom(s string) DecisionStatus {
	if slices.Contains(ValidDecisionStatuses, DecisionStatus(s)) {
		return DecisionStatus(s)
	}
	return DecisionPending
}

type Urgency string

const (
	UrgencyImmediate Urgency = "IMMEDIATE"
	UrgencyUrgent    Urgency = "URGENT"
	UrgencySoon      Urgency = "SOON"
	UrgencyWatch     Urgency = "WATCH"
)

// Rank orders urgencies for sorting, most pressing first. Unknown values
// rank after WATCH.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyImmediate:
		return 0
	case UrgencyUrgent:
		return 1
	case UrgencySoon:
		return 2
	case UrgencyWatch:
		return 3
	default:
		return 4
	}
}

func UrgencyFrom(s string) Urgency {
	switch Urgency(s) {
	case UrgencyImmediate, UrgencyUrgent, UrgencySoon, UrgencyWatch:
		return Urgency(s)
	default:
		return UrgencyWatch
	}
}

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

func SeverityFrom(s string) Severity {
	switch Severity(s) {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return Severity(s)
	default:
		return SeverityLow
	}
}

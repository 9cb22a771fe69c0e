package models

import (
	"slices"
	"time"
)

type Escalation struct {
	Id          string
	Status      EscalationStatus
	Priority    EscalationPriority
	Exposure    float64
	SlaDeadline *time.Time
	CreatedAt   time.Time
	Title       string
	Reason      string
	CustomerId  string
}

func (e Escalation) IsActionable() bool {
	return e.Status == EscalationPending || e.Status == EscalationInReview
}

type EscalationStatus string

const (
	EscalationPending  EscalationStatus = "PENDING"
	EscalationInReview EscalationStatus = "IN_REVIEW"
	EscalationResolved EscalationStatus = "RESOLVED"
	EscalationExpired  EscalationStatus = "EXPIRED"
)

var ValidEscalationStatuses = []EscalationStatus{
	EscalationPending,
	EscalationInReview,
	EscalationResolved,
	EscalationExpired,
}

func EscalationStatusFrom(s string) EscalationStatus {
	if slices.Contains(ValidEscalationStatuses, EscalationStatus(s)) {
		return EscalationStatus(s)
	}
	return EscalationPending
}

type EscalationPriority string

const (
	EscalationCritical EscalationPriority = "CRITICAL"
	EscalationHigh     EscalationPriority = "HIGH"
	EscalationMedium   EscalationPriority = "MEDIUM"
	EscalationLow      EscalationPriority = "LOW"
)

func EscalationPriorityFrom(s string) EscalationPriority {
	switch EscalationPriority(s) {
	case EscalationCritical, EscalationHigh, EscalationMedium, EscalationLow:
		return EscalationPriority(s)
	default:
		return EscalationLow
	}
}

package models

import (
	"slices"
	"time"
)

type Signal struct {
	Id                  string
	Status              SignalStatus
	Probability         float64
	AffectedChokepoints []string
	CreatedAt           time.Time
	Title               string
}

// IsLive reports whether the signal should contribute to chokepoint status.
func (s Signal) IsLive() bool {
	return s.Status == SignalActive || s.Status == SignalConfirmed
}

type SignalStatus string

const (
	SignalActive    SignalStatus = "ACTIVE"
	SignalConfirmed SignalStatus = "CONFIRMED"
	SignalResolved  SignalStatus = "RESOLVED"
	SignalDismissed SignalStatus = "DISMISSED"
)

var ValidSignalStatuses = []SignalStatus{
	SignalActive,
	SignalConfirmed,
	SignalResolved,
	SignalDismissed,
}

func SignalStatusFrom(s string) SignalStatus {
	if slices.Contains(ValidSignalStatuses, SignalStatus(s)) {
		return SignalStatus(s)
	}
	return SignalActive
}

package dto

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
)

type APIDecision struct {
	Id                string     `json:"id"`
	Status            string     `json:"status"`
	Urgency           string     `json:"urgency"`
	Severity          string     `json:"severity"`
	Exposure          float64    `json:"exposure"`
	RecommendedAction string     `json:"recommended_action"`
	ActionCost        float64    `json:"action_cost"`
	InactionCost      float64    `json:"inaction_cost"`
	Savings           float64    `json:"savings"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	TimeRemaining     string     `json:"time_remaining,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	Summary           string     `json:"summary"`
	CustomerId        string     `json:"customer_id"`
	CustomerName      string     `json:"customer_name"`
	AffectedShipments int        `json:"affected_shipments"`
	Confidence        float64    `json:"confidence"`
	Actionable        bool       `json:"actionable"`
	Pending           bool       `json:"pending,omitempty"`
}

func AdaptDecisionDto(now time.Time, d models.Decision, pending bool) APIDecision {
	return APIDecision{
		Id:                d.Id,
		Status:            string(d.Status),
		Urgency:           string(d.Urgency),
		Severity:          string(d.Severity),
		Exposure:          d.Exposure,
		RecommendedAction: d.RecommendedAction,
		ActionCost:        d.ActionCost,
		InactionCost:      d.InactionCost,
		Savings:           models.Savings(d.Exposure, d.ActionCost),
		Deadline:          d.Deadline,
		TimeRemaining:     models.TimeRemaining(now, d.Deadline),
		CreatedAt:         d.CreatedAt,
		Summary:           d.Summary,
		CustomerId:        d.CustomerId,
		CustomerName:      d.CustomerName,
		AffectedShipments: d.AffectedShipments,
		Confidence:        d.Confidence,
		Actionable:        d.IsActionable(),
		Pending:           pending,
	}
}

type APIEscalation struct {
	Id            string     `json:"id"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	Exposure      float64    `json:"exposure"`
	SlaDeadline   *time.Time `json:"sla_deadline,omitempty"`
	TimeRemaining string     `json:"time_remaining,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Title         string     `json:"title"`
	Reason        string     `json:"reason"`
	CustomerId    string     `json:"customer_id"`
	Actionable    bool       `json:"actionable"`
	Pending       bool       `json:"pending,omitempty"`
}

func AdaptEscalationDto(now time.Time, e models.Escalation, pending bool) APIEscalation {
	return APIEscalation{
		Id:            e.Id,
		Status:        string(e.Status),
		Priority:      string(e.Priority),
		Exposure:      e.Exposure,
		SlaDeadline:   e.SlaDeadline,
		TimeRemaining: models.TimeRemaining(now, e.SlaDeadline),
		CreatedAt:     e.CreatedAt,
		Title:         e.Title,
		Reason:        e.Reason,
		CustomerId:    e.CustomerId,
		Actionable:    e.IsActionable(),
		Pending:       pending,
	}
}

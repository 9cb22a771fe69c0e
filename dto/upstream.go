package dto

import (
	"github.com/guregu/null/v5"

	"github.com/tidewatch/tidewatch-backend/models"
)

// Upstream record shapes, as delivered by the external record store. Every
// field beyond the id is optional on the wire: normalization maps each one
// into the canonical models with safe defaults so downstream derivations
// never have to handle "missing".

type UpstreamDecision struct {
	Id                string      `json:"id"`
	Status            null.String `json:"status"`
	Urgency           null.String `json:"urgency"`
	Severity          null.String `json:"severity"`
	Exposure          null.Float  `json:"exposure"`
	RecommendedAction null.String `json:"recommended_action"`
	ActionCost        null.Float  `json:"action_cost"`
	InactionCost      null.Float  `json:"inaction_cost"`
	Deadline          null.Time   `json:"deadline"`
	CreatedAt         null.Time   `json:"created_at"`
	Summary           null.String `json:"summary"`
	CustomerId        null.String `json:"customer_id"`
	CustomerName      null.String `json:"customer_name"`
	AffectedShipments null.Int    `json:"affected_shipments"`
	Confidence        null.Float  `json:"confidence"`
}

func AdaptDecision(u UpstreamDecision) models.Decision {
	return models.Decision{
		Id:                u.Id,
		Status:            models.DecisionStatusFrom(u.Status.ValueOrZero()),
		Urgency:           models.UrgencyFrom(u.Urgency.ValueOrZero()),
		Severity:          models.SeverityFrom(u.Severity.ValueOrZero()),
		Exposure:          nonNegative(u.Exposure.ValueOrZero()),
		RecommendedAction: u.RecommendedAction.ValueOrZero(),
		ActionCost:        nonNegative(u.ActionCost.ValueOrZero()),
		InactionCost:      nonNegative(u.InactionCost.ValueOrZero()),
		Deadline:          u.Deadline.Ptr(),
		CreatedAt:         u.CreatedAt.ValueOrZero(),
		Summary:           u.Summary.ValueOrZero(),
		CustomerId:        u.CustomerId.ValueOrZero(),
		CustomerName:      u.CustomerName.ValueOrZero(),
		AffectedShipments: int(u.AffectedShipments.ValueOrZero()),
		Confidence:        u.Confidence.ValueOrZero(),
	}
}

type UpstreamEscalation struct {
	Id          string      `json:"id"`
	Status      null.String `json:"status"`
	Priority    null.String `json:"priority"`
	Exposure    null.Float  `json:"exposure"`
	SlaDeadline null.Time   `json:"sla_deadline"`
	CreatedAt   null.Time   `json:"created_at"`
	Title       null.String `json:"title"`
	Reason      null.String `json:"reason"`
	CustomerId  null.String `json:"customer_id"`
}

func AdaptEscalation(u UpstreamEscalation) models.Escalation {
	return models.Escalation{
		Id:          u.Id,
		Status:      models.EscalationStatusFrom(u.Status.ValueOrZero()),
		Priority:    models.EscalationPriorityFrom(u.Priority.ValueOrZero()),
		Exposure:    nonNegative(u.Exposure.ValueOrZero()),
		SlaDeadline: u.SlaDeadline.Ptr(),
		CreatedAt:   u.CreatedAt.ValueOrZero(),
		Title:       u.Title.ValueOrZero(),
		Reason:      u.Reason.ValueOrZero(),
		CustomerId:  u.CustomerId.ValueOrZero(),
	}
}

type UpstreamSignal struct {
	Id                  string      `json:"id"`
	Status              null.String `json:"status"`
	Probability         null.Float  `json:"probability"`
	AffectedChokepoints []string    `json:"affected_chokepoints"`
	CreatedAt           null.Time   `json:"created_at"`
	Title               null.String `json:"title"`
}

func AdaptSignal(u UpstreamSignal) models.Signal {
	return models.Signal{
		Id:                  u.Id,
		Status:              models.SignalStatusFrom(u.Status.ValueOrZero()),
		Probability:         u.Probability.ValueOrZero(),
		AffectedChokepoints: u.AffectedChokepoints,
		CreatedAt:           u.CreatedAt.ValueOrZero(),
		Title:               u.Title.ValueOrZero(),
	}
}

// UpstreamSnapshot is the full payload one refresh cycle delivers.
type UpstreamSnapshot struct {
	Decisions   []UpstreamDecision   `json:"decisions"`
	Escalations []UpstreamEscalation `json:"escalations"`
	Signals     []UpstreamSignal     `json:"signals"`
	UpdatedAt   null.Time            `json:"updated_at"`
}

func nonNegative(f float64) float64 {
	if f < 0 || f != f {
		return 0
	}
	return f
}

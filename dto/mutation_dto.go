package dto

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
)

// MutationBody carries an acknowledge/override/resolve request. Confirm must
// be set: every financial-impact action requires explicit confirmation.
type MutationBody struct {
	Actor   string `json:"actor" binding:"required"`
	Confirm bool   `json:"confirm"`
}

type APIMutationReceipt struct {
	Id          string    `json:"id"`
	Kind        string    `json:"kind"`
	EntityId    string    `json:"entity_id"`
	Actor       string    `json:"actor"`
	RequestedAt time.Time `json:"requested_at"`
	Pending     bool      `json:"pending"`
}

func AdaptMutationReceipt(req models.MutationRequest) APIMutationReceipt {
	return APIMutationReceipt{
		Id:          req.Id,
		Kind:        string(req.Kind),
		EntityId:    req.EntityId,
		Actor:       req.Actor,
		RequestedAt: req.RequestedAt,
		Pending:     true,
	}
}

package models

import (
	"slices"
	"time"
)

// MutationKind enumerates the only local mutations this layer can request.
// Everything else is owned by the upstream record store.
type MutationKind string

const (
	MutationAcknowledge MutationKind = "acknowledge"
	MutationOverride    MutationKind = "override"
	MutationResolve     MutationKind = "resolve"
)

var ValidMutationKinds = []MutationKind{MutationAcknowledge, MutationOverride, MutationResolve}

func (k MutationKind) IsValid() bool {
	return slices.Contains(ValidMutationKinds, k)
}

// MutationRequest is the fire-and-forget payload sent to the upstream data
// layer. The local entity is only marked pending; the status change is
// reflected after the next refresh confirms it.
type MutationRequest struct {
	Id          string
	Kind        MutationKind
	EntityId    string
	Actor       string
	RequestedAt time.Time
}

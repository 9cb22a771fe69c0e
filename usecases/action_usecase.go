package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/repositories"
)

// ActionUseCase forwards acknowledge/override/resolve requests upstream.
// There is no optimistic local mutation: the entity is only marked pending,
// and the status change appears with the refresh that confirms it, so a
// rejection needs no rollback.
type ActionUseCase struct {
	snapshot *repositories.SnapshotRepository
	feed     *repositories.UpstreamFeedRepository
}

// AcknowledgeDecision requires explicit confirmation: acknowledging carries
// financial impact on every surface, so the always-confirm rule applies.
func (usecase ActionUseCase) AcknowledgeDecision(ctx context.Context, decisionId, actor string,
	confirmed bool,
) (models.MutationRequest, error) {
	return usecase.submitDecisionMutation(ctx, models.MutationAcknowledge, decisionId, actor, confirmed)
}

func (usecase ActionUseCase) OverrideDecision(ctx context.Context, decisionId, actor string,
	confirmed bool,
) (models.MutationRequest, error) {
	return usecase.submitDecisionMutation(ctx, models.MutationOverride, decisionId, actor, confirmed)
}

func (usecase ActionUseCase) submitDecisionMutation(ctx context.Context, kind models.MutationKind,
	decisionId, actor string, confirmed bool,
) (models.MutationRequest, error) {
	if !confirmed {
		return models.MutationRequest{}, models.ErrConfirmationRequired
	}

	decision, found := findDecision(usecase.snapshot.Decisions(), decisionId)
	if !found {
		return models.MutationRequest{}, models.NotFoundError
	}
	if !decision.IsActionable() {
		return models.MutationRequest{}, models.ErrNotActionable
	}

	return usecase.submit(ctx, kind, decisionId, actor)
}

func (usecase ActionUseCase) ResolveEscalation(ctx context.Context, escalationId, actor string,
	confirmed bool,
) (models.MutationRequest, error) {
	if !confirmed {
		return models.MutationRequest{}, models.ErrConfirmationRequired
	}

	escalation, found := findEscalation(usecase.snapshot.Escalations(), escalationId)
	if !found {
		return models.MutationRequest{}, models.NotFoundError
	}
	if !escalation.IsActionable() {
		return models.MutationRequest{}, models.ErrNotActionable
	}

	return usecase.submit(ctx, models.MutationResolve, escalationId, actor)
}

func (usecase ActionUseCase) submit(ctx context.Context, kind models.MutationKind,
	entityId, actor string,
) (models.MutationRequest, error) {
	mutation := models.MutationRequest{
		Id:          uuid.NewString(),
		Kind:        kind,
		EntityId:    entityId,
		Actor:       actor,
		RequestedAt: time.Now().UTC(),
	}

	usecase.snapshot.MarkPending(entityId)
	if err := usecase.feed.SubmitMutation(ctx, mutation); err != nil {
		usecase.snapshot.ClearPending(entityId)
		return models.MutationRequest{}, err
	}
	return mutation, nil
}

func findDecision(decisions []models.Decision, id string) (models.Decision, bool) {
	for _, d := range decisions {
		if d.Id == id {
			return d, true
		}
	}
	return models.Decision{}, false
}

func findEscalation(escalations []models.Escalation, id string) (models.Escalation, bool) {
	for _, e := range escalations {
		if e.Id == id {
			return e, true
		}
	}
	return models.Escalation{}, false
}

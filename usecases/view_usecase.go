package usecases

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/repositories"
)

// ViewUseCase renders list pages: filter, sort, paginate, all through the
// shared derivation pipeline so every surface agrees on ordering and counts.
type ViewUseCase struct {
	snapshot  *repositories.SnapshotRepository
	viewState *ViewStateStore
}

type DecisionPageResult struct {
	Page    models.Page[models.Decision]
	State   models.ViewState
	DataAge time.Time
}

// ListDecisions reconciles URL-decoded state with the held state, then runs
// the full pipeline over the latest snapshot.
func (usecase ViewUseCase) ListDecisions(now time.Time, decoded models.ViewState) DecisionPageResult {
	state := usecase.viewState.Reconcile(decoded)

	filtered := models.FilterDecisions(now, usecase.snapshot.Decisions(), state.Filters)
	sorted := models.SortDecisions(filtered, state.Sort)
	page := models.NewPage(sorted, state.Pagination)

	usecase.viewState.SetVisibleCount(len(page.Items))

	return DecisionPageResult{
		Page:    page,
		State:   state,
		DataAge: usecase.snapshot.DataAge(),
	}
}

type EscalationPageResult struct {
	Page    models.Page[models.Escalation]
	State   models.ViewState
	DataAge time.Time
}

func (usecase ViewUseCase) ListEscalations(now time.Time, decoded models.ViewState) EscalationPageResult {
	state := usecase.viewState.Reconcile(decoded)

	filtered := models.FilterEscalations(now, usecase.snapshot.Escalations(), state.Filters)
	sorted := models.SortEscalations(filtered, state.Sort)
	page := models.NewPage(sorted, state.Pagination)

	usecase.viewState.SetVisibleCount(len(page.Items))

	return EscalationPageResult{
		Page:    page,
		State:   state,
		DataAge: usecase.snapshot.DataAge(),
	}
}

// VisibleDecisions returns the decisions on the current page without
// touching the held state, for selection dispatch.
func (usecase ViewUseCase) VisibleDecisions(now time.Time) []models.Decision {
	state := usecase.viewState.Current()
	filtered := models.FilterDecisions(now, usecase.snapshot.Decisions(), state.Filters)
	sorted := models.SortDecisions(filtered, state.Sort)
	return models.Paginate(sorted, state.Pagination)
}

func (usecase ViewUseCase) VisibleEscalations(now time.Time) []models.Escalation {
	state := usecase.viewState.Current()
	filtered := models.FilterEscalations(now, usecase.snapshot.Escalations(), state.Filters)
	sorted := models.SortEscalations(filtered, state.Sort)
	return models.Paginate(sorted, state.Pagination)
}

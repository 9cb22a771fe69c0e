package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewatch/tidewatch-backend/models"
)

func newTestViewStateStore() *ViewStateStore {
	return NewViewStateStore(models.PaginationDefaults{Page: 1, Size: 25})
}

func decodedState(store *ViewStateStore, mutate func(models.ViewState) models.ViewState) models.ViewState {
	return mutate(store.Current())
}

func TestReconcileUrlWins(t *testing.T) {
	store := newTestViewStateStore()

	decoded := decodedState(store, func(s models.ViewState) models.ViewState {
		return s.WithFilters(models.FilterCriteria{Urgency: "IMMEDIATE"})
	})
	next := store.Reconcile(decoded)

	assert.Equal(t, "IMMEDIATE", next.Filters.Urgency)
	assert.Equal(t, "IMMEDIATE", store.Current().Filters.Urgency)
}

func TestReconcileActiveSurvivesWhenUnchanged(t *testing.T) {
	store := newTestViewStateStore()
	view, found := models.FindView(models.BuiltInViews(), "builtin:pending")
	require.True(t, found)
	store.ApplyView(view)

	// Same criteria and sort come back from the URL, only the page moves.
	decoded := decodedState(store, func(s models.ViewState) models.ViewState {
		s.Pagination.Page = 3
		return s
	})
	next := store.Reconcile(decoded)

	id, active := next.Active.Id()
	assert.True(t, active)
	assert.Equal(t, "builtin:pending", id)
	assert.Equal(t, 3, next.Pagination.Page)
}

func TestReconcileManualEditClearsActive(t *testing.T) {
	store := newTestViewStateStore()
	view, found := models.FindView(models.BuiltInViews(), "builtin:pending")
	require.True(t, found)
	store.ApplyView(view)

	decoded := decodedState(store, func(s models.ViewState) models.ViewState {
		return s.WithFilters(models.FilterCriteria{Status: string(models.DecisionPending), Customer: "acme"})
	})
	next := store.Reconcile(decoded)

	_, active := next.Active.Id()
	assert.False(t, active, "a criteria edit must clear the active pointer")
}

func TestReconcileSortChangeClearsActive(t *testing.T) {
	store := newTestViewStateStore()
	view, found := models.FindView(models.BuiltInViews(), "builtin:pending")
	require.True(t, found)
	store.ApplyView(view)

	decoded := decodedState(store, func(s models.ViewState) models.ViewState {
		return s.WithSort(models.SortByExposure)
	})
	next := store.Reconcile(decoded)

	_, active := next.Active.Id()
	assert.False(t, active)
}

func TestSelectionResetsOnFilterChange(t *testing.T) {
	store := newTestViewStateStore()
	store.SetVisibleCount(10)
	selection, _ := store.HandleKey(models.KeyNext, false, nil)
	selection, _ = store.HandleKey(models.KeyNext, false, nil)
	require.Equal(t, 1, selection.Index)

	decoded := decodedState(store, func(s models.ViewState) models.ViewState {
		return s.WithFilters(models.FilterCriteria{Search: "strait"})
	})
	store.Reconcile(decoded)

	assert.Equal(t, -1, store.Selection().Index, "filter change must reset selection")
}

func TestSelectionResetsOnPageChange(t *testing.T) {
	store := newTestViewStateStore()
	store.SetVisibleCount(10)
	store.HandleKey(models.KeyNext, false, nil)

	decoded := decodedState(store, func(s models.ViewState) models.ViewState {
		s.Pagination.Page = 2
		return s
	})
	store.Reconcile(decoded)

	assert.Equal(t, -1, store.Selection().Index)
}

func TestSelectionSurvivesSortChange(t *testing.T) {
	store := newTestViewStateStore()
	store.SetVisibleCount(10)
	store.HandleKey(models.KeyNext, false, nil)

	decoded := decodedState(store, func(s models.ViewState) models.ViewState {
		return s.WithSort(models.SortByDeadline)
	})
	store.Reconcile(decoded)

	// Same rows in a different order stay addressable by index.
	assert.Equal(t, 0, store.Selection().Index)
}

func TestClearActiveIfOnlyMatchingView(t *testing.T) {
	store := newTestViewStateStore()
	view, found := models.FindView(models.BuiltInViews(), "builtin:all")
	require.True(t, found)
	store.ApplyView(view)

	store.ClearActiveIf("builtin:pending")
	_, active := store.Current().Active.Id()
	assert.True(t, active, "clearing a different view id must not touch the pointer")

	store.ClearActiveIf("builtin:all")
	_, active = store.Current().Active.Id()
	assert.False(t, active)
}

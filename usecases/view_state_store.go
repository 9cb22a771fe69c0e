package usecases

import (
	"sync"

	"github.com/tidewatch/tidewatch-backend/models"
)

// ViewStateStore owns the active filter/sort/page/selection state. The saved
// view store and the URL synchronizer both read and write through here, so
// every surface converges on one state. Transitions delegate to the pure
// models.ViewState functions; this type only adds the cross-call ownership.
type ViewStateStore struct {
	mu        sync.Mutex
	state     models.ViewState
	selection models.Selection
	defaults  models.PaginationDefaults
}

func NewViewStateStore(defaults models.PaginationDefaults) *ViewStateStore {
	return &ViewStateStore{
		state:     models.DefaultViewState(defaults),
		selection: models.NewSelection(0),
		defaults:  defaults,
	}
}

func (store *ViewStateStore) Current() models.ViewState {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state
}

// Reconcile merges URL-decoded state with the held state, URL wins. An
// active named view survives only if the decoded criteria and sort are
// unchanged; anything else counts as a manual edit and clears the pointer.
// Selection resets whenever the visible page would change.
func (store *ViewStateStore) Reconcile(decoded models.ViewState) models.ViewState {
	store.mu.Lock()
	defer store.mu.Unlock()

	previous := store.state
	next := decoded
	if previous.Filters == decoded.Filters && previous.Sort == decoded.Sort {
		next.Active = previous.Active
	} else {
		next.Active = models.NoActiveView()
	}

	if previous.Filters != next.Filters || previous.Pagination != next.Pagination {
		store.selection = store.selection.Reset(0)
	}
	store.state = next
	return next
}

// ApplyView copies a saved view snapshot into the active state.
func (store *ViewStateStore) ApplyView(view models.SavedView) models.ViewState {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.state = store.state.WithAppliedView(view)
	store.selection = store.selection.Reset(0)
	return store.state
}

// ClearActiveIf drops the active pointer when it references the given view,
// used after a cap eviction or deletion removes the view.
func (store *ViewStateStore) ClearActiveIf(viewId string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if id, ok := store.state.Active.Id(); ok && id == viewId {
		store.state.Active = models.NoActiveView()
	}
}

// SetVisibleCount tells the selection how many items the current page shows.
// The index is preserved when still in range, reset otherwise.
func (store *ViewStateStore) SetVisibleCount(count int) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.selection.LastIndex != count-1 {
		store.selection = store.selection.Reset(count)
	}
}

func (store *ViewStateStore) Selection() models.Selection {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.selection
}

func (store *ViewStateStore) HandleKey(key models.SelectionKey, editableFocused bool,
	actionable func(index int) bool,
) (models.Selection, models.SelectionAction) {
	store.mu.Lock()
	defer store.mu.Unlock()
	next, action := store.selection.Handle(key, editableFocused, actionable)
	store.selection = next
	return next, action
}

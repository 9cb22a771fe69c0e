package usecases

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/pure_utils"
	"github.com/tidewatch/tidewatch-backend/utils"
)

type SavedViewRepository interface {
	ListUserViews(ctx context.Context) []models.SavedView
	WriteUserViews(ctx context.Context, views []models.SavedView) error
}

// SavedViewStore owns the persisted view list: built-ins seeded first, user
// views behind them in creation order. Every mutation is written through to
// durable storage; a write failure only logs, the in-memory list stays valid
// for the session.
type SavedViewStore struct {
	mu         sync.Mutex
	views      []models.SavedView
	repository SavedViewRepository
	maxViews   int
}

// NewSavedViewStore loads persisted user views. Corrupt or unreadable
// storage silently yields built-ins only; that is the repository's contract.
func NewSavedViewStore(ctx context.Context, repository SavedViewRepository, maxViews int) *SavedViewStore {
	views := models.BuiltInViews()
	views = append(views, repository.ListUserViews(ctx)...)
	return &SavedViewStore{
		views:      views,
		repository: repository,
		maxViews:   maxViews,
	}
}

func (store *SavedViewStore) List() []models.SavedView {
	store.mu.Lock()
	defer store.mu.Unlock()
	out := make([]models.SavedView, len(store.views))
	copy(out, store.views)
	return out
}

func (store *SavedViewStore) Find(id string) (models.SavedView, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return models.FindView(store.views, id)
}

// Save appends a user view, evicting the oldest user view first when over
// cap. Returns the created view and the ids evicted to make room.
func (store *SavedViewStore) Save(ctx context.Context, name string, filters models.FilterCriteria,
	sort models.SortingField,
) (models.SavedView, []string, error) {
	if strings.TrimSpace(name) == "" {
		return models.SavedView{}, nil, models.ErrViewNameRequired
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	view := models.SavedView{
		Id:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Kind:      models.ViewUser,
		Filters:   filters,
		Sort:      sort,
		CreatedAt: time.Now().UTC(),
	}

	before := store.views
	store.views = models.AppendUserView(before, view, store.maxViews)

	evicted := make([]string, 0, 1)
	for _, v := range before {
		if _, stillThere := models.FindView(store.views, v.Id); !stillThere {
			evicted = append(evicted, v.Id)
		}
	}

	store.persist(ctx)
	return view, evicted, nil
}

func (store *SavedViewStore) Delete(ctx context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	view, found := models.FindView(store.views, id)
	if !found {
		return models.ErrViewNotFound
	}
	if view.IsBuiltIn() {
		return models.ErrBuiltInViewImmutable
	}

	store.views = pure_utils.Filter(store.views, func(v models.SavedView) bool {
		return v.Id != id
	})

	store.persist(ctx)
	return nil
}

// persist is fire-and-forget: a failed write degrades to session-only state.
// Callers hold the lock.
func (store *SavedViewStore) persist(ctx context.Context) {
	if err := store.repository.WriteUserViews(ctx, store.views); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx,
			"persisting saved views failed, keeping in-memory state", "error", err.Error())
	}
}

// SavedViewUseCase glues the store to the active view state.
type SavedViewUseCase struct {
	store     *SavedViewStore
	viewState *ViewStateStore
}

func (usecase SavedViewUseCase) List() []models.SavedView {
	return usecase.store.List()
}

func (usecase SavedViewUseCase) Create(ctx context.Context, name string,
	filters models.FilterCriteria, sort models.SortingField,
) (models.SavedView, error) {
	view, evicted, err := usecase.store.Save(ctx, name, filters, sort)
	if err != nil {
		return models.SavedView{}, err
	}
	for _, id := range evicted {
		usecase.viewState.ClearActiveIf(id)
	}
	return view, nil
}

// Apply copies the view snapshot into active state and sets the single
// active-view pointer.
func (usecase SavedViewUseCase) Apply(viewId string) (models.ViewState, error) {
	view, found := usecase.store.Find(viewId)
	if !found {
		return models.ViewState{}, models.ErrViewNotFound
	}
	return usecase.viewState.ApplyView(view), nil
}

func (usecase SavedViewUseCase) Delete(ctx context.Context, viewId string) error {
	if err := usecase.store.Delete(ctx, viewId); err != nil {
		return err
	}
	usecase.viewState.ClearActiveIf(viewId)
	return nil
}

package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewatch/tidewatch-backend/models"
)

type fakeSavedViewRepository struct {
	loaded   []models.SavedView
	written  []models.SavedView
	writeErr error
}

func (r *fakeSavedViewRepository) ListUserViews(ctx context.Context) []models.SavedView {
	return r.loaded
}

func (r *fakeSavedViewRepository) WriteUserViews(ctx context.Context, views []models.SavedView) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.written = models.UserViews(views)
	return nil
}

func newTestSavedViewUseCase(repo SavedViewRepository, maxViews int) (SavedViewUseCase, *ViewStateStore) {
	store := NewSavedViewStore(context.Background(), repo, maxViews)
	viewState := NewViewStateStore(models.PaginationDefaults{Page: 1, Size: 25})
	return SavedViewUseCase{store: store, viewState: viewState}, viewState
}

func TestSavedViewStoreSeedsBuiltIns(t *testing.T) {
	usecase, _ := newTestSavedViewUseCase(&fakeSavedViewRepository{}, 20)
	views := usecase.List()
	assert.Len(t, views, len(models.BuiltInViews()))
}

func TestCreateViewPersistsUserViewsOnly(t *testing.T) {
	repo := &fakeSavedViewRepository{}
	usecase, _ := newTestSavedViewUseCase(repo, 20)

	view, err := usecase.Create(context.Background(), "My urgent view",
		models.FilterCriteria{Urgency: "IMMEDIATE"}, models.SortByExposure)
	require.NoError(t, err)
	assert.NotEmpty(t, view.Id)
	assert.Equal(t, models.ViewUser, view.Kind)

	require.Len(t, repo.written, 1)
	assert.Equal(t, view.Id, repo.written[0].Id)
}

func TestCreateViewRequiresName(t *testing.T) {
	usecase, _ := newTestSavedViewUseCase(&fakeSavedViewRepository{}, 20)
	_, err := usecase.Create(context.Background(), "   ", models.FilterCriteria{}, models.SortByUrgency)
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestCapEvictionLeavesExactlyCapViews(t *testing.T) {
	repo := &fakeSavedViewRepository{}
	maxViews := len(models.BuiltInViews()) + 3
	usecase, _ := newTestSavedViewUseCase(repo, maxViews)

	var lastId string
	for i := 0; i < 4; i++ {
		view, err := usecase.Create(context.Background(), fmt.Sprintf("view %d", i),
			models.FilterCriteria{}, models.SortByUrgency)
		require.NoError(t, err)
		lastId = view.Id
	}

	views := usecase.List()
	assert.Len(t, views, maxViews)
	_, found := models.FindView(views, lastId)
	assert.True(t, found, "most recent view must survive")
	assert.Len(t, models.UserViews(views), 3)
}

func TestEvictionClearsActivePointer(t *testing.T) {
	repo := &fakeSavedViewRepository{}
	maxViews := len(models.BuiltInViews()) + 1
	usecase, viewState := newTestSavedViewUseCase(repo, maxViews)

	first, err := usecase.Create(context.Background(), "first", models.FilterCriteria{}, models.SortByUrgency)
	require.NoError(t, err)
	_, err = usecase.Apply(first.Id)
	require.NoError(t, err)

	_, err = usecase.Create(context.Background(), "second", models.FilterCriteria{}, models.SortByUrgency)
	require.NoError(t, err)

	_, active := viewState.Current().Active.Id()
	assert.False(t, active, "evicting the active view must clear the pointer")
}

func TestApplySetsActivePointer(t *testing.T) {
	usecase, viewState := newTestSavedViewUseCase(&fakeSavedViewRepository{}, 20)

	state, err := usecase.Apply("builtin:pending")
	require.NoError(t, err)

	id, active := state.Active.Id()
	assert.True(t, active)
	assert.Equal(t, "builtin:pending", id)
	assert.Equal(t, "PENDING", viewState.Current().Filters.Status)
}

func TestApplyUnknownViewFails(t *testing.T) {
	usecase, _ := newTestSavedViewUseCase(&fakeSavedViewRepository{}, 20)
	_, err := usecase.Apply("nope")
	assert.ErrorIs(t, err, models.NotFoundError)
}

func TestDeleteUserViewRemovesItAndClearsPointer(t *testing.T) {
	repo := &fakeSavedViewRepository{}
	usecase, viewState := newTestSavedViewUseCase(repo, 20)

	view, err := usecase.Create(context.Background(), "short lived", models.FilterCriteria{}, models.SortByUrgency)
	require.NoError(t, err)
	_, err = usecase.Apply(view.Id)
	require.NoError(t, err)

	require.NoError(t, usecase.Delete(context.Background(), view.Id))

	_, found := models.FindView(usecase.List(), view.Id)
	assert.False(t, found)
	assert.Empty(t, repo.written)
	_, active := viewState.Current().Active.Id()
	assert.False(t, active, "deleting the active view must clear the pointer")
}

func TestDeleteBuiltInRejected(t *testing.T) {
	usecase, _ := newTestSavedViewUseCase(&fakeSavedViewRepository{}, 20)
	err := usecase.Delete(context.Background(), "builtin:all")
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	repo := &fakeSavedViewRepository{writeErr: errors.New("disk full")}
	usecase, _ := newTestSavedViewUseCase(repo, 20)

	view, err := usecase.Create(context.Background(), "survives", models.FilterCriteria{}, models.SortByUrgency)
	require.NoError(t, err, "a persistence failure must not surface")

	_, found := models.FindView(usecase.List(), view.Id)
	assert.True(t, found)
}

func TestCorruptStorageFallsBackToBuiltIns(t *testing.T) {
	// The repository contract: corrupt storage loads as nil.
	usecase, _ := newTestSavedViewUseCase(&fakeSavedViewRepository{loaded: nil}, 20)
	assert.Len(t, usecase.List(), len(models.BuiltInViews()))
}

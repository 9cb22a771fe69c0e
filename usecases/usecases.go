package usecases

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/repositories"
)

type Configuration struct {
	RefreshInterval      time.Duration
	SavedViewsCap        int
	PaginationDefaults   models.PaginationDefaults
	ChokepointThresholds models.ChokepointThresholds
}

// Usecases is the dependency container handlers build their usecases from,
// one per request.
type Usecases struct {
	Config         Configuration
	Snapshot       *repositories.SnapshotRepository
	Feed           *repositories.UpstreamFeedRepository
	SavedViewStore *SavedViewStore
	ViewStateStore *ViewStateStore
}

func NewUsecases(config Configuration, snapshot *repositories.SnapshotRepository,
	feed *repositories.UpstreamFeedRepository, savedViews *SavedViewStore,
) Usecases {
	return Usecases{
		Config:         config,
		Snapshot:       snapshot,
		Feed:           feed,
		SavedViewStore: savedViews,
		ViewStateStore: NewViewStateStore(config.PaginationDefaults),
	}
}

func (uc Usecases) NewViewUseCase() ViewUseCase {
	return ViewUseCase{
		snapshot:  uc.Snapshot,
		viewState: uc.ViewStateStore,
	}
}

func (uc Usecases) NewNotificationUseCase() NotificationUseCase {
	return NotificationUseCase{snapshot: uc.Snapshot}
}

func (uc Usecases) NewChokepointUseCase() ChokepointUseCase {
	return ChokepointUseCase{
		snapshot:   uc.Snapshot,
		thresholds: uc.Config.ChokepointThresholds,
	}
}

func (uc Usecases) NewSavedViewUseCase() SavedViewUseCase {
	return SavedViewUseCase{
		store:     uc.SavedViewStore,
		viewState: uc.ViewStateStore,
	}
}

func (uc Usecases) NewActionUseCase() ActionUseCase {
	return ActionUseCase{
		snapshot: uc.Snapshot,
		feed:     uc.Feed,
	}
}

func (uc Usecases) NewRefreshUseCase() RefreshUseCase {
	return RefreshUseCase{
		snapshot: uc.Snapshot,
		feed:     uc.Feed,
		interval: uc.Config.RefreshInterval,
	}
}

package usecases

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/repositories"
)

// ChokepointUseCase derives the per-chokepoint status the map overlay
// consumes. Pure aggregation over the latest signal snapshot.
type ChokepointUseCase struct {
	snapshot   *repositories.SnapshotRepository
	thresholds models.ChokepointThresholds
}

type ChokepointResult struct {
	States  []models.ChokepointState
	DataAge time.Time
}

func (usecase ChokepointUseCase) Derive() ChokepointResult {
	return ChokepointResult{
		States: models.DeriveChokepointStates(
			models.ChokepointRegistry(), usecase.snapshot.Signals(), usecase.thresholds),
		DataAge: usecase.snapshot.DataAge(),
	}
}

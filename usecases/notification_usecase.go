package usecases

import (
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/repositories"
)

// NotificationUseCase is the single aggregation point behind every badge and
// tray surface. No memoization: statuses can change between passes, so each
// call re-derives from the latest snapshot.
type NotificationUseCase struct {
	snapshot *repositories.SnapshotRepository
}

type NotificationResult struct {
	Items   []models.NotificationItem
	Counts  models.BadgeCounts
	Total   float64
	DataAge time.Time
}

func (usecase NotificationUseCase) Aggregate(now time.Time) NotificationResult {
	items := models.AggregateNotifications(now,
		usecase.snapshot.Decisions(), usecase.snapshot.Escalations())
	return NotificationResult{
		Items:   items,
		Counts:  models.CountBadges(items),
		Total:   models.TotalExposure(items),
		DataAge: usecase.snapshot.DataAge(),
	}
}

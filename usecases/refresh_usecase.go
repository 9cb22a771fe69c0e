package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tidewatch/tidewatch-backend/dto"
	"github.com/tidewatch/tidewatch-backend/pure_utils"
	"github.com/tidewatch/tidewatch-backend/repositories"
	"github.com/tidewatch/tidewatch-backend/utils"
)

// RefreshUseCase drives the pull-based refresh cycle: fetch the upstream
// snapshot, normalize every record, and install it. Stale payloads are
// discarded by the snapshot repository, so a slow superseded fetch can never
// corrupt view state.
type RefreshUseCase struct {
	snapshot *repositories.SnapshotRepository
	feed     *repositories.UpstreamFeedRepository
	interval time.Duration
}

func (usecase RefreshUseCase) RefreshOnce(ctx context.Context) error {
	payload, err := usecase.feed.FetchSnapshot(ctx)
	if err != nil {
		return err
	}

	fetchedAt := payload.UpdatedAt.ValueOrZero()
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	installed := usecase.snapshot.Replace(
		pure_utils.Map(payload.Decisions, dto.AdaptDecision),
		pure_utils.Map(payload.Escalations, dto.AdaptEscalation),
		pure_utils.Map(payload.Signals, dto.AdaptSignal),
		fetchedAt,
	)
	if !installed {
		utils.LoggerFromContext(ctx).DebugContext(ctx, "discarded stale upstream snapshot",
			"fetched_at", fetchedAt)
	}
	return nil
}

// RunPeriodicRefresh polls until the context is done. The first cycle runs
// immediately so surfaces have data as soon as the process is up.
func (usecase RefreshUseCase) RunPeriodicRefresh(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := usecase.RefreshOnce(ctx); err != nil {
			logger.WarnContext(ctx, "initial snapshot refresh failed", "error", err.Error())
		}

		ticker := time.NewTicker(usecase.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := usecase.RefreshOnce(ctx); err != nil {
					logger.WarnContext(ctx, "snapshot refresh failed", "error", err.Error())
				}
			}
		}
	})
	return group.Wait()
}

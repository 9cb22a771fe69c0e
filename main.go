package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tidewatch/tidewatch-backend/api"
	"github.com/tidewatch/tidewatch-backend/models"
	"github.com/tidewatch/tidewatch-backend/repositories"
	"github.com/tidewatch/tidewatch-backend/usecases"
	"github.com/tidewatch/tidewatch-backend/utils"
)

type AppConfiguration struct {
	env             string
	port            string
	consoleUrl      string
	upstreamUri     string
	refreshInterval time.Duration
	savedViewsPath  string
	savedViewsCap   int
	thresholds      models.ChokepointThresholds
}

func loadConfiguration() AppConfiguration {
	return AppConfiguration{
		env:             utils.GetStringEnv("ENV", "development"),
		port:            utils.GetStringEnv("PORT", "8080"),
		consoleUrl:      utils.GetStringEnv("CONSOLE_URL", ""),
		upstreamUri:     utils.GetRequiredStringEnv("UPSTREAM_URI"),
		refreshInterval: utils.GetDurationEnv("REFRESH_INTERVAL", 30*time.Second),
		savedViewsPath:  utils.GetStringEnv("SAVED_VIEWS_PATH", "data/saved_views.json"),
		savedViewsCap:   utils.GetIntEnv("SAVED_VIEWS_CAP", 20),
		thresholds: models.ChokepointThresholds{
			DegradedAt:  utils.GetIntEnv("CHOKEPOINT_DEGRADED_AT", models.DefaultChokepointThresholds().DegradedAt),
			DisruptedAt: utils.GetIntEnv("CHOKEPOINT_DISRUPTED_AT", models.DefaultChokepointThresholds().DisruptedAt),
		},
	}
}

func main() {
	conf := loadConfiguration()
	logger := utils.NewLogger(conf.env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = utils.StoreLoggerInContext(ctx, logger)

	snapshot := repositories.NewSnapshotRepository()
	feed := repositories.NewUpstreamFeedRepository(conf.upstreamUri)
	savedViewRepository := repositories.NewSavedViewFileRepository(conf.savedViewsPath)
	savedViews := usecases.NewSavedViewStore(ctx, savedViewRepository, conf.savedViewsCap)

	uc := usecases.NewUsecases(usecases.Configuration{
		RefreshInterval:      conf.refreshInterval,
		SavedViewsCap:        conf.savedViewsCap,
		PaginationDefaults:   models.PaginationDefaults{Page: 1, Size: 25},
		ChokepointThresholds: conf.thresholds,
	}, snapshot, feed, savedViews)

	router := initRouter(ctx, conf)
	server := api.NewServer(router, api.Configuration{Env: conf.env, Port: conf.port}, uc)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return uc.NewRefreshUseCase().RunPeriodicRefresh(ctx)
	})
	group.Go(func() error {
		logger.InfoContext(ctx, "starting server", "port", conf.port, "env", conf.env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorContext(ctx, "server exited", "error", err.Error())
	}
}

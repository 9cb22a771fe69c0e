package main

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/api/middleware"
	"github.com/tidewatch/tidewatch-backend/utils"
)

// corsOption builds the origin allowlist from the configured console URL.
// Development additionally allows the local dev servers. A missing or
// unusable console URL means browser requests to the API will be rejected.
func corsOption(ctx context.Context, conf AppConfiguration) cors.Config {
	logger := utils.LoggerFromContext(ctx)
	allowedOrigins := []string{}

	if conf.consoleUrl != "" {
		parsedUrl, err := url.Parse(conf.consoleUrl)
		switch {
		case err != nil:
			logger.ErrorContext(ctx,
				"failed to parse CONSOLE_URL for CORS, requests from the console will be rejected",
				"url", conf.consoleUrl)
		case !slices.Contains([]string{"http", "https"}, parsedUrl.Scheme):
			logger.ErrorContext(ctx,
				"CONSOLE_URL has no http or https scheme, so it cannot be used for CORS",
				"url", conf.consoleUrl)
		default:
			u := url.URL{
				Scheme: parsedUrl.Scheme,
				Host:   parsedUrl.Host,
			}
			allowedOrigins = append(allowedOrigins, u.String())
		}
	}

	if conf.env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func initRouter(ctx context.Context, conf AppConfiguration) *gin.Engine {
	if conf.env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)
	loggingMiddleware := middleware.NewLogging(logger, middleware.WithIgnorePath([]string{"/liveness"}))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggingMiddleware)

	// An empty allowlist means no CORS headers are emitted at all; browsers
	// then reject cross-origin reads on their own.
	corsConfig := corsOption(ctx, conf)
	if len(corsConfig.AllowOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}

	return r
}

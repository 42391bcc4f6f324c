package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/domain/rewards"
	"github.com/roamly/roamly/internal/app/domain/tracking"
	"github.com/roamly/roamly/internal/app/domain/trips"
	"github.com/roamly/roamly/internal/app/domain/user"
	"github.com/roamly/roamly/internal/app/observability/metrics"
)

// Deps bundles the collaborators the HTTP layer exposes.
type Deps struct {
	Registry *user.Registry
	Tracking tracking.Service
	Trips    trips.Service
}

// SetupRouter configures and returns the Gin router with all middleware and routes.
func SetupRouter(deps Deps, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("roamly"))
	r.Use(func(c *gin.Context) {
		c.Next()
		metrics.RecordHTTPRequest(c.Request.Context())
	})

	trackingHandler := tracking.NewHandler(deps.Registry, deps.Tracking, logger)
	rewardsHandler := rewards.NewHandler(deps.Registry, logger)
	tripsHandler := trips.NewHandler(deps.Registry, deps.Trips, logger)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Greetings from Roamly!")
	})
	r.GET("/location", trackingHandler.GetLocation)
	r.GET("/nearby-attractions", trackingHandler.GetNearbyAttractions)
	r.GET("/rewards", rewardsHandler.GetRewards)
	r.GET("/trip-deals", tripsHandler.GetTripDeals)

	return r
}

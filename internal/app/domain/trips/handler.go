package trips

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/domain/user"
	"github.com/roamly/roamly/internal/app/models"
)

type Handler struct {
	logger   *zap.Logger
	registry *user.Registry
	service  Service
}

func NewHandler(registry *user.Registry, service Service, logger *zap.Logger) *Handler {
	return &Handler{
		logger:   logger,
		registry: registry,
		service:  service,
	}
}

// GetTripDeals quotes trip deals for the user.
func (h *Handler) GetTripDeals(c *gin.Context) {
	name := c.Query("userName")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName is required"})
		return
	}

	u, err := h.registry.Get(name)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown user " + name})
			return
		}
		h.logger.Error("User lookup failed", zap.String("userName", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}

	deals, err := h.service.TripDeals(c.Request.Context(), u)
	if err != nil {
		h.logger.Error("Failed to quote trip deals", zap.String("userName", name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "pricing provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, deals)
}

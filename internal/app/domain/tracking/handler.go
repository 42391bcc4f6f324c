package tracking

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

// GetLocation returns the user's current (possibly freshly tracked) location.
func (h *Handler) GetLocation(c *gin.Context) {
	u, ok := h.resolveUser(c)
	if !ok {
		return
	}

	visit, err := h.service.CurrentLocation(c.Request.Context(), u)
	if err != nil {
		h.logger.Error("Failed to resolve current location", zap.String("userName", u.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "location provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, visit)
}

// GetNearbyAttractions returns the five closest attractions to the user.
func (h *Handler) GetNearbyAttractions(c *gin.Context) {
	u, ok := h.resolveUser(c)
	if !ok {
		return
	}

	nearby, err := h.service.NearbyAttractions(c.Request.Context(), u)
	if err != nil {
		h.logger.Error("Failed to compute nearby attractions", zap.String("userName", u.Name), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "attraction lookup failed"})
		return
	}
	c.JSON(http.StatusOK, nearby)
}

func (h *Handler) resolveUser(c *gin.Context) (*models.User, bool) {
	name := c.Query("userName")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName is required"})
		return nil, false
	}
	u, err := h.registry.Get(name)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown user " + name})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return nil, false
	}
	return u, true
}

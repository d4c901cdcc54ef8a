// handlers.go - Shared handler state and helpers

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-asset-backend/config"
	"go-asset-backend/mqtt"
	"go-asset-backend/realtime"
)

// Handler carries the process-wide dependencies (store handle, broadcast
// hub, config, logger) into every route handler. Initialized once at
// startup.
type Handler struct {
	DB     *gorm.DB
	Hub    *realtime.Hub
	Bridge *mqtt.Bridge // nil when no broker is configured
	Cfg    *config.Config
	Log    *zap.Logger
}

// New builds a Handler. hub and bridge may be nil (tests, bridge disabled).
func New(db *gorm.DB, hub *realtime.Hub, bridge *mqtt.Bridge, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{DB: db, Hub: hub, Bridge: bridge, Cfg: cfg, Log: log}
}

// publish fans a mutation event out to the realtime channel and, when
// configured, the MQTT bridge.
func (h *Handler) publish(event string, data interface{}) {
	if h.Hub != nil {
		h.Hub.Publish(event, data)
	}
	if h.Bridge != nil {
		h.Bridge.Publish(event, data)
	}
}

// serverError logs the underlying failure and reports a generic 500. No
// internal detail reaches the client.
func (h *Handler) serverError(c *gin.Context, err error) {
	h.Log.Error("server error", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK     = "ok"
	statusPlay   = "play"
	statusPause  = "pause"
	statusToggle = "toggle"
	statusReset  = "reset"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with the command name and the snapshot after it was applied.
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string) {
	if id, ok := operatorID(c); ok && h.log != nil {
		h.log.Infow("playback_command", "command", status, "operator_id", id)
	}
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"state":  h.services.Monitoring.Snapshot(c.Request.Context()),
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Start playback
// @Description  No-op when the dataset is empty, playback is running or finished.
// @Tags         playback
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/playback/play [post]
// @Security     BearerAuth
func (h *Handler) play(c *gin.Context) {
	h.services.Playback.Play(c.Request.Context())
	h.respondWithStatusAndState(c, statusPlay)
}

// @Summary      Pause playback
// @Tags         playback
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/playback/pause [post]
// @Security     BearerAuth
func (h *Handler) pause(c *gin.Context) {
	h.services.Playback.Pause(c.Request.Context())
	h.respondWithStatusAndState(c, statusPause)
}

// @Summary      Toggle play/pause
// @Tags         playback
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/playback/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggle(c *gin.Context) {
	h.services.Playback.Toggle(c.Request.Context())
	h.respondWithStatusAndState(c, statusToggle)
}

// @Summary      Reset playback
// @Description  Rewinds to the first row and clears the alert.
// @Tags         playback
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/playback/reset [post]
// @Security     BearerAuth
func (h *Handler) reset(c *gin.Context) {
	h.services.Playback.Reset(c.Request.Context())
	h.respondWithStatusAndState(c, statusReset)
}

// @Summary      Get playback state
// @Tags         playback
// @Produce      json
// @Success      200  {object}  models.PlaybackSnapshot
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/playback/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Monitoring.Snapshot(c.Request.Context()))
}

package handlers

import (
	"net/http"
	"strconv"

	"dehydrate_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errGetDataset    = "failed to load dataset info"
	errListReadings  = "failed to list readings"
	errOffsetInvalid = "invalid 'offset'; use a non-negative integer"
	errLimitInvalid  = "invalid 'limit'; use an integer between 1 and 500"
)

// @Summary      Dataset summary
// @Description  Source, row counts and load error of the dataset loaded at startup.
// @Tags         dataset
// @Produce      json
// @Success      200  {object}  models.DatasetInfo
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dataset [get]
// @Security     BearerAuth
func (h *Handler) getDataset(c *gin.Context) {
	info, err := h.services.Dataset.Info(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetDataset, "dataset_info_failed", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// @Summary      List readings
// @Tags         dataset
// @Produce      json
// @Param        offset  query   int  false  "First row"  default(0)
// @Param        limit   query   int  false  "Page size (max 500)"  default(50)
// @Success      200  {object}  service.ReadingsPage
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/dataset/readings [get]
// @Security     BearerAuth
func (h *Handler) getReadings(c *gin.Context) {
	offset, ok := queryInt(c, "offset")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errOffsetInvalid})
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errLimitInvalid})
		return
	}

	page, err := h.services.Dataset.Readings(c.Request.Context(), offset, limit)
	if err != nil {
		if service.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errListReadings, "dataset_readings_failed", err,
			"offset", offset, "limit", limit)
		return
	}
	c.JSON(http.StatusOK, page)
}

// queryInt reads an optional integer query parameter; missing means 0.
func queryInt(c *gin.Context, key string) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return 0, true
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}

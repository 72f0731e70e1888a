package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/vle-dashboard-api/internal/middleware"
	"github.com/noah-isme/vle-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
	"github.com/noah-isme/vle-dashboard-api/pkg/response"
)

func idParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be a positive integer")
	}
	return id, nil
}

// scopeFromQuery reads the global filter selections from repeatable query
// params. Absent params mean "all" for that dimension.
func scopeFromQuery(c *gin.Context) models.ScopeSelection {
	return models.ScopeSelection{
		Semesters:   c.QueryArray("semester"),
		Instructors: c.QueryArray("instructor"),
	}
}

func writeWithMeta(c *gin.Context, start time.Time, cacheHit bool, data interface{}) {
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, data, meta)
}

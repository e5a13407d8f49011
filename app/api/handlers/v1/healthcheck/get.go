package healthcheck

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/user-notes/platform/web/handler"
	"github.com/ribgsilva/user-notes/sys"
	"net/http"
)

type Status struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
	Cache    string `json:"cache" example:"ok"`
}

// Get godoc
// @Summary Healthcheck
// @Description Checks the database and cache connections
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} healthcheck.Status
// @Router /v1/healthcheck [get]
func Get(ctx *gin.Context) handler.Result {
	s := Status{Status: "ok", Database: "ok", Cache: "ok"}

	if db := sys.R.Database; db != nil {
		dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := db.PingContext(dbCtx); err != nil {
			sys.R.Log.Warn("healthcheck: database ping failed: ", err)
			s.Status, s.Database = "unavailable", err.Error()
		}
	}

	if cache := sys.R.Cache; cache != nil {
		tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.PingTimeout)
		defer tcCancel()
		if err := cache.Ping(tcCtx).Err(); err != nil {
			sys.R.Log.Warn("healthcheck: cache ping failed: ", err)
			s.Status, s.Cache = "unavailable", err.Error()
		}
	}

	if s.Status != "ok" {
		return handler.Result{Status: http.StatusServiceUnavailable, Body: s}
	}
	return handler.Result{Status: http.StatusOK, Body: s}
}

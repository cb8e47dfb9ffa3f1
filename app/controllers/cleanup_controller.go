package controllers

import (
	"context"

	"github.com/fotoflo/cloudhunter/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Sweeper runs the expired-session sweep.
type Sweeper interface {
	Sweep(ctx context.Context, limit, maxConcurrent int) error
}

// CleanupDefaults are deployment-level overrides for the sweep
// parameters; zero means use the component defaults.
type CleanupDefaults struct {
	Limit         int
	MaxConcurrent int
}

type cleanupRequest struct {
	Limit         int `form:"limit" binding:"omitempty,min=1,max=1000"`
	MaxConcurrent int `form:"max_concurrent" binding:"omitempty,min=1,max=100"`
}

// CleanupSessions is the cron entry point removing expired session
// records. Per-record failures do not abort the sweep, but they do
// surface as a failed run so the cron scheduler can alert.
func CleanupSessions(sweeper Sweeper, defaults CleanupDefaults) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request cleanupRequest
		if err := c.ShouldBindQuery(&request); err != nil {
			utils.SimpleResponse(c, 400, "Invalid request", err.Error())
			return
		}

		if request.Limit == 0 {
			request.Limit = defaults.Limit
		}
		if request.MaxConcurrent == 0 {
			request.MaxConcurrent = defaults.MaxConcurrent
		}

		if err := sweeper.Sweep(c.Request.Context(), request.Limit, request.MaxConcurrent); err != nil {
			utils.Logger.Error("session sweep finished with errors", zap.Error(err))
			utils.SimpleResponse(c, 500, "Sweep finished with errors", err.Error())
			return
		}

		utils.Logger.Info("expired sessions swept",
			zap.Int("limit", request.Limit),
			zap.Int("max_concurrent", request.MaxConcurrent))
		utils.SimpleResponse(c, 200, "Expired sessions removed", nil)
	}
}

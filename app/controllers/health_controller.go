package controllers

import (
	"github.com/fotoflo/cloudhunter/pkg/database"
	"github.com/fotoflo/cloudhunter/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Healthz reports whether the document store is reachable.
func Healthz(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			utils.SimpleResponse(c, 503, "Database unreachable", err.Error())
			return
		}
		utils.SimpleResponse(c, 200, "ok", nil)
	}
}

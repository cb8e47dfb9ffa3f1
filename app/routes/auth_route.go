package routes

import (
	"github.com/fotoflo/cloudhunter/app/controllers"
	"github.com/fotoflo/cloudhunter/pkg/database"
	"github.com/fotoflo/cloudhunter/pkg/middleware"
	"github.com/fotoflo/cloudhunter/pkg/session"
	"github.com/fotoflo/cloudhunter/pkg/signer"
	"github.com/gin-gonic/gin"
)

// Dependencies are the constructed collaborators the routes hand to
// their handlers. Built once in main.
type Dependencies struct {
	Store       *database.Store
	Sessions    session.Validator
	Tokens      controllers.TokenStore
	Accounts    controllers.AccountStore
	Sweeper     controllers.Sweeper
	Signer      signer.Signer
	TokenConfig controllers.CustomTokenConfig
	Cleanup     controllers.CleanupDefaults
}

// APIRoute wires the whole HTTP surface. The token endpoint is
// registered for every method on purpose, the handler answers the
// uniform denial for anything but its configured method.
func APIRoute(r *gin.Engine, deps Dependencies) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.Any("/token", controllers.CustomTokenHandler(deps.TokenConfig, deps.Sessions, deps.Tokens, deps.Signer))

	api.GET("/accounts", controllers.ListAccounts(deps.Sessions, deps.Accounts))

	cron := api.Group("/cron", middleware.CronAuth())
	cron.POST("/sessions", controllers.CleanupSessions(deps.Sweeper, deps.Cleanup))

	api.GET("/healthz", controllers.Healthz(deps.Store))
}

package controllers

import (
	"context"

	"github.com/fotoflo/cloudhunter/app/models"
	"github.com/fotoflo/cloudhunter/pkg/session"
	"github.com/fotoflo/cloudhunter/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AccountStore lists linked provider accounts for a user.
type AccountStore interface {
	List(ctx context.Context, userID, provider string) ([]models.Account, error)
}

type accountFilter struct {
	Provider string `form:"provider" binding:"omitempty,provider"`
}

// ListAccounts returns every provider account linked to the caller's
// own identity. Plain pass-through read, store order.
func ListAccounts(sessions session.Validator, accounts AccountStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		callerSession, err := sessions.FromRequest(ctx, c.Request)
		if err != nil {
			utils.SimpleResponse(c, 500, "Internal server error while resolving session", utils.ErrGetData)
			return
		}
		if callerSession == nil {
			utils.SimpleResponse(c, 403, "Unauthorized", utils.ErrUnauthorized)
			return
		}

		var filter accountFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			utils.SimpleResponse(c, 400, "Invalid request", err.Error())
			return
		}

		list, err := accounts.List(ctx, callerSession.User.ID, filter.Provider)
		if err != nil {
			utils.SimpleResponse(c, 500, "Internal server error while listing accounts", utils.ErrGetData)
			return
		}

		utils.SimpleResponse(c, 200, "Accounts acquired", list)
	}
}

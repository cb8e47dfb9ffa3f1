package controllers

import (
	"context"
	"net/http"

	"github.com/fotoflo/cloudhunter/pkg/session"
	"github.com/fotoflo/cloudhunter/pkg/signer"
	"github.com/fotoflo/cloudhunter/pkg/utils"
	"github.com/gin-gonic/gin"
)

// TokenStore is the cached custom-token record access the issuer needs.
type TokenStore interface {
	Read(ctx context.Context, sessionToken string) (string, error)
	Write(ctx context.Context, sessionToken, token string) (string, error)
}

// CustomTokenConfig tunes the issuance handler per deployment.
type CustomTokenConfig struct {
	// Method the endpoint accepts, default GET. Anything else is denied.
	Method string

	// AdditionalClaims extends the minted token's claims from the
	// resolved session. The session token is always merged in on top.
	AdditionalClaims func(*session.Session) map[string]any
}

// CustomTokenHandler issues the short-lived signed token for the
// caller's session. A wrong method and a missing session produce the
// same denial body, callers learn nothing about which check failed.
//
// A valid cached token is returned as-is with no signer call. Two
// concurrent requests for one session can both miss and both mint; the
// last write wins and both tokens still verify at the signer. That race
// is accepted, do not bolt locking onto this path.
func CustomTokenHandler(cfg CustomTokenConfig, sessions session.Validator, tokens TokenStore, sign signer.Signer) gin.HandlerFunc {
	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}

	return func(c *gin.Context) {
		if c.Request.Method != method {
			c.JSON(http.StatusForbidden, false)
			return
		}

		ctx := c.Request.Context()

		callerSession, err := sessions.FromRequest(ctx, c.Request)
		if err != nil {
			utils.SimpleResponse(c, 500, "Internal server error while resolving session", utils.ErrGetData)
			return
		}
		if callerSession == nil {
			c.JSON(http.StatusForbidden, false)
			return
		}

		token, err := tokens.Read(ctx, callerSession.Token)
		if err != nil {
			utils.SimpleResponse(c, 500, "Internal server error while reading token", utils.ErrGetData)
			return
		}
		if token != "" {
			// still inside its TTL, reuse instead of re-minting
			c.JSON(http.StatusOK, token)
			return
		}

		claims := map[string]any{}
		if cfg.AdditionalClaims != nil {
			for key, value := range cfg.AdditionalClaims(callerSession) {
				claims[key] = value
			}
		}
		// ties the minted token back to its originating session
		claims["sessionToken"] = callerSession.Token

		token, err = sign.Mint(ctx, callerSession.User.Email, claims)
		if err != nil {
			utils.SimpleResponse(c, 500, "Internal server error while minting token", utils.ErrGenerateToken)
			return
		}

		if _, err := tokens.Write(ctx, callerSession.Token, token); err != nil {
			utils.SimpleResponse(c, 500, "Internal server error while saving token", utils.ErrSaveData)
			return
		}

		c.JSON(http.StatusOK, token)
	}
}

package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const actorKey = "actor"

// sessionAuth requires a valid bearer session token and stores the resulting
// session actor on the request. Owner-token routes never pass through here:
// a 401 from this middleware always means a session problem.
func sessionAuth(tokenService port.TokenService, logger *zap.Logger) gin.HandlerFunc {
	h := NewHandler(logger)
	return func(ctx *gin.Context) {
		payload, err := sessionFromHeader(ctx, tokenService)
		if err != nil {
			h.handleAbort(ctx, err)
			return
		}

		ctx.Set(actorKey, domain.SessionActor(payload.UserID, payload.Role))
		ctx.Next()
	}
}

// optionalSessionAuth resolves a session when a bearer token is present and
// falls back to an anonymous actor otherwise. Used where guests are allowed.
func optionalSessionAuth(tokenService port.TokenService, logger *zap.Logger) gin.HandlerFunc {
	h := NewHandler(logger)
	return func(ctx *gin.Context) {
		if ctx.Request.Header.Get(authHeaderKey) == "" {
			ctx.Set(actorKey, domain.AnonymousActor())
			ctx.Next()
			return
		}

		payload, err := sessionFromHeader(ctx, tokenService)
		if err != nil {
			h.handleAbort(ctx, err)
			return
		}

		ctx.Set(actorKey, domain.SessionActor(payload.UserID, payload.Role))
		ctx.Next()
	}
}

// adminOnly gates routes on the ADMIN / SUPER_ADMIN roles. Must run after
// sessionAuth.
func adminOnly(logger *zap.Logger) gin.HandlerFunc {
	h := NewHandler(logger)
	return func(ctx *gin.Context) {
		if !getActor(ctx).IsAdmin() {
			h.handleAbort(ctx, domain.ErrForbidden)
			return
		}
		ctx.Next()
	}
}

func sessionFromHeader(ctx *gin.Context, tokenService port.TokenService) (*port.SessionPayload, error) {
	header := ctx.Request.Header.Get(authHeaderKey)
	if len(header) == 0 {
		return nil, domain.ErrEmptyAuthorizationHeader
	}

	words := strings.Split(header, " ")
	if len(words) != 2 {
		return nil, domain.ErrInvalidAuthorizationHeader
	}
	if words[0] != authType {
		return nil, domain.ErrInvalidAuthorizationType
	}

	payload, err := tokenService.VerifySessionToken(words[1])
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return payload, nil
}

func getActor(ctx *gin.Context) domain.Actor {
	if actor, ok := ctx.Get(actorKey); ok {
		return actor.(domain.Actor)
	}
	return domain.AnonymousActor()
}

package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"ihm/internal/core/domain/services"
)

// actorContextKey is the echo context key under which the authenticated
// actor is stored by the auth middleware.
const actorContextKey = "actor"

// TokenParser validates a bearer token and reconstructs the actor it was
// issued for. Implemented by the auth package's TokenService.
type TokenParser interface {
	Parse(tokenString string) (services.Actor, error)
}

// AuthMiddleware returns echo middleware that requires a valid Bearer
// token on every request and puts the resulting actor on the context.
func AuthMiddleware(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return writeUnauthorized(ctx, "authorization header is missing")
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return writeUnauthorized(ctx, "authorization header must be a Bearer token")
			}

			actor, err := tokens.Parse(tokenString)
			if err != nil {
				return writeUnauthorized(ctx, "invalid or expired token")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFromContext returns the actor placed on the context by
// AuthMiddleware. The bool is false on routes that skipped the
// middleware.
func actorFromContext(ctx echo.Context) (services.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(services.Actor)
	return actor, ok
}

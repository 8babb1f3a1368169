package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"frete/internal/core/application/usecases/queries"
	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
	"frete/internal/pkg/token"
)

// actorContextKey is the echo context key the auth middleware stores the
// resolved actor under.
const actorContextKey = "actor"

// AuthMiddleware verifies the bearer token and resolves the caller into an
// account.Actor exactly once per request. Handlers read the actor from the
// context instead of re-probing roles.
func AuthMiddleware(signer token.Signer, resolver queries.ResolveActorQueryHandler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := signer.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			userID, err := kernel.UUIDFromString(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			query, err := queries.NewResolveActorQuery(userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			actor, err := resolver.Handle(c.Request().Context(), query)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "unknown account",
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFromContext(c echo.Context) (account.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(account.Actor)
	return actor, ok
}

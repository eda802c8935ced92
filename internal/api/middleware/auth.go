package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/safenotes/notes-system/internal/core/domain"
)

// Auth validates the bearer JWT and injects the verified identity into the
// request context. Signature, expiry, and (when configured) issuer and
// audience are all checked here; downstream code consumes the already
// verified (username, role) pair.
func Auth(jwtSecret, issuer, audience string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			opts := []jwt.ParserOption{}
			if issuer != "" {
				opts = append(opts, jwt.WithIssuer(issuer))
			}
			if audience != "" {
				opts = append(opts, jwt.WithAudience(audience))
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			}, opts...)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			roleClaim, _ := claims["role"].(string)
			role, err := domain.ParseRole(roleClaim)
			if sub == "" || err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			c.Set("username", sub)
			c.Set("role", role)

			return next(c)
		}
	}
}

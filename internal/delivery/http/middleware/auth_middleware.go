package middleware

import (
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/response"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller as a usecase.Actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_HEADER_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Subject == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Subject missing from token")
		}

		actor := usecase.Actor{
			ID:    claims.Subject,
			Roles: entity.RolesFromStrings(claims.Roles).ToStrings(),
		}
		deliverycontext.SetActor(c, actor)

		logger := deliverycontext.GetLogger(c.Request().Context())
		if logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With("actor_id", actor.ID))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole lets the request through when the caller has any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			for _, role := range roles {
				if actor.HasRole(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "ROLE_REQUIRED", "Permission denied: required role missing")
		}
	}
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lofinight/internal/authz"
)

// OwnerResolver extracts the owning user of the requested resource.
type OwnerResolver func(c echo.Context) (uuid.UUID, error)

// RequireRole admits only the listed roles.
func RequireRole(roles ...authz.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			currentRole, ok := RoleFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			for _, role := range roles {
				if currentRole == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}

// RequireMinRole admits roles ranking at least minRole.
func RequireMinRole(minRole authz.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			currentRole, ok := RoleFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !authz.HasHigherOrEqualRole(currentRole, minRole) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RequirePermission admits roles whose permission set contains permission.
func RequirePermission(permission authz.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			currentRole, ok := RoleFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !authz.HasPermission(currentRole, permission) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RequireResourceAccess builds the action:resource permission and checks it.
func RequireResourceAccess(resource, action string) echo.MiddlewareFunc {
	return RequirePermission(authz.Permission(fmt.Sprintf("%s:%s", action, resource)))
}

// RequireOwnership admits the resource owner; admins always pass.
func RequireOwnership(resolve OwnerResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := UserIDFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			role, ok := RoleFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if role == authz.RoleAdmin {
				return next(c)
			}
			ownerID, err := resolve(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			if ownerID != userID {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

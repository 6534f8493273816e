package auth

import (
	"net/http"
	"strings"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/repository"
)

// identityKey is the echo context key the authenticated identity lives under.
const identityKey = "identity"

// adminAliases are role slugs that pass the role gate regardless of the
// allowed list, provided a Role record exists for them.
var adminAliases = []string{"admin", "super-admin", "superadmin"}

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

// IdentityFrom returns the authenticated identity, or nil when the
// request carried no usable credentials.
func IdentityFrom(c echo.Context) *Identity {
	ident, _ := c.Get(identityKey).(*Identity)
	return ident
}

// SetIdentity attaches an identity to the request context.
func SetIdentity(c echo.Context, ident *Identity) {
	c.Set(identityKey, ident)
}

// RequireUser runs after the JWT middleware has verified the token. It
// re-reads the user row on every request: a token outlives account
// deletion and deactivation, the row does not.
func RequireUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := subjectFromToken(c)
			if !ok {
				return apperrors.ErrInvalidToken
			}
			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				return apperrors.ErrUserGone
			}
			if !user.IsActive() {
				return apperrors.ErrAccountInactive
			}
			SetIdentity(c, &Identity{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
			return next(c)
		}
	}
}

// TryAuth is the fail-open counterpart of the required-auth chain: it
// runs the same extract/verify/resolve steps but swallows every failure
// and forwards the request with no identity attached. Kept as a separate
// entry point so the fail-closed path stays trivial to audit.
func TryAuth(tokens *TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return next(c)
			}
			claims, err := tokens.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return next(c)
			}
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil || !user.IsActive() {
				return next(c)
			}
			SetIdentity(c, &Identity{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
			return next(c)
		}
	}
}

// Authorize gates a route on role membership. A caller whose role is not
// literally in the allowed list may still pass the escalation check: a
// Role record matching their role slug that carries a wildcard
// permission, or whose slug is a known admin alias. Lookup failure
// denies; the gate fails closed.
func Authorize(roles repository.RoleRepository, allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := IdentityFrom(c)
			if ident == nil {
				return apperrors.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}
			if len(allowed) == 0 || containsString(allowed, ident.Role) {
				return next(c)
			}
			role, err := roles.FindBySlug(c.Request().Context(), ident.Role)
			if err == nil && role != nil {
				if role.HasWildcard() || containsString(adminAliases, role.Slug) {
					return next(c)
				}
			}
			return apperrors.NewHTTPError(http.StatusForbidden,
				"access denied: requires one of the roles "+strings.Join(allowed, ", "))
		}
	}
}

// RequirePermission gates a route on the caller's role granting at least
// one of the required permissions. Independent of Authorize: a role can
// satisfy this gate while failing the role gate on the same route.
func RequirePermission(roles repository.RoleRepository, required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := IdentityFrom(c)
			if ident == nil {
				return apperrors.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}
			role, err := roles.FindBySlug(c.Request().Context(), ident.Role)
			if err != nil || role == nil {
				return apperrors.ErrInvalidRole
			}
			if role.HasAnyPermission(required...) {
				return next(c)
			}
			return apperrors.NewHTTPError(http.StatusForbidden,
				"access denied: requires one of the permissions "+strings.Join(required, ", "))
		}
	}
}

// subjectFromToken pulls the user id out of the token the route-level
// JWT middleware stored in the context.
func subjectFromToken(c echo.Context) (uuid.UUID, bool) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return uuid.Nil, false
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return uuid.Nil, false
	}
	raw, _ := claims["id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"hud/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer tokens issued by the identity provider and
// installs the resulting UserContext on the request context. The core treats
// identity as an external collaborator; all it needs is a user id and email.
type AuthMiddleware struct {
	secret []byte
	issuer string
	logger *slog.Logger
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewAuthMiddleware(secret, issuer string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret), issuer: issuer, logger: logger}
}

// RequireAuth rejects requests without a valid session token.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.userFromRequest(c)
			if err != nil {
				m.logger.Warn("authentication failed", "path", c.Path(), "error", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			c.SetRequest(c.Request().WithContext(domain.SetUserContext(c.Request().Context(), user)))
			return next(c)
		}
	}
}

// OptionalAuth installs a UserContext when a valid token is present and lets
// anonymous requests through untouched. The feed endpoint uses it: anonymous
// users get the unfiltered feed.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.userFromRequest(c)
			if err == nil {
				c.SetRequest(c.Request().WithContext(domain.SetUserContext(c.Request().Context(), user)))
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) userFromRequest(c echo.Context) (*domain.UserContext, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil, fmt.Errorf("malformed authorization header")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	user := &domain.UserContext{
		UserID: userID,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		user.LoginAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	} else {
		user.ExpiresAt = time.Now().Add(time.Minute)
	}

	return user, nil
}

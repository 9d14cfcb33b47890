package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const contextKey = "user_id"

var ErrInvalidToken = errors.New("invalid token")

// Middleware verifies an optional HS256 bearer token. A valid token's subject
// becomes the request's user id. Requests without the header pass through
// untouched, so the caller-supplied id keeps working. With an empty secret the
// middleware does nothing.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if len(secret) == 0 {
			return next
		}
		return func(c echo.Context) error {
			raw, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			sub, err := Subject(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "User not authenticated"})
			}
			c.Set(contextKey, sub)
			return next(c)
		}
	}
}

func bearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

func Subject(tokenStr string, secret []byte) (string, error) {
	var claims jwt.RegisteredClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// UserID returns the verified user id, or "" when the request carried no token.
func UserID(c echo.Context) string {
	s, _ := c.Get(contextKey).(string)
	return s
}

// Resolve prefers the verified user id over the one supplied by the caller.
func Resolve(c echo.Context, supplied string) string {
	if id := UserID(c); id != "" {
		return id
	}
	return supplied
}

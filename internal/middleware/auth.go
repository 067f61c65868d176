package middleware

import (
	"net/http"
	"strings"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CurrentUserKey = "current_user"

	ScopeLogin        = "login"
	ScopeRefresh      = "refresh"
	ScopeRegistration = "registration"
)

// Claims are the custom claims embedded in every token. Subject carries the
// account email; Scope distinguishes login, refresh and registration tokens.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// JWTAuth validates the Bearer token on every protected route and loads the
// matching account (roles included) into the request context. Tokens with a
// scope other than "login" are rejected, as are inactive accounts.
func JWTAuth(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Niet geauthenticeerd"))
			return
		}

		claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil || claims.Scope != ScopeLogin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token ongeldig of verlopen"))
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token ongeldig of verlopen"))
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Gebruiker inactief"))
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose account carries none of the allowed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user, ok := c.MustGet(CurrentUserKey).(*model.User)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Onvoldoende rechten"))
			return
		}
		for _, r := range user.Roles {
			if allowed[r.Name] {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Onvoldoende rechten"))
	}
}

// GetCurrentUser is a helper to retrieve the authenticated account from the
// Gin context.
func GetCurrentUser(c *gin.Context) *model.User {
	user, _ := c.MustGet(CurrentUserKey).(*model.User)
	return user
}

package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"modelhub-server/internal/infrastructure/auth"
	"modelhub-server/internal/utils/platformerrors"
)

const principalKey = "auth_principal"

// Principal is the authenticated caller attached to the gin context.
type Principal struct {
	UserID      uint
	Email       string
	IsSuperuser bool
}

// Auth validates the bearer token and attaches the caller to the context.
// Requests without a valid token are rejected.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := tokens.Verify(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "invalid bearer token")
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			abortUnauthorized(c, "invalid token subject")
			return
		}

		c.Set(principalKey, Principal{
			UserID:      userID,
			Email:       claims.Email,
			IsSuperuser: claims.IsSuperuser,
		})
		c.Next()
	}
}

// RequireSuperuser rejects callers without the superuser flag. It must run
// after Auth.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsSuperuser {
			status := platformerrors.ErrorTypeToHTTPStatus(platformerrors.ErrorTypeForbidden)
			c.AbortWithStatusJSON(status, gin.H{"error": "superuser privileges required"})
			return
		}
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	val, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	principal, ok := val.(Principal)
	return principal, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	status := platformerrors.ErrorTypeToHTTPStatus(platformerrors.ErrorTypeUnauthorized)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

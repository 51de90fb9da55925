package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"fleetrecord/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// Identity decodes the Authorization bearer token into the caller's display
// identity and stores it on the context. The token issuer is the external
// identity collaborator; no credential verification happens here. Requests
// without a usable token simply carry no identity; RequireIdentity and
// RequireRoles decide whether that matters.
func Identity(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			c.Next()
			return
		}

		id := models.Identity{
			Username: claimString(claims, "username"),
			Role:     claimString(claims, "role"),
			FullName: claimString(claims, "fullName"),
			Company:  claimString(claims, "company"),
		}
		if id.Username != "" {
			c.Set(identityKey, id)
		}
		c.Next()
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// GetIdentity returns the caller identity set by Identity.
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	if c == nil {
		return models.Identity{}, false
	}
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(models.Identity); ok {
			return id, true
		}
	}
	return models.Identity{}, false
}

// RequireIdentity rejects requests that carry no caller identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentity(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: identity required",
			})
			return
		}
		c.Next()
	}
}

// RequireRoles only lets callers through whose role is in allowedRoles.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: identity required",
			})
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(id.Role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: role not allowed",
			})
			return
		}
		c.Next()
	}
}

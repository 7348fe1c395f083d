package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/michaelmariano-bytequest/taskmanager/internal/api/dto"
	"github.com/michaelmariano-bytequest/taskmanager/pkg/security/auth"
)

const bearerSchema = "Bearer "

// RequireRole gates a route group on a role string. The role is read from
// the bearer token's claims when one is presented, otherwise from the
// `role` query parameter. Anything else is rejected with 401.
func RequireRole(role, jwtSecret string) gin.HandlerFunc {
	message := fmt.Sprintf("Only users with the '%s' role can access this report.", role)

	return func(c *gin.Context) {
		if resolveRole(c, role, jwtSecret) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: message})
	}
}

func resolveRole(c *gin.Context, role, jwtSecret string) bool {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerSchema) {
		claims, err := auth.ValidateToken(authHeader[len(bearerSchema):], jwtSecret)
		if err != nil {
			return false
		}
		return claims.HasRole(role)
	}

	return strings.EqualFold(c.Query("role"), role)
}

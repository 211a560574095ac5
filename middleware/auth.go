package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"cabdesk/utils"
)

// IsAuthenticated validates the customer's bearer token and puts the
// customer and tenant identifiers on the request context.
func IsAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Please log in to access this content", nil)
			c.Abort()
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("ACCESS_TOKEN_SECRET")), nil
		})
		if err != nil || !token.Valid {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token", err)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}
		customerID, ok := claims["id"].(string)
		if !ok || customerID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token payload", nil)
			c.Abort()
			return
		}
		adminID, ok := claims["adminId"].(string)
		if !ok || adminID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token payload", nil)
			c.Abort()
			return
		}

		c.Set("customerId", customerID)
		c.Set("adminId", adminID)
		c.Next()
	}
}

// IsAdmin validates admin access via x-admin-secret header
func IsAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminSecret := os.Getenv("ADMIN_SECRET")
		if adminSecret == "" {
			utils.RespondError(c, http.StatusInternalServerError, "Admin access not configured", nil)
			c.Abort()
			return
		}

		headerSecret := c.GetHeader("x-admin-secret")
		if headerSecret == "" || headerSecret != adminSecret {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: Invalid admin credentials", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

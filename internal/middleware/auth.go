package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ravindraogg/DUHACKS/internal/models"
	"github.com/ravindraogg/DUHACKS/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Messages for the three ways a request can fail authorization. A token that
// decodes cleanly can still be rejected: it must also equal the account's
// current active token, otherwise a newer login somewhere else has
// invalidated it.
const (
	msgNoToken     = "No token provided"
	msgInvalid     = "Invalid token"
	msgInvalidated = "Token has been invalidated. Please login again."
)

// AuthMiddleware verifies the bearer token and puts the current user into the
// gin context under "currentUser".
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			util.Fail(c, http.StatusUnauthorized, msgNoToken)
			c.Abort()
			return
		}

		// signature + expiry check
		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			util.Fail(c, http.StatusUnauthorized, msgInvalid)
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Fail(c, http.StatusUnauthorized, msgInvalidated)
			} else {
				util.Fail(c, http.StatusInternalServerError, "Server error")
			}
			c.Abort()
			return
		}

		// Current-session membership is the actual authorization predicate:
		// a logout cleared the field, or a later login replaced it.
		if user.ActiveToken == "" || user.ActiveToken != tokenStr {
			util.Fail(c, http.StatusUnauthorized, msgInvalidated)
			c.Abort()
			return
		}

		c.Set("currentUser", &user)
		c.Next()
	}
}

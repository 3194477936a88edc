package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the Gin context.
// Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if ctxVal := c.Request.Context().Value(userIDKey); ctxVal != nil {
			if userID, ok := ctxVal.(int64); ok {
				return userID, true
			}
		}
		return 0, false
	}

	userID, ok := userIDVal.(int64)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return 0, false
	}

	return userID, true
}

package middleware

import (
	"net/http"

	"adboard_backend/internal/auth"
	"adboard_backend/internal/logger"
	"adboard_backend/internal/models"
	"adboard_backend/internal/repositories"
	"adboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResolveUser is the identity resolver: it takes the raw token from the
// Authorization header (no "Bearer " prefix in this API), verifies it and
// loads the live user row into the gin context. All three failure kinds stay
// 401 so the caller cannot tell which check rejected them.
func ResolveUser(tokens *auth.TokenService, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			// expired, malformed and bad signature all look the same here
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		db := mustGetDB(c)
		user, err := userRepo.FindByID(db, claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, user not found"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.UserContextKey), user)
		c.Next()
	}
}

// RequireActive is the activation gate. It must run after ResolveUser and
// before any ownership check; it re-reads the flag from the row loaded this
// request, which is what keeps a deactivated user's old token useless.
func RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		if !auth.CanAct(user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "User is not active"})
			return
		}
		c.Next()
	}
}

// RequireAdmin restricts a route to admin users.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by ResolveUser for this request.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(string(contextkeys.UserContextKey))
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func mustGetDB(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		panic("DBMiddleware did not set the db key")
	}
	db, ok := val.(*gorm.DB)
	if !ok {
		panic("db in context has incorrect type")
	}
	return db
}

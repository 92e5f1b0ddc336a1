package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB (pool or
// transaction) is stored in the gin context.
const DBContextKey = contextKey("db")

// UserContextKey is the key under which the resolved *models.User is stored
// after authentication.
const UserContextKey = contextKey("user")

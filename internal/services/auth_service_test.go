package services

import (
	"fmt"
	"testing"
	"time"

	"adboard_backend/database"
	"adboard_backend/internal/auth"
	"adboard_backend/internal/models"
	"adboard_backend/internal/repositories"
	"adboard_backend/internal/services/dto"
	"adboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type notification struct {
	recipient string
	message   string
}

// chanNotifier records deliveries on a channel so tests can wait for the
// fire-and-forget send goroutine.
type chanNotifier struct {
	sent chan notification
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{sent: make(chan notification, 1)}
}

func (n *chanNotifier) Notify(recipient, message string) error {
	n.sent <- notification{recipient: recipient, message: message}
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestAuthService_Register(t *testing.T) {
	db := newTestDB(t)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	userRepo := repositories.NewUserRepository()
	notif := newChanNotifier()

	svc := NewAuthService(userRepo, tokens, notif, "operator-chat")

	req := &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+77001234567",
		Password: "secret123",
	}
	require.NoError(t, svc.Register(db, req))

	user, err := userRepo.FindByEmail(db, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.Equal(t, models.UserRoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secret123", user.PasswordHash))

	// the operator ping is delivered off the request path
	select {
	case n := <-notif.sent:
		assert.Equal(t, "operator-chat", n.recipient)
		assert.Contains(t, n.message, "alice@example.com")
		assert.Contains(t, n.message, "/verify")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a registration notification")
	}

	// a second registration with the same email fails
	err = svc.Register(db, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrEmailAlreadyExists.Code, appErr.Code)
}

func TestAuthService_Login(t *testing.T) {
	db := newTestDB(t)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	userRepo := repositories.NewUserRepository()

	svc := NewAuthService(userRepo, tokens, newChanNotifier(), "")
	require.NoError(t, svc.Register(db, &dto.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Phone:    "+77001234567",
		Password: "secret123",
	}))

	resp, err := svc.Login(db, &dto.LoginRequest{Email: "bob@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, err := userRepo.FindByEmail(db, "bob@example.com")
	require.NoError(t, err)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.UserRoleUser, claims.Role)

	// inactive accounts can still log in; the activation gate lives elsewhere
	assert.False(t, user.IsActive)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "bob@example.com", Password: "nope"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrInvalidCredentials.Code, appErr.Code)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	require.Error(t, err)
	ghostErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErr.Code, ghostErr.Code, "unknown email and wrong password must look the same")
}

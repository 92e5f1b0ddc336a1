package auth

import (
	"fmt"
	"math/rand"
	"testing"

	"adboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanModify_Table(t *testing.T) {
	t.Parallel()

	owner := &models.User{BaseModel: models.BaseModel{ID: "owner-id"}, Role: models.UserRoleUser}
	stranger := &models.User{BaseModel: models.BaseModel{ID: "stranger-id"}, Role: models.UserRoleUser}
	admin := &models.User{BaseModel: models.BaseModel{ID: "admin-id"}, Role: models.UserRoleAdmin}

	assert.True(t, CanModify(owner, "owner-id"))
	assert.False(t, CanModify(stranger, "owner-id"))
	assert.True(t, CanModify(admin, "owner-id"))
	assert.True(t, CanModify(admin, "admin-id"))
}

// Property: CanModify is true exactly when the actor owns the resource or
// holds the admin role, for any (actorID, ownerID, role) combination.
func TestCanModify_Property(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	roles := []models.UserRole{models.UserRoleUser, models.UserRoleAdmin}

	for i := 0; i < 1000; i++ {
		actorID := fmt.Sprintf("id-%d", rng.Intn(10))
		ownerID := fmt.Sprintf("id-%d", rng.Intn(10))
		role := roles[rng.Intn(len(roles))]

		actor := &models.User{BaseModel: models.BaseModel{ID: actorID}, Role: role}
		want := actorID == ownerID || role == models.UserRoleAdmin

		assert.Equal(t, want, CanModify(actor, ownerID),
			"actor=%s owner=%s role=%s", actorID, ownerID, role)
	}
}

func TestCanAct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{
			name: "active user",
			user: &models.User{Role: models.UserRoleUser, IsActive: true},
			want: true,
		},
		{
			name: "inactive user is denied even with a valid identity",
			user: &models.User{Role: models.UserRoleUser, IsActive: false},
			want: false,
		},
		{
			name: "admin bypasses the activation flag",
			user: &models.User{Role: models.UserRoleAdmin, IsActive: false},
			want: true,
		},
		{
			name: "active admin",
			user: &models.User{Role: models.UserRoleAdmin, IsActive: true},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAct(tt.user))
		})
	}
}

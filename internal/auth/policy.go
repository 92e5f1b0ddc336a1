package auth

import "adboard_backend/internal/models"

// CanAct is the activation gate: an account may use the system once it has
// been activated; admins are exempt. It is re-checked on every request
// against the freshly loaded user row, which is what keeps a stale token
// from outliving a deactivation.
func CanAct(user *models.User) bool {
	return user.IsActive || user.IsAdmin()
}

// CanModify is the single ownership rule for every owned resource: writes
// are allowed to the owner and to admins. Reads are not gated here.
func CanModify(actor *models.User, ownerID string) bool {
	return actor.ID == ownerID || actor.IsAdmin()
}

package dto

// UpdateUserRequest is a partial user update. Name/email/phone are open to
// the user themselves (and admins); isActive and role are admin-only fields
// and are rejected outright for anyone else.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone"`
	IsActive *bool   `json:"isActive,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,is-user-role"`
}

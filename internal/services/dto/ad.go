package dto

type CreateAdRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// UpdateAdRequest is a partial update; nil fields keep their current value.
// There is no owner field here on purpose: ownership is never taken from
// client input.
type UpdateAdRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

package models

// Ad is the owned resource of the board. OwnerID is the single canonical
// owner field, set from the resolved actor on create and immutable after.
type Ad struct {
	BaseModel
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	OwnerID     string  `gorm:"type:uuid;not null;index" json:"ownerId"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

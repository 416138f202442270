package model

// Provider is the business-facing profile of a user with the provider role.
// At most one profile exists per user; it is auto-provisioned on the user's
// first offer if missing.
type Provider struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	BusinessName string `json:"business_name" gorm:"size:255"`
	IsVerified   bool   `json:"is_verified" gorm:"default:false"`
	Bio          string `json:"bio,omitempty" gorm:"type:text"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

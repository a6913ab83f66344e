package models

// RefreshToken is the durable session anchor for a user. The opaque token
// authorizes issuance of new short-lived access tokens until revoked.
type RefreshToken struct {
	Base
	Token     string `gorm:"uniqueIndex;size:128;not null" json:"token"`
	UserID    string `gorm:"type:uuid;not null" json:"user_id"`
	Email     string `gorm:"index;not null" json:"email"`
	IsRevoked bool   `gorm:"default:false" json:"is_revoked"`
}

// OwnerID returns the owning user's ID.
func (t *RefreshToken) OwnerID() string { return t.UserID }

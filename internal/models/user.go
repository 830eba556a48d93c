package models

import "time"

// User records are created by the OAuth callback and never updated. UniqueID
// is the identity provider's subject id and deduplicates repeat logins.
type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	FirstName string    `gorm:"type:varchar(255)" json:"firstName"`
	LastName  string    `gorm:"type:varchar(255)" json:"lastName"`
	UniqueID  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"uniqueId"`
	CreatedAt time.Time `json:"-"`
}

package models

import "time"

// BoatRef is the container-side copy of the boat/container edge. All fields
// are null while the container is unattached.
type BoatRef struct {
	ID   *uint64 `json:"id"`
	Name *string `json:"name"`
	Self *string `json:"self"`
}

// Assigned reports whether the container currently references a boat.
func (r BoatRef) Assigned() bool {
	return r.ID != nil
}

type Container struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Number    float64   `gorm:"not null" json:"number"`
	Weight    float64   `gorm:"not null" json:"weight"`
	Content   string    `gorm:"type:varchar(255);not null" json:"content"`
	Boat      BoatRef   `gorm:"serializer:json;type:text" json:"boat"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

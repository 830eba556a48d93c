package models

import "time"

// ContainerSummary is the boat-side copy of the boat/container edge. The self
// link is captured at attach time and stored with the boat record.
type ContainerSummary struct {
	ID      uint64  `json:"id"`
	Number  float64 `json:"number"`
	Weight  float64 `json:"weight"`
	Content string  `json:"content"`
	Self    string  `json:"self"`
}

type Boat struct {
	ID         uint64             `gorm:"primarykey" json:"id"`
	Name       string             `gorm:"type:varchar(255);not null" json:"name"`
	Type       string             `gorm:"type:varchar(255);not null" json:"type"`
	Length     float64            `gorm:"not null" json:"length"`
	Owner      string             `gorm:"type:varchar(255);index;not null" json:"owner"`
	Containers []ContainerSummary `gorm:"serializer:json;type:text" json:"containers"`
	CreatedAt  time.Time          `json:"-"`
	UpdatedAt  time.Time          `json:"-"`
}

// HasContainer reports whether the container id already appears in the
// boat's containers sequence.
func (b *Boat) HasContainer(containerID uint64) bool {
	for _, c := range b.Containers {
		if c.ID == containerID {
			return true
		}
	}
	return false
}

package dto

import (
	"fmt"
	"net/url"

	"github.com/pleone55/CS493-Final/internal/models"
)

// BoatDTO represents a boat in API responses
type BoatDTO struct {
	ID         uint64                    `json:"id"`
	Name       string                    `json:"name"`
	Type       string                    `json:"type"`
	Length     float64                   `json:"length"`
	Owner      string                    `json:"owner"`
	Containers []models.ContainerSummary `json:"containers"`
	Self       string                    `json:"self"`
}

// ContainerDTO represents a container in API responses
type ContainerDTO struct {
	ID      uint64         `json:"id"`
	Number  float64        `json:"number"`
	Weight  float64        `json:"weight"`
	Content string         `json:"content"`
	Boat    models.BoatRef `json:"boat"`
	Self    string         `json:"self"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UniqueID  string `json:"uniqueId"`
	Self      string `json:"self"`
}

// BoatListResponse is the page envelope for boat listings.
type BoatListResponse struct {
	Items []BoatDTO `json:"items"`
	Next  string    `json:"next,omitempty"`
}

// ContainerListResponse is the page envelope for container listings.
type ContainerListResponse struct {
	Items []ContainerDTO `json:"items"`
	Next  string         `json:"next,omitempty"`
}

// Conversion functions

// ToBoatDTO converts a Boat model to BoatDTO
func ToBoatDTO(boat models.Boat, baseURL string) BoatDTO {
	containers := boat.Containers
	if containers == nil {
		containers = []models.ContainerSummary{}
	}
	return BoatDTO{
		ID:         boat.ID,
		Name:       boat.Name,
		Type:       boat.Type,
		Length:     boat.Length,
		Owner:      boat.Owner,
		Containers: containers,
		Self:       fmt.Sprintf("%s/boats/%d", baseURL, boat.ID),
	}
}

// ToBoatListResponse converts a page of boats to its envelope. nextCursor is
// the opaque store token; an empty token means this was the last page.
func ToBoatListResponse(boats []models.Boat, baseURL, nextCursor string) BoatListResponse {
	items := make([]BoatDTO, len(boats))
	for i, boat := range boats {
		items[i] = ToBoatDTO(boat, baseURL)
	}
	resp := BoatListResponse{Items: items}
	if nextCursor != "" {
		resp.Next = fmt.Sprintf("%s/boats?cursor=%s", baseURL, url.QueryEscape(nextCursor))
	}
	return resp
}

// ToContainerDTO converts a Container model to ContainerDTO
func ToContainerDTO(container models.Container, baseURL string) ContainerDTO {
	return ContainerDTO{
		ID:      container.ID,
		Number:  container.Number,
		Weight:  container.Weight,
		Content: container.Content,
		Boat:    container.Boat,
		Self:    fmt.Sprintf("%s/containers/%d", baseURL, container.ID),
	}
}

// ToContainerListResponse converts a page of containers to its envelope.
func ToContainerListResponse(containers []models.Container, baseURL, nextCursor string) ContainerListResponse {
	items := make([]ContainerDTO, len(containers))
	for i, container := range containers {
		items[i] = ToContainerDTO(container, baseURL)
	}
	resp := ContainerListResponse{Items: items}
	if nextCursor != "" {
		resp.Next = fmt.Sprintf("%s/containers?cursor=%s", baseURL, url.QueryEscape(nextCursor))
	}
	return resp
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User, baseURL string) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UniqueID:  user.UniqueID,
		Self:      fmt.Sprintf("%s/users/%d", baseURL, user.ID),
	}
}

// ToUserDTOs converts a slice of users for list responses
func ToUserDTOs(users []models.User, baseURL string) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user, baseURL)
	}
	return dtos
}

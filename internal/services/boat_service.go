package services

import (
	"errors"
	"fmt"

	"github.com/pleone55/CS493-Final/internal/constants"
	"github.com/pleone55/CS493-Final/internal/models"
	"github.com/pleone55/CS493-Final/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBoatNotFound = errors.New("no boat with this boat_id exists")
	ErrNotOwner     = errors.New("boat is owned by someone else")
	ErrLinkNotFound = errors.New("no boat with boat_id and/or container with container_id exists")
)

// BoatService handles boat business logic and orchestrates the two-sided
// link protocol together with the ContainerService.
type BoatService struct {
	boats      repository.BoatRepository
	containers *ContainerService
}

// NewBoatService creates a new BoatService.
func NewBoatService(boats repository.BoatRepository, containers *ContainerService) *BoatService {
	return &BoatService{
		boats:      boats,
		containers: containers,
	}
}

// Create creates a boat owned by the caller, with no containers attached.
func (s *BoatService) Create(name, boatType string, length float64, owner string) (*models.Boat, error) {
	boat := &models.Boat{
		Name:       name,
		Type:       boatType,
		Length:     length,
		Owner:      owner,
		Containers: []models.ContainerSummary{},
	}
	if err := s.boats.Create(boat); err != nil {
		return nil, fmt.Errorf("failed to create boat: %w", err)
	}
	return boat, nil
}

// Get retrieves a boat by ID.
func (s *BoatService) Get(id uint64) (*models.Boat, error) {
	boat, err := s.boats.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to find boat: %w", err)
	}
	return boat, nil
}

// List retrieves one page of the owner's boats and the continuation cursor.
func (s *BoatService) List(owner, cursor string) ([]models.Boat, string, error) {
	boats, next, err := s.boats.ListByOwner(owner, cursor, constants.PageSize)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCursor) {
			return nil, "", ErrInvalidCursor
		}
		return nil, "", fmt.Errorf("failed to list boats: %w", err)
	}
	return boats, next, nil
}

// BoatUpdate holds the fields present in an update request body.
type BoatUpdate struct {
	Name   *string
	Type   *string
	Length *float64
}

// Update merges the present fields over the stored boat. A full update
// requires all three mutable fields. The containers sequence is preserved
// untouched and the owner is re-asserted as the caller only after the
// ownership check has passed.
func (s *BoatService) Update(id uint64, owner string, update BoatUpdate, full bool) error {
	if full && (update.Name == nil || update.Type == nil || update.Length == nil) {
		return ErrMissingAttributes
	}

	boat, err := s.Get(id)
	if err != nil {
		return err
	}
	if boat.Owner != "" && boat.Owner != owner {
		return ErrNotOwner
	}

	if update.Name != nil {
		boat.Name = *update.Name
	}
	if update.Type != nil {
		boat.Type = *update.Type
	}
	if update.Length != nil {
		boat.Length = *update.Length
	}
	boat.Owner = owner

	if err := s.boats.Update(boat); err != nil {
		return fmt.Errorf("failed to update boat: %w", err)
	}
	return nil
}

// Delete removes a boat after the ownership check, cascading a detach of
// every container the boat lists.
func (s *BoatService) Delete(id uint64, owner string) error {
	boat, err := s.Get(id)
	if err != nil {
		return err
	}
	if boat.Owner != "" && boat.Owner != owner {
		return ErrNotOwner
	}
	if err := s.boats.Delete(boat); err != nil {
		return fmt.Errorf("failed to delete boat: %w", err)
	}
	return nil
}

// AttachContainer establishes the boat/container edge on both sides. Both
// writes happen in a single transaction, so the two denormalized copies can
// never be observed disagreeing.
func (s *BoatService) AttachContainer(boatID, containerID uint64, baseURL string) error {
	boat, err := s.Get(boatID)
	if err != nil {
		if errors.Is(err, ErrBoatNotFound) {
			return ErrLinkNotFound
		}
		return err
	}
	container, err := s.containers.Get(containerID)
	if err != nil {
		if errors.Is(err, ErrContainerNotFound) {
			return ErrLinkNotFound
		}
		return err
	}

	if boat.HasContainer(containerID) {
		return ErrAlreadyAssigned
	}

	boatSelf := fmt.Sprintf("%s/boats/%d", baseURL, boat.ID)
	ref := models.BoatRef{
		ID:   &boat.ID,
		Name: &boat.Name,
		Self: &boatSelf,
	}
	if err := s.containers.SetBoatLink(container, ref); err != nil {
		return err
	}

	boat.Containers = append(boat.Containers, models.ContainerSummary{
		ID:      container.ID,
		Number:  container.Number,
		Weight:  container.Weight,
		Content: container.Content,
		Self:    fmt.Sprintf("%s/containers/%d", baseURL, container.ID),
	})

	return s.boats.SaveWithContainer(boat, container)
}

// DetachContainer removes the edge from both sides in a single transaction.
func (s *BoatService) DetachContainer(boatID, containerID uint64) error {
	boat, err := s.Get(boatID)
	if err != nil {
		if errors.Is(err, ErrBoatNotFound) {
			return ErrLinkNotFound
		}
		return err
	}
	container, err := s.containers.Get(containerID)
	if err != nil {
		if errors.Is(err, ErrContainerNotFound) {
			return ErrLinkNotFound
		}
		return err
	}

	kept := boat.Containers[:0]
	for _, summary := range boat.Containers {
		if summary.ID != containerID {
			kept = append(kept, summary)
		}
	}
	boat.Containers = kept

	if err := s.containers.SetBoatLink(container, models.BoatRef{}); err != nil {
		return err
	}

	return s.boats.SaveWithContainer(boat, container)
}

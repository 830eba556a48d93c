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
	ErrContainerNotFound = errors.New("no container with container_id exists")
	ErrAlreadyAssigned   = errors.New("container is already assigned a boat")
	ErrMissingAttributes = errors.New("the request object is missing at least one of the required attributes")
	ErrInvalidCursor     = errors.New("invalid pagination cursor")
)

// ContainerService handles container business logic, including the
// container side of the boat/container link protocol.
type ContainerService struct {
	containers repository.ContainerRepository
}

// NewContainerService creates a new ContainerService.
func NewContainerService(containers repository.ContainerRepository) *ContainerService {
	return &ContainerService{
		containers: containers,
	}
}

// Create creates a container with an unattached boat reference.
func (s *ContainerService) Create(number, weight float64, content string) (*models.Container, error) {
	container := &models.Container{
		Number:  number,
		Weight:  weight,
		Content: content,
		Boat:    models.BoatRef{},
	}
	if err := s.containers.Create(container); err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}
	return container, nil
}

// Get retrieves a container by ID.
func (s *ContainerService) Get(id uint64) (*models.Container, error) {
	container, err := s.containers.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContainerNotFound
		}
		return nil, fmt.Errorf("failed to find container: %w", err)
	}
	return container, nil
}

// List retrieves one page of containers and the continuation cursor.
func (s *ContainerService) List(cursor string) ([]models.Container, string, error) {
	containers, next, err := s.containers.List(cursor, constants.PageSize)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCursor) {
			return nil, "", ErrInvalidCursor
		}
		return nil, "", fmt.Errorf("failed to list containers: %w", err)
	}
	return containers, next, nil
}

// ContainerUpdate holds the fields present in an update request body.
type ContainerUpdate struct {
	Number  *float64
	Weight  *float64
	Content *string
}

// Update merges the present fields over the stored container. A full update
// requires all three mutable fields. The boat back-reference is always
// preserved verbatim.
func (s *ContainerService) Update(id uint64, update ContainerUpdate, full bool) error {
	if full && (update.Number == nil || update.Weight == nil || update.Content == nil) {
		return ErrMissingAttributes
	}

	container, err := s.Get(id)
	if err != nil {
		return err
	}

	if update.Number != nil {
		container.Number = *update.Number
	}
	if update.Weight != nil {
		container.Weight = *update.Weight
	}
	if update.Content != nil {
		container.Content = *update.Content
	}

	if err := s.containers.Update(container); err != nil {
		return fmt.Errorf("failed to update container: %w", err)
	}
	return nil
}

// Delete removes a container, detaching it from its boat first.
func (s *ContainerService) Delete(id uint64) error {
	container, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.containers.Delete(container); err != nil {
		return fmt.Errorf("failed to delete container: %w", err)
	}
	return nil
}

// SetBoatLink points the container at a boat, or clears the back-reference
// when ref is empty. Attaching over an existing link is a conflict; the
// caller must detach first. The mutation is persisted by the caller's
// transactional write.
func (s *ContainerService) SetBoatLink(container *models.Container, ref models.BoatRef) error {
	if ref.Assigned() && container.Boat.Assigned() {
		return ErrAlreadyAssigned
	}
	container.Boat = ref
	return nil
}

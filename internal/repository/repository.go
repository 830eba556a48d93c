package repository

import (
	"errors"

	"github.com/pleone55/CS493-Final/internal/models"
)

// ErrInvalidCursor is returned when a pagination token cannot be decoded.
var ErrInvalidCursor = errors.New("repository: invalid pagination cursor")

// BoatRepository defines the interface for boat data access
type BoatRepository interface {
	// Create creates a new boat
	Create(boat *models.Boat) error

	// FindByID finds a boat by ID
	FindByID(id uint64) (*models.Boat, error)

	// ListByOwner retrieves one page of the owner's boats. It returns the
	// page and an opaque cursor for the next page, empty on the last page.
	ListByOwner(owner, cursor string, limit int) ([]models.Boat, string, error)

	// Update updates a boat
	Update(boat *models.Boat) error

	// Delete deletes a boat and clears the back-reference of every
	// container it lists, in a single transaction.
	Delete(boat *models.Boat) error

	// SaveWithContainer writes both sides of the boat/container edge in a
	// single transaction.
	SaveWithContainer(boat *models.Boat, container *models.Container) error
}

// ContainerRepository defines the interface for container data access
type ContainerRepository interface {
	// Create creates a new container
	Create(container *models.Container) error

	// FindByID finds a container by ID
	FindByID(id uint64) (*models.Container, error)

	// List retrieves one page of containers with an opaque continuation
	// cursor, empty on the last page.
	List(cursor string, limit int) ([]models.Container, string, error)

	// Update updates a container
	Update(container *models.Container) error

	// Delete deletes a container. If the container is attached to a boat,
	// the boat's containers sequence is updated in the same transaction.
	Delete(container *models.Container) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUniqueID finds a user by the identity provider's subject id
	FindByUniqueID(uniqueID string) (*models.User, error)

	// FindAll lists all users
	FindAll() ([]models.User, error)

	// Delete deletes a user
	Delete(id uint64) error
}

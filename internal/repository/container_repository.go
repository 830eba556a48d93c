package repository

import (
	"errors"

	"github.com/pleone55/CS493-Final/internal/models"
	"github.com/pleone55/CS493-Final/internal/utils"
	"gorm.io/gorm"
)

// GormContainerRepository is a GORM implementation of ContainerRepository
type GormContainerRepository struct {
	db *gorm.DB
}

// NewContainerRepository creates a new ContainerRepository
func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &GormContainerRepository{db: db}
}

// Create creates a new container
func (r *GormContainerRepository) Create(container *models.Container) error {
	return r.db.Create(container).Error
}

// FindByID finds a container by ID
func (r *GormContainerRepository) FindByID(id uint64) (*models.Container, error) {
	var container models.Container
	if err := r.db.First(&container, id).Error; err != nil {
		return nil, err
	}
	return &container, nil
}

// List retrieves one page of containers using keyset pagination ordered by id
func (r *GormContainerRepository) List(cursor string, limit int) ([]models.Container, string, error) {
	query := r.db.Order("id")
	if cursor != "" {
		last, err := utils.DecodeCursor(cursor)
		if err != nil {
			return nil, "", ErrInvalidCursor
		}
		query = query.Where("id > ?", last)
	}

	var containers []models.Container
	if err := query.Limit(limit + 1).Find(&containers).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(containers) > limit {
		containers = containers[:limit]
		next = utils.EncodeCursor(containers[limit-1].ID)
	}
	return containers, next, nil
}

// Update updates a container
func (r *GormContainerRepository) Update(container *models.Container) error {
	return r.db.Save(container).Error
}

// Delete deletes a container, removing it from its boat first so that no
// boat ever references a deleted container.
func (r *GormContainerRepository) Delete(container *models.Container) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if container.Boat.Assigned() {
			var boat models.Boat
			err := tx.First(&boat, *container.Boat.ID).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err == nil {
				kept := boat.Containers[:0]
				for _, summary := range boat.Containers {
					if summary.ID != container.ID {
						kept = append(kept, summary)
					}
				}
				boat.Containers = kept
				if err := tx.Save(&boat).Error; err != nil {
					return err
				}
			}
		}
		return tx.Delete(&models.Container{}, container.ID).Error
	})
}

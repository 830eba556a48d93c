package repository

import (
	"errors"

	"github.com/pleone55/CS493-Final/internal/models"
	"github.com/pleone55/CS493-Final/internal/utils"
	"gorm.io/gorm"
)

// GormBoatRepository is a GORM implementation of BoatRepository
type GormBoatRepository struct {
	db *gorm.DB
}

// NewBoatRepository creates a new BoatRepository
func NewBoatRepository(db *gorm.DB) BoatRepository {
	return &GormBoatRepository{db: db}
}

// Create creates a new boat
func (r *GormBoatRepository) Create(boat *models.Boat) error {
	return r.db.Create(boat).Error
}

// FindByID finds a boat by ID
func (r *GormBoatRepository) FindByID(id uint64) (*models.Boat, error) {
	var boat models.Boat
	if err := r.db.First(&boat, id).Error; err != nil {
		return nil, err
	}
	return &boat, nil
}

// ListByOwner retrieves one page of the owner's boats using keyset
// pagination ordered by id.
func (r *GormBoatRepository) ListByOwner(owner, cursor string, limit int) ([]models.Boat, string, error) {
	query := r.db.Where("owner = ?", owner).Order("id")
	if cursor != "" {
		last, err := utils.DecodeCursor(cursor)
		if err != nil {
			return nil, "", ErrInvalidCursor
		}
		query = query.Where("id > ?", last)
	}

	// Fetch one extra row to learn whether a further page exists.
	var boats []models.Boat
	if err := query.Limit(limit + 1).Find(&boats).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(boats) > limit {
		boats = boats[:limit]
		next = utils.EncodeCursor(boats[limit-1].ID)
	}
	return boats, next, nil
}

// Update updates a boat
func (r *GormBoatRepository) Update(boat *models.Boat) error {
	return r.db.Save(boat).Error
}

// Delete deletes a boat and detaches all of its containers in a transaction
func (r *GormBoatRepository) Delete(boat *models.Boat) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, summary := range boat.Containers {
			var container models.Container
			if err := tx.First(&container, summary.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			container.Boat = models.BoatRef{}
			if err := tx.Save(&container).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Boat{}, boat.ID).Error
	})
}

// SaveWithContainer writes both sides of the boat/container edge atomically
func (r *GormBoatRepository) SaveWithContainer(boat *models.Boat, container *models.Container) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(boat).Error; err != nil {
			return err
		}
		return tx.Save(container).Error
	})
}

package repository

import (
	"github.com/pleone55/CS493-Final/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUniqueID finds a user by the identity provider's subject id
func (r *GormUserRepository) FindByUniqueID(uniqueID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("unique_id = ?", uniqueID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll lists all users
func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete deletes a user
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Delete(&models.User{}, id).Error
}

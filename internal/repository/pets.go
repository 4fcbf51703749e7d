package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"gorm.io/gorm"
)

type Pets struct {
	db *gorm.DB
}

func NewPets(db *gorm.DB) Pets { return Pets{db: db} }

func (r Pets) WithTx(tx *gorm.DB) Pets { return Pets{db: tx} }

// GetByID returns the pet with its owner materialized.
func (r Pets) GetByID(id uuid.UUID) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.Preload("Owner").First(&pet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("pet not found")
		}
		return nil, err
	}
	return &pet, nil
}

func (r Pets) ListByOwner(ownerID uuid.UUID) ([]models.Pet, error) {
	var pets []models.Pet
	err := r.db.Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&pets).Error
	return pets, err
}

func (r Pets) ListAll(page Page) ([]models.Pet, int64, error) {
	page = page.Normalized()
	var total int64
	if err := r.db.Model(&models.Pet{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var pets []models.Pet
	err := r.db.Preload("Owner").
		Order("name ASC").
		Offset(page.Offset()).Limit(page.Size).
		Find(&pets).Error
	return pets, total, err
}

func (r Pets) Create(pet *models.Pet) error {
	return r.db.Create(pet).Error
}

func (r Pets) Save(pet *models.Pet) error {
	return r.db.Save(pet).Error
}

func (r Pets) Delete(pet *models.Pet) error {
	return r.db.Delete(pet).Error
}

func (r Pets) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Pet{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

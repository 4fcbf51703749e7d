package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"gorm.io/gorm"
)

type Visits struct {
	db *gorm.DB
}

func NewVisits(db *gorm.DB) Visits { return Visits{db: db} }

func (r Visits) WithTx(tx *gorm.DB) Visits { return Visits{db: tx} }

// GetByID returns the visit with pet, pet owner and vet profile
// materialized; the access policy needs all three.
func (r Visits) GetByID(id uuid.UUID) (*models.Visit, error) {
	var visit models.Visit
	err := r.db.Preload("Pet").Preload("Pet.Owner").Preload("VetProfile").
		First(&visit, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("visit not found")
		}
		return nil, err
	}
	return &visit, nil
}

func (r Visits) Create(visit *models.Visit) error {
	return r.db.Create(visit).Error
}

func (r Visits) Save(visit *models.Visit) error {
	return r.db.Save(visit).Error
}

func (r Visits) Delete(visit *models.Visit) error {
	return r.db.Delete(visit).Error
}

// AnyOverlap reports whether a visit for the vet on the date in one of
// the given statuses intersects the half-open interval [start, end).
func (r Visits) AnyOverlap(vetProfileID uuid.UUID, date string, statuses []models.VisitStatus, start, end string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Visit{}).
		Where("vet_profile_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
			vetProfileID, date, statuses, end, start).
		Count(&count).Error
	return count > 0, err
}

func (r Visits) ListByPet(petID uuid.UUID, page Page) ([]models.Visit, int64, error) {
	return r.list(page, "pet_id = ?", petID)
}

func (r Visits) ListByVetOnDate(vetProfileID uuid.UUID, date string, page Page) ([]models.Visit, int64, error) {
	return r.list(page, "vet_profile_id = ? AND date = ?", vetProfileID, date)
}

func (r Visits) ListByVet(vetProfileID uuid.UUID, page Page) ([]models.Visit, int64, error) {
	return r.list(page, "vet_profile_id = ?", vetProfileID)
}

func (r Visits) list(page Page, query string, args ...interface{}) ([]models.Visit, int64, error) {
	page = page.Normalized()
	var total int64
	if err := r.db.Model(&models.Visit{}).Where(query, args...).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var visits []models.Visit
	err := r.db.Preload("Pet").Preload("Pet.Owner").Preload("VetProfile").Preload("VetProfile.User").
		Where(query, args...).
		Order("date ASC, start_time ASC").
		Offset(page.Offset()).Limit(page.Size).
		Find(&visits).Error
	return visits, total, err
}

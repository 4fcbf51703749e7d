package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"gorm.io/gorm"
)

type Records struct {
	db *gorm.DB
}

func NewRecords(db *gorm.DB) Records { return Records{db: db} }

func (r Records) WithTx(tx *gorm.DB) Records { return Records{db: tx} }

func (r Records) GetByID(id uuid.UUID) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.db.Preload("Pet").Preload("Pet.Owner").Preload("VetProfile").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("medical record not found")
		}
		return nil, err
	}
	return &record, nil
}

func (r Records) GetByVisit(visitID uuid.UUID) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.db.Preload("Pet").Preload("Pet.Owner").Preload("VetProfile").
		First(&record, "visit_id = ?", visitID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("medical record not found")
		}
		return nil, err
	}
	return &record, nil
}

func (r Records) ExistsForVisit(visitID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.MedicalRecord{}).Where("visit_id = ?", visitID).Count(&count).Error
	return count > 0, err
}

func (r Records) Create(record *models.MedicalRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Duplicate("medical record already exists for this visit")
		}
		return err
	}
	return nil
}

func (r Records) Save(record *models.MedicalRecord) error {
	return r.db.Save(record).Error
}

func (r Records) Delete(record *models.MedicalRecord) error {
	return r.db.Delete(record).Error
}

func (r Records) ListByPet(petID uuid.UUID, page Page) ([]models.MedicalRecord, int64, error) {
	return r.list(page, "pet_id = ?", petID)
}

func (r Records) ListByVet(vetProfileID uuid.UUID, page Page) ([]models.MedicalRecord, int64, error) {
	return r.list(page, "vet_profile_id = ?", vetProfileID)
}

func (r Records) ListAll(page Page) ([]models.MedicalRecord, int64, error) {
	return r.list(page, "")
}

func (r Records) list(page Page, query string, args ...interface{}) ([]models.MedicalRecord, int64, error) {
	page = page.Normalized()
	base := r.db.Model(&models.MedicalRecord{})
	if query != "" {
		base = base.Where(query, args...)
	}
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := r.db.Preload("Pet").Preload("Pet.Owner").Preload("VetProfile")
	if query != "" {
		q = q.Where(query, args...)
	}
	var records []models.MedicalRecord
	err := q.Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Size).
		Find(&records).Error
	return records, total, err
}

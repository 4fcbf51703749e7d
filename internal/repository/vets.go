package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Vets struct {
	db *gorm.DB
}

func NewVets(db *gorm.DB) Vets { return Vets{db: db} }

func (r Vets) WithTx(tx *gorm.DB) Vets { return Vets{db: tx} }

func (r Vets) GetProfile(id uuid.UUID) (*models.VetProfile, error) {
	var profile models.VetProfile
	if err := r.db.Preload("User").First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("vet profile not found")
		}
		return nil, err
	}
	return &profile, nil
}

func (r Vets) GetProfileByUser(userID uuid.UUID) (*models.VetProfile, error) {
	var profile models.VetProfile
	if err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("vet profile not found")
		}
		return nil, err
	}
	return &profile, nil
}

func (r Vets) ListProfiles() ([]models.VetProfile, error) {
	var profiles []models.VetProfile
	err := r.db.Preload("User").Find(&profiles).Error
	return profiles, err
}

func (r Vets) CreateProfile(profile *models.VetProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Duplicate("vet profile already exists for this user")
		}
		return err
	}
	return nil
}

func (r Vets) SaveProfile(profile *models.VetProfile) error {
	return r.db.Save(profile).Error
}

// LockProfile takes a row lock on the vet profile for the duration of
// the surrounding transaction. This is the predicate lock that
// serializes concurrent bookings for one vet: locking visit rows alone
// would not block two inserts into an empty day. sqlite has no row
// locks and serializes writers on its own.
func (r Vets) LockProfile(id uuid.UUID) error {
	q := r.db
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var profile models.VetProfile
	if err := q.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("vet profile not found")
		}
		return err
	}
	return nil
}

func (r Vets) HasProfileForUser(userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.VetProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// --- Weekly schedule ---

func (r Vets) ListSchedule(vetProfileID uuid.UUID) ([]models.VetScheduleEntry, error) {
	var entries []models.VetScheduleEntry
	err := r.db.Where("vet_profile_id = ?", vetProfileID).
		Order("day_of_week ASC, start_time ASC").
		Find(&entries).Error
	return entries, err
}

// ReplaceSchedule discards the previous schedule and writes the new
// one in a single transaction.
func (r Vets) ReplaceSchedule(vetProfileID uuid.UUID, entries []models.VetScheduleEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vet_profile_id = ?", vetProfileID).
			Delete(&models.VetScheduleEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --- Time off ---

func (r Vets) ListTimeOff(vetProfileID uuid.UUID) ([]models.VetTimeOff, error) {
	var windows []models.VetTimeOff
	err := r.db.Where("vet_profile_id = ?", vetProfileID).
		Order("start_date ASC").
		Find(&windows).Error
	return windows, err
}

func (r Vets) GetTimeOff(id uuid.UUID) (*models.VetTimeOff, error) {
	var window models.VetTimeOff
	if err := r.db.First(&window, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("time-off entry not found")
		}
		return nil, err
	}
	return &window, nil
}

func (r Vets) CreateTimeOff(window *models.VetTimeOff) error {
	return r.db.Create(window).Error
}

func (r Vets) DeleteTimeOff(window *models.VetTimeOff) error {
	return r.db.Delete(window).Error
}

// AnyTimeOffOn reports whether any time-off window contains the date,
// endpoints inclusive.
func (r Vets) AnyTimeOffOn(vetProfileID uuid.UUID, date string) (bool, error) {
	var count int64
	err := r.db.Model(&models.VetTimeOff{}).
		Where("vet_profile_id = ? AND start_date <= ? AND end_date >= ?", vetProfileID, date, date).
		Count(&count).Error
	return count > 0, err
}

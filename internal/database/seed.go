package database

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the demo accounts (admin, vet, owner), a sample pet and
// a weekly schedule for the vet. Existing usernames are left alone, so
// seeding is safe to run on every boot.
func Seed(db *gorm.DB) error {
	if _, err := seedUser(db, "admin", "admin@petcare.local", "System Administrator", "admin12345678", models.RoleAdmin); err != nil {
		return err
	}

	vet, err := seedUser(db, "vet", "vet@petcare.local", "System Veterinarian", "vet12345678", models.RoleVet)
	if err != nil {
		return err
	}

	owner, err := seedUser(db, "owner", "owner@petcare.local", "System Pet Owner", "owner12345678", models.RoleOwner)
	if err != nil {
		return err
	}

	if err := seedPet(db, owner); err != nil {
		return err
	}
	return seedVetProfileAndSchedule(db, vet)
}

func seedUser(db *gorm.DB, username, email, fullName, password string, role models.Role) (*models.User, error) {
	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return &existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	user.SetRoles([]models.Role{role})

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	slog.Info("seeded user", "username", username, "role", role)
	return &user, nil
}

func seedPet(db *gorm.DB, owner *models.User) error {
	var count int64
	if err := db.Model(&models.Pet{}).Where("owner_id = ?", owner.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	breed := "European Shorthair"
	weight := 4.2
	pet := models.Pet{
		ID:       uuid.New(),
		OwnerID:  owner.ID,
		Name:     "Mruczek",
		Species:  models.SpeciesCat,
		Sex:      models.SexMale,
		Breed:    &breed,
		WeightKg: &weight,
	}
	return db.Create(&pet).Error
}

func seedVetProfileAndSchedule(db *gorm.DB, vet *models.User) error {
	var profile models.VetProfile
	err := db.Where("user_id = ?", vet.ID).First(&profile).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	profile = models.VetProfile{
		ID:                        uuid.New(),
		UserID:                    vet.ID,
		AcceptsNewPatients:        true,
		AverageVisitLengthMinutes: 20,
	}
	profile.SetSpecializations([]models.VetSpecialization{models.SpecGeneralPractice})

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		days := []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"}
		for _, day := range days {
			entry := models.VetScheduleEntry{
				ID:                uuid.New(),
				VetProfileID:      profile.ID,
				DayOfWeek:         day,
				StartTime:         "09:00",
				EndTime:           "17:00",
				SlotLengthMinutes: 30,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		slog.Info("seeded vet profile and weekly schedule", "vet", vet.Username)
		return nil
	})
}

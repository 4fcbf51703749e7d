package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/witoldp/petcare-backend/internal/access"
	"github.com/witoldp/petcare-backend/internal/database"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/repository"
)

// newTestDB opens a fresh in-memory sqlite database with all models
// migrated. MaxOpenConns(1) pins every session to the same in-memory
// store and serializes the concurrency tests the way sqlite's single
// writer would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, roles ...models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		FullName:     "Test " + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	user.SetRoles(roles)
	require.NoError(t, db.Create(user).Error)
	return user
}

func asPrincipal(u *models.User) principal.Principal {
	return principal.Principal{
		UserID:   u.ID,
		Username: u.Username,
		Roles:    u.RoleSet(),
	}
}

func createPet(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Pet {
	t.Helper()
	pet := &models.Pet{
		ID:      uuid.New(),
		OwnerID: owner.ID,
		Name:    name,
		Species: models.SpeciesDog,
		Sex:     models.SexMale,
	}
	require.NoError(t, db.Create(pet).Error)
	return pet
}

// createVet makes a VET user with a profile and a Monday 09:00-13:00
// schedule cut into 30 minute slots.
func createVet(t *testing.T, db *gorm.DB, username string) (*models.User, *models.VetProfile) {
	t.Helper()
	user := createUser(t, db, username, models.RoleVet)

	profile := &models.VetProfile{
		ID:                        uuid.New(),
		UserID:                    user.ID,
		AcceptsNewPatients:        true,
		AverageVisitLengthMinutes: 20,
	}
	profile.SetSpecializations([]models.VetSpecialization{models.SpecGeneralPractice})
	require.NoError(t, db.Create(profile).Error)

	entry := &models.VetScheduleEntry{
		ID:                uuid.New(),
		VetProfileID:      profile.ID,
		DayOfWeek:         "MONDAY",
		StartTime:         "09:00",
		EndTime:           "13:00",
		SlotLengthMinutes: 30,
	}
	require.NoError(t, db.Create(entry).Error)
	return user, profile
}

type testEnv struct {
	db           *gorm.DB
	users        repository.Users
	pets         repository.Pets
	vets         repository.Vets
	visits       repository.Visits
	records      repository.Records
	policy       access.Policy
	availability *AvailabilityService
	visitSvc     *VisitService
	recordSvc    *RecordService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	env := &testEnv{
		db:      db,
		users:   repository.NewUsers(db),
		pets:    repository.NewPets(db),
		vets:    repository.NewVets(db),
		visits:  repository.NewVisits(db),
		records: repository.NewRecords(db),
		policy:  access.NewPolicy(),
	}
	env.availability = NewAvailabilityService(env.vets)
	env.visitSvc = NewVisitService(db, env.visits, env.pets, env.vets, env.policy, env.availability)
	env.recordSvc = NewRecordService(env.records, env.visits, env.pets, env.vets, env.policy)
	return env
}

package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
)

func TestVetProfileLazyCreation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewVetService(env.vets)

	vetUser := createUser(t, env.db, "drsmith", models.RoleVet)

	profile, err := svc.GetOrCreateForUser(asPrincipal(vetUser))
	require.NoError(t, err)
	assert.Equal(t, vetUser.ID, profile.UserID)
	assert.True(t, profile.AcceptsNewPatients)
	assert.Equal(t, 20, profile.AverageVisitLengthMinutes)

	// Second touch returns the same profile.
	again, err := svc.GetOrCreateForUser(asPrincipal(vetUser))
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)

	owner := createUser(t, env.db, "alice", models.RoleOwner)
	_, err = svc.GetOrCreateForUser(asPrincipal(owner))
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestUpdateOwnProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewVetService(env.vets)
	vetUser := createUser(t, env.db, "drsmith", models.RoleVet)
	p := asPrincipal(vetUser)

	bio := "Small animal practice since 2015."
	updated, err := svc.UpdateOwnProfile(p, &dto.VetProfileUpdateRequest{
		Bio:                       &bio,
		AverageVisitLengthMinutes: 45,
		Specializations:           []models.VetSpecialization{models.SpecSurgery, models.SpecDentistry},
	})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.AverageVisitLengthMinutes)
	assert.Equal(t, "Small animal practice since 2015.", *updated.Bio)
	assert.ElementsMatch(t,
		[]models.VetSpecialization{models.SpecSurgery, models.SpecDentistry},
		updated.SpecializationSet())

	_, err = svc.UpdateOwnProfile(p, &dto.VetProfileUpdateRequest{AverageVisitLengthMinutes: 4})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.UpdateOwnProfile(p, &dto.VetProfileUpdateRequest{
		AverageVisitLengthMinutes: 30,
		Specializations:           []models.VetSpecialization{"ASTROLOGY"},
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestVetProfileConcurrentFirstTouch(t *testing.T) {
	env := newTestEnv(t)
	svc := NewVetService(env.vets)
	vetUser := createUser(t, env.db, "drsmith", models.RoleVet)
	p := asPrincipal(vetUser)

	profiles := make([]*models.VetProfile, 2)
	errs := make([]error, 2)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			profiles[i], errs[i] = svc.GetOrCreateForUser(p)
		}(i)
	}
	close(start)
	wg.Wait()

	// Whichever request loses the insert race still comes back with the
	// winner's profile, never a conflict error.
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, profiles[0].ID, profiles[1].ID)
}

package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
)

func actor(roles ...models.Role) principal.Principal {
	return principal.Principal{UserID: uuid.New(), Username: "actor", Roles: roles}
}

func TestPetAccess(t *testing.T) {
	pl := NewPolicy()

	owner := actor(models.RoleOwner)
	stranger := actor(models.RoleOwner)
	vet := actor(models.RoleVet)
	admin := actor(models.RoleAdmin)

	pet := &models.Pet{ID: uuid.New(), OwnerID: owner.UserID, Name: "Rex"}

	tests := []struct {
		name string
		p    principal.Principal
		view bool
		mod  bool
	}{
		{"owning user", owner, true, true},
		{"other owner", stranger, false, false},
		{"vet", vet, true, true},
		{"admin", admin, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.view, pl.CanViewPet(tt.p, pet))
			assert.Equal(t, tt.mod, pl.CanModifyPet(tt.p, pet))
		})
	}

	assert.False(t, pl.CanViewPet(owner, nil))
}

func TestOwnerReassignmentRights(t *testing.T) {
	pl := NewPolicy()
	assert.False(t, pl.CanReassignPetOwner(actor(models.RoleOwner)))
	assert.True(t, pl.CanReassignPetOwner(actor(models.RoleVet)))
	assert.True(t, pl.CanReassignPetOwner(actor(models.RoleAdmin)))
}

func TestVisitAccess(t *testing.T) {
	pl := NewPolicy()

	petOwner := actor(models.RoleOwner)
	otherOwner := actor(models.RoleOwner)
	visitVet := actor(models.RoleVet)
	otherVet := actor(models.RoleVet)
	admin := actor(models.RoleAdmin)

	visit := &models.Visit{
		ID:  uuid.New(),
		Pet: &models.Pet{OwnerID: petOwner.UserID},
		VetProfile: &models.VetProfile{
			ID:     uuid.New(),
			UserID: visitVet.UserID,
		},
	}

	tests := []struct {
		name string
		p    principal.Principal
		view bool
		mod  bool
	}{
		{"pet owner", petOwner, true, false},
		{"other owner", otherOwner, false, false},
		{"visit's vet", visitVet, true, true},
		{"other vet", otherVet, true, false},
		{"admin", admin, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.view, pl.CanViewVisit(tt.p, visit))
			assert.Equal(t, tt.mod, pl.CanModifyVisit(tt.p, visit))
		})
	}
}

func TestRecordAccess(t *testing.T) {
	pl := NewPolicy()

	authorVet := actor(models.RoleVet)
	otherVet := actor(models.RoleVet)
	admin := actor(models.RoleAdmin)

	record := &models.MedicalRecord{
		ID: uuid.New(),
		VetProfile: &models.VetProfile{
			ID:     uuid.New(),
			UserID: authorVet.UserID,
		},
	}

	assert.True(t, pl.CanModifyRecord(authorVet, record))
	assert.False(t, pl.CanModifyRecord(otherVet, record))
	assert.True(t, pl.CanModifyRecord(admin, record))
}

func TestCheckVariantsReturnForbidden(t *testing.T) {
	pl := NewPolicy()
	stranger := actor(models.RoleOwner)
	pet := &models.Pet{ID: uuid.New(), OwnerID: uuid.New()}

	err := pl.CheckCanViewPet(stranger, pet)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	owner := principal.Principal{UserID: pet.OwnerID, Roles: []models.Role{models.RoleOwner}}
	assert.NoError(t, pl.CheckCanViewPet(owner, pet))
}

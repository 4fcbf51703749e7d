package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
)

func newUserService(env *testEnv) *UserService {
	return NewUserService(env.users, env.pets, env.vets)
}

func TestUserDeleteBlockedByReferences(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	owner := createUser(t, env.db, "alice", models.RoleOwner)
	createPet(t, env.db, owner, "Rex")

	err := svc.Delete(owner.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFkInUse))

	vetUser, _ := createVet(t, env.db, "drsmith")
	err = svc.Delete(vetUser.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFkInUse))

	free := createUser(t, env.db, "bob", models.RoleOwner)
	assert.NoError(t, svc.Delete(free.ID))

	_, err = svc.Get(free.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUserCreateRoleValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	base := dto.UserCreateRequest{
		FullName: "Carol", Username: "carol", Email: "carol@example.com", Password: "password1",
	}

	noRoles := base
	_, err := svc.Create(&noRoles)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	badRole := base
	badRole.Roles = []models.Role{"WIZARD"}
	_, err = svc.Create(&badRole)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	ok := base
	ok.Roles = []models.Role{models.RoleVet, models.RoleAdmin}
	user, err := svc.Create(&ok)
	require.NoError(t, err)
	assert.True(t, user.HasRole(models.RoleVet))
	assert.True(t, user.HasRole(models.RoleAdmin))
}

func TestUserUpdateRoles(t *testing.T) {
	env := newTestEnv(t)
	svc := newUserService(env)

	user := createUser(t, env.db, "alice", models.RoleOwner)

	roles := []models.Role{models.RoleOwner, models.RoleVet}
	updated, err := svc.Update(user.ID, &dto.UserUpdateRequest{Roles: &roles})
	require.NoError(t, err)
	assert.True(t, updated.HasRole(models.RoleVet))

	empty := []models.Role{}
	_, err = svc.Update(user.ID, &dto.UserUpdateRequest{Roles: &empty})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

package services

import (
	"net/mail"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService is the admin user-management surface. Route guards
// restrict every method to the ADMIN role.
type UserService struct {
	users repository.Users
	pets  repository.Pets
	vets  repository.Vets
}

func NewUserService(users repository.Users, pets repository.Pets, vets repository.Vets) *UserService {
	return &UserService{users: users, pets: pets, vets: vets}
}

func (s *UserService) List(page repository.Page) ([]models.User, int64, error) {
	return s.users.List(page)
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	return s.users.GetByID(id)
}

func (s *UserService) Create(req *dto.UserCreateRequest) (*models.User, error) {
	if err := validateCredentials(req.FullName, req.Username, req.Email, req.Password); err != nil {
		return nil, err
	}
	if len(req.Roles) == 0 {
		return nil, apperrors.Validation("at least one role is required")
	}
	for _, r := range req.Roles {
		if !models.ValidRole(r) {
			return nil, apperrors.Validation("unknown role: " + string(r))
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	user.SetRoles(req.Roles)

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UserUpdateRequest) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if *req.FullName == "" {
			return nil, apperrors.Validation("full name must not be empty")
		}
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return nil, apperrors.Validation("email address is not valid")
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, apperrors.Validation("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.Roles != nil {
		if len(*req.Roles) == 0 {
			return nil, apperrors.Validation("at least one role is required")
		}
		for _, r := range *req.Roles {
			if !models.ValidRole(r) {
				return nil, apperrors.Validation("unknown role: " + string(r))
			}
		}
		user.SetRoles(*req.Roles)
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user unless pets or a vet profile still reference
// it; those references must be reassigned or removed first.
func (s *UserService) Delete(id uuid.UUID) error {
	user, err := s.users.GetByID(id)
	if err != nil {
		return err
	}

	petCount, err := s.pets.CountByOwner(id)
	if err != nil {
		return err
	}
	if petCount > 0 {
		return apperrors.FkInUse("cannot delete user: pets are still assigned to this owner")
	}

	hasProfile, err := s.vets.HasProfileForUser(id)
	if err != nil {
		return err
	}
	if hasProfile {
		return apperrors.FkInUse("cannot delete user: a veterinarian profile still references this account")
	}

	return s.users.Delete(user)
}

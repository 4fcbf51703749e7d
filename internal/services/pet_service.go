package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/access"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/repository"
)

type PetService struct {
	pets   repository.Pets
	users  repository.Users
	policy access.Policy
}

func NewPetService(pets repository.Pets, users repository.Users, policy access.Policy) *PetService {
	return &PetService{pets: pets, users: users, policy: policy}
}

func (s *PetService) Create(p principal.Principal, req *dto.PetCreateRequest) (*models.Pet, error) {
	ownerID := p.UserID
	if req.OwnerID != nil && *req.OwnerID != p.UserID {
		if !s.policy.CanReassignPetOwner(p) {
			return nil, apperrors.Forbidden("you are not allowed to create pets for another user")
		}
		ownerID = *req.OwnerID
	}
	owner, err := s.users.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	if err := validatePetFields(req.Name, req.Species, req.Sex, req.BirthDate, req.WeightKg); err != nil {
		return nil, err
	}

	pet := models.Pet{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		Owner:     owner,
		Name:      req.Name,
		Species:   req.Species,
		Sex:       req.Sex,
		Breed:     req.Breed,
		BirthDate: req.BirthDate,
		BirthYear: req.BirthYear,
		WeightKg:  req.WeightKg,
		Notes:     req.Notes,
	}
	if err := s.pets.Create(&pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (s *PetService) Update(p principal.Principal, petID uuid.UUID, req *dto.PetUpdateRequest) (*models.Pet, error) {
	pet, err := s.pets.GetByID(petID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanModifyPet(p, pet); err != nil {
		return nil, err
	}

	if req.OwnerID != pet.OwnerID {
		if !s.policy.CanReassignPetOwner(p) {
			return nil, apperrors.Forbidden("you are not allowed to change pet owner")
		}
		owner, err := s.users.GetByID(req.OwnerID)
		if err != nil {
			return nil, err
		}
		pet.OwnerID = owner.ID
		pet.Owner = owner
	}

	if err := validatePetFields(req.Name, req.Species, req.Sex, req.BirthDate, req.WeightKg); err != nil {
		return nil, err
	}

	pet.Name = req.Name
	pet.Species = req.Species
	pet.Sex = req.Sex
	pet.Breed = req.Breed
	pet.BirthDate = req.BirthDate
	pet.BirthYear = req.BirthYear
	pet.WeightKg = req.WeightKg
	pet.Notes = req.Notes

	if err := s.pets.Save(pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *PetService) GetByID(p principal.Principal, petID uuid.UUID) (*models.Pet, error) {
	pet, err := s.pets.GetByID(petID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanViewPet(p, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *PetService) ListForOwner(p principal.Principal, ownerID uuid.UUID) ([]models.Pet, error) {
	if ownerID != p.UserID && !p.HasAnyRole(models.RoleAdmin, models.RoleVet) {
		return nil, apperrors.Forbidden("you are not allowed to access pets for this owner")
	}
	return s.pets.ListByOwner(ownerID)
}

func (s *PetService) ListAll(p principal.Principal, page repository.Page) ([]models.Pet, int64, error) {
	if !p.HasAnyRole(models.RoleAdmin, models.RoleVet) {
		return nil, 0, apperrors.Forbidden("you are not allowed to access all pets")
	}
	return s.pets.ListAll(page)
}

func (s *PetService) Delete(p principal.Principal, petID uuid.UUID) error {
	pet, err := s.pets.GetByID(petID)
	if err != nil {
		return err
	}
	if err := s.policy.CheckCanModifyPet(p, pet); err != nil {
		return err
	}
	return s.pets.Delete(pet)
}

// Export dumps the caller's pets in a format Import accepts unchanged.
func (s *PetService) Export(p principal.Principal) ([]dto.PetExport, error) {
	pets, err := s.pets.ListByOwner(p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PetExport, 0, len(pets))
	for i := range pets {
		out = append(out, dto.NewPetExport(&pets[i]))
	}
	return out, nil
}

func (s *PetService) Import(p principal.Principal, items []dto.PetExport) ([]models.Pet, error) {
	if len(items) == 0 {
		return nil, apperrors.Validation("no pets to import")
	}

	created := make([]models.Pet, 0, len(items))
	for i := range items {
		item := &items[i]
		if err := validatePetFields(item.Name, item.Species, item.Sex, item.BirthDate, item.WeightKg); err != nil {
			return nil, err
		}
		pet := models.Pet{
			ID:        uuid.New(),
			OwnerID:   p.UserID,
			Name:      item.Name,
			Species:   item.Species,
			Sex:       item.Sex,
			Breed:     item.Breed,
			BirthDate: item.BirthDate,
			BirthYear: item.BirthYear,
			WeightKg:  item.WeightKg,
			Notes:     item.Notes,
		}
		if err := s.pets.Create(&pet); err != nil {
			return nil, err
		}
		created = append(created, pet)
	}
	return created, nil
}

func validatePetFields(name string, species models.PetSpecies, sex models.PetSex, birthDate *string, weightKg *float64) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.Validation("pet name is required")
	}
	if !models.ValidSpecies(species) {
		return apperrors.Validation("unknown species: " + string(species))
	}
	if !models.ValidSex(sex) {
		return apperrors.Validation("unknown sex: " + string(sex))
	}
	if birthDate != nil && !models.ValidDate(*birthDate) {
		return apperrors.Validation("birth date must be YYYY-MM-DD")
	}
	if weightKg != nil && *weightKg <= 0 {
		return apperrors.Validation("weight must be positive")
	}
	return nil
}

package services

import (
	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/repository"
)

type VetService struct {
	vets repository.Vets
}

func NewVetService(vets repository.Vets) *VetService {
	return &VetService{vets: vets}
}

func (s *VetService) ListDirectory() ([]models.VetProfile, error) {
	return s.vets.ListProfiles()
}

func (s *VetService) GetProfile(id uuid.UUID) (*models.VetProfile, error) {
	return s.vets.GetProfile(id)
}

// GetOrCreateForUser returns the caller's vet profile, creating the
// default one on first touch. Only VET users have profiles.
func (s *VetService) GetOrCreateForUser(p principal.Principal) (*models.VetProfile, error) {
	if !p.HasRole(models.RoleVet) {
		return nil, apperrors.Forbidden("only vets can manage vet profile data")
	}

	profile, err := s.vets.GetProfileByUser(p.UserID)
	if err == nil {
		return profile, nil
	}
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		return nil, err
	}

	profile = &models.VetProfile{
		ID:                        uuid.New(),
		UserID:                    p.UserID,
		AcceptsNewPatients:        true,
		AverageVisitLengthMinutes: 20,
	}
	profile.SetSpecializations(nil)
	if err := s.vets.CreateProfile(profile); err != nil {
		// Two first touches can race; the request that lost the insert
		// takes the winner's profile.
		if apperrors.IsKind(err, apperrors.KindDuplicate) {
			return s.vets.GetProfileByUser(p.UserID)
		}
		return nil, err
	}
	return profile, nil
}

func (s *VetService) UpdateOwnProfile(p principal.Principal, req *dto.VetProfileUpdateRequest) (*models.VetProfile, error) {
	profile, err := s.GetOrCreateForUser(p)
	if err != nil {
		return nil, err
	}

	if req.AverageVisitLengthMinutes < models.MinSlotLengthMinutes ||
		req.AverageVisitLengthMinutes > models.MaxSlotLengthMinutes {
		return nil, apperrors.Validation("average visit length must be between 5 and 240 minutes")
	}
	for _, spec := range req.Specializations {
		if !models.ValidSpecialization(spec) {
			return nil, apperrors.Validation("unknown specialization: " + string(spec))
		}
	}

	profile.Bio = req.Bio
	profile.AcceptsNewPatients = req.AcceptsNewPatients == nil || *req.AcceptsNewPatients
	profile.AverageVisitLengthMinutes = req.AverageVisitLengthMinutes
	profile.SetSpecializations(req.Specializations)

	if err := s.vets.SaveProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

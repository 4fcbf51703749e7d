package dto

import (
	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/models"
)

type PetCreateRequest struct {
	// OwnerID defaults to the caller; only admins and vets may set it
	// to another user.
	OwnerID   *uuid.UUID        `json:"owner_id"`
	Name      string            `json:"name"`
	Species   models.PetSpecies `json:"species"`
	Sex       models.PetSex     `json:"sex"`
	Breed     *string           `json:"breed"`
	BirthDate *string           `json:"birth_date"`
	BirthYear *int              `json:"birth_year"`
	WeightKg  *float64          `json:"weight_kg"`
	Notes     *string           `json:"notes"`
}

type PetUpdateRequest struct {
	OwnerID   uuid.UUID         `json:"owner_id"`
	Name      string            `json:"name"`
	Species   models.PetSpecies `json:"species"`
	Sex       models.PetSex     `json:"sex"`
	Breed     *string           `json:"breed"`
	BirthDate *string           `json:"birth_date"`
	BirthYear *int              `json:"birth_year"`
	WeightKg  *float64          `json:"weight_kg"`
	Notes     *string           `json:"notes"`
}

type PetResponse struct {
	ID        uuid.UUID         `json:"id"`
	OwnerID   uuid.UUID         `json:"owner_id"`
	OwnerName string            `json:"owner_name,omitempty"`
	Name      string            `json:"name"`
	Species   models.PetSpecies `json:"species"`
	Sex       models.PetSex     `json:"sex"`
	Breed     *string           `json:"breed,omitempty"`
	BirthDate *string           `json:"birth_date,omitempty"`
	BirthYear *int              `json:"birth_year,omitempty"`
	WeightKg  *float64          `json:"weight_kg,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

func NewPetResponse(pet *models.Pet) PetResponse {
	resp := PetResponse{
		ID:        pet.ID,
		OwnerID:   pet.OwnerID,
		Name:      pet.Name,
		Species:   pet.Species,
		Sex:       pet.Sex,
		Breed:     pet.Breed,
		BirthDate: pet.BirthDate,
		BirthYear: pet.BirthYear,
		WeightKg:  pet.WeightKg,
		Notes:     pet.Notes,
	}
	if pet.Owner != nil {
		resp.OwnerName = pet.Owner.FullName
	}
	return resp
}

// PetExport is the owner-facing bulk format: no ids, no owner
// reference, so a dump can be re-imported under any account.
type PetExport struct {
	Name      string            `json:"name"`
	Species   models.PetSpecies `json:"species"`
	Sex       models.PetSex     `json:"sex"`
	Breed     *string           `json:"breed,omitempty"`
	BirthDate *string           `json:"birth_date,omitempty"`
	BirthYear *int              `json:"birth_year,omitempty"`
	WeightKg  *float64          `json:"weight_kg,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
}

func NewPetExport(pet *models.Pet) PetExport {
	return PetExport{
		Name:      pet.Name,
		Species:   pet.Species,
		Sex:       pet.Sex,
		Breed:     pet.Breed,
		BirthDate: pet.BirthDate,
		BirthYear: pet.BirthYear,
		WeightKg:  pet.WeightKg,
		Notes:     pet.Notes,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type PetSpecies string

const (
	SpeciesDog     PetSpecies = "DOG"
	SpeciesCat     PetSpecies = "CAT"
	SpeciesRabbit  PetSpecies = "RABBIT"
	SpeciesRodent  PetSpecies = "RODENT"
	SpeciesBird    PetSpecies = "BIRD"
	SpeciesReptile PetSpecies = "REPTILE"
	SpeciesOther   PetSpecies = "OTHER"
)

func ValidSpecies(s PetSpecies) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesRabbit, SpeciesRodent, SpeciesBird, SpeciesReptile, SpeciesOther:
		return true
	}
	return false
}

type PetSex string

const (
	SexMale    PetSex = "MALE"
	SexFemale  PetSex = "FEMALE"
	SexUnknown PetSex = "UNKNOWN"
)

func ValidSex(s PetSex) bool {
	return s == SexMale || s == SexFemale || s == SexUnknown
}

type Pet struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner     *User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name      string     `gorm:"size:64;not null" json:"name"`
	Species   PetSpecies `gorm:"size:32;not null" json:"species"`
	Sex       PetSex     `gorm:"size:16;not null" json:"sex"`
	Breed     *string    `gorm:"size:64" json:"breed,omitempty"`
	BirthDate *string    `gorm:"size:10" json:"birth_date,omitempty"`
	BirthYear *int       `json:"birth_year,omitempty"`
	WeightKg  *float64   `json:"weight_kg,omitempty"`
	Notes     *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type VetSpecialization string

const (
	SpecGeneralPractice VetSpecialization = "GENERAL_PRACTICE"
	SpecSurgery         VetSpecialization = "SURGERY"
	SpecDentistry       VetSpecialization = "DENTISTRY"
	SpecExoticAnimals   VetSpecialization = "EXOTIC_ANIMALS"
	SpecDermatology     VetSpecialization = "DERMATOLOGY"
	SpecCardiology      VetSpecialization = "CARDIOLOGY"
)

func ValidSpecialization(s VetSpecialization) bool {
	switch s {
	case SpecGeneralPractice, SpecSurgery, SpecDentistry, SpecExoticAnimals, SpecDermatology, SpecCardiology:
		return true
	}
	return false
}

const (
	MinSlotLengthMinutes = 5
	MaxSlotLengthMinutes = 240
)

// VetProfile is created lazily the first time a VET user touches the
// vet subsystem. One profile per vet user.
type VetProfile struct {
	ID                        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User                      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bio                       *string        `gorm:"type:text" json:"bio,omitempty"`
	AcceptsNewPatients        bool           `gorm:"not null;default:true" json:"accepts_new_patients"`
	AverageVisitLengthMinutes int            `gorm:"not null;default:20" json:"average_visit_length_minutes"`
	Specializations           datatypes.JSON `json:"specializations"`
	CreatedAt                 time.Time      `json:"created_at"`
	UpdatedAt                 time.Time      `json:"updated_at"`
}

func (p *VetProfile) SpecializationSet() []VetSpecialization {
	var specs []VetSpecialization
	if err := json.Unmarshal(p.Specializations, &specs); err != nil {
		return nil
	}
	return specs
}

func (p *VetProfile) SetSpecializations(specs []VetSpecialization) {
	if specs == nil {
		specs = []VetSpecialization{}
	}
	b, _ := json.Marshal(specs)
	p.Specializations = datatypes.JSON(b)
}

// VetScheduleEntry is one recurring weekly working-hours block.
// The interval [StartTime, EndTime) is divided into slots of
// SlotLengthMinutes starting at StartTime.
type VetScheduleEntry struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	VetProfileID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"vet_profile_id"`
	VetProfile        *VetProfile `gorm:"foreignKey:VetProfileID;constraint:OnDelete:CASCADE" json:"-"`
	DayOfWeek         string      `gorm:"size:16;not null" json:"day_of_week"`
	StartTime         string      `gorm:"size:5;not null" json:"start_time"`
	EndTime           string      `gorm:"size:5;not null" json:"end_time"`
	SlotLengthMinutes int         `gorm:"not null" json:"slot_length_minutes"`
	CreatedAt         time.Time   `json:"created_at"`
}

// VetTimeOff blocks bookings for every date in [StartDate, EndDate],
// endpoints inclusive.
type VetTimeOff struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	VetProfileID uuid.UUID   `gorm:"type:uuid;not null;index" json:"vet_profile_id"`
	VetProfile   *VetProfile `gorm:"foreignKey:VetProfileID;constraint:OnDelete:CASCADE" json:"-"`
	StartDate    string      `gorm:"size:10;not null" json:"start_date"`
	EndDate      string      `gorm:"size:10;not null" json:"end_date"`
	Reason       string      `gorm:"size:255" json:"reason"`
	CreatedAt    time.Time   `json:"created_at"`
}

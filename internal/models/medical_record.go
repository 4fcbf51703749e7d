package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MedicalRecord is the clinical outcome of a single visit. At most one
// record exists per visit; the authoring vet is the visit's vet. Pet
// and vet profile are always copied from the visit, never supplied by
// the client.
type MedicalRecord struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PetID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"pet_id"`
	Pet           *Pet           `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	VetProfileID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"vet_profile_id"`
	VetProfile    *VetProfile    `gorm:"foreignKey:VetProfileID" json:"vet_profile,omitempty"`
	VisitID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"visit_id"`
	Visit         *Visit         `gorm:"foreignKey:VisitID" json:"-"`
	Title         *string        `gorm:"size:255" json:"title,omitempty"`
	Diagnosis     *string        `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment     *string        `gorm:"type:text" json:"treatment,omitempty"`
	Prescriptions datatypes.JSON `json:"prescriptions,omitempty"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (r *MedicalRecord) PrescriptionList() []string {
	var list []string
	if err := json.Unmarshal(r.Prescriptions, &list); err != nil {
		return nil
	}
	return list
}

func (r *MedicalRecord) SetPrescriptions(list []string) {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	r.Prescriptions = datatypes.JSON(b)
}

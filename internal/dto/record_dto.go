package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/models"
)

type RecordCreateRequest struct {
	VisitID       uuid.UUID `json:"visit_id"`
	Title         *string   `json:"title"`
	Diagnosis     *string   `json:"diagnosis"`
	Treatment     *string   `json:"treatment"`
	Prescriptions []string  `json:"prescriptions"`
	Notes         *string   `json:"notes"`
}

type RecordUpdateRequest struct {
	Title         *string   `json:"title"`
	Diagnosis     *string   `json:"diagnosis"`
	Treatment     *string   `json:"treatment"`
	Prescriptions *[]string `json:"prescriptions"`
	Notes         *string   `json:"notes"`
}

type RecordResponse struct {
	ID            uuid.UUID `json:"id"`
	PetID         uuid.UUID `json:"pet_id"`
	PetName       string    `json:"pet_name,omitempty"`
	VetProfileID  uuid.UUID `json:"vet_profile_id"`
	VisitID       uuid.UUID `json:"visit_id"`
	Title         *string   `json:"title,omitempty"`
	Diagnosis     *string   `json:"diagnosis,omitempty"`
	Treatment     *string   `json:"treatment,omitempty"`
	Prescriptions []string  `json:"prescriptions"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewRecordResponse(r *models.MedicalRecord) RecordResponse {
	prescriptions := r.PrescriptionList()
	if prescriptions == nil {
		prescriptions = []string{}
	}
	resp := RecordResponse{
		ID:            r.ID,
		PetID:         r.PetID,
		VetProfileID:  r.VetProfileID,
		VisitID:       r.VisitID,
		Title:         r.Title,
		Diagnosis:     r.Diagnosis,
		Treatment:     r.Treatment,
		Prescriptions: prescriptions,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
	}
	if r.Pet != nil {
		resp.PetName = r.Pet.Name
	}
	return resp
}

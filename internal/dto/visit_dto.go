package dto

import (
	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/models"
)

type VisitCreateRequest struct {
	PetID        uuid.UUID `json:"pet_id"`
	VetProfileID uuid.UUID `json:"vet_profile_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes"`
}

type VisitUpdateRequest struct {
	Reason *string `json:"reason"`
	Notes  *string `json:"notes"`
}

type VisitStatusRequest struct {
	Status models.VisitStatus `json:"status"`
}

type VisitResponse struct {
	ID           uuid.UUID          `json:"id"`
	PetID        uuid.UUID          `json:"pet_id"`
	PetName      string             `json:"pet_name,omitempty"`
	VetProfileID uuid.UUID          `json:"vet_profile_id"`
	VetName      string             `json:"vet_name,omitempty"`
	Date         string             `json:"date"`
	StartTime    string             `json:"start_time"`
	EndTime      string             `json:"end_time"`
	Status       models.VisitStatus `json:"status"`
	Reason       string             `json:"reason"`
	Notes        string             `json:"notes"`
}

func NewVisitResponse(v *models.Visit) VisitResponse {
	resp := VisitResponse{
		ID:           v.ID,
		PetID:        v.PetID,
		VetProfileID: v.VetProfileID,
		Date:         v.Date,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Status:       v.Status,
		Reason:       v.Reason,
		Notes:        v.Notes,
	}
	if v.Pet != nil {
		resp.PetName = v.Pet.Name
	}
	if v.VetProfile != nil && v.VetProfile.User != nil {
		resp.VetName = v.VetProfile.User.FullName
	}
	return resp
}

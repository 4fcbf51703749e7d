package dto

import (
	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/models"
)

type VetProfileResponse struct {
	ID                        uuid.UUID                  `json:"id"`
	UserID                    uuid.UUID                  `json:"user_id"`
	FullName                  string                     `json:"full_name,omitempty"`
	Bio                       *string                    `json:"bio,omitempty"`
	AcceptsNewPatients        bool                       `json:"accepts_new_patients"`
	AverageVisitLengthMinutes int                        `json:"average_visit_length_minutes"`
	Specializations           []models.VetSpecialization `json:"specializations"`
}

func NewVetProfileResponse(profile *models.VetProfile) VetProfileResponse {
	specs := profile.SpecializationSet()
	if specs == nil {
		specs = []models.VetSpecialization{}
	}
	resp := VetProfileResponse{
		ID:                        profile.ID,
		UserID:                    profile.UserID,
		Bio:                       profile.Bio,
		AcceptsNewPatients:        profile.AcceptsNewPatients,
		AverageVisitLengthMinutes: profile.AverageVisitLengthMinutes,
		Specializations:           specs,
	}
	if profile.User != nil {
		resp.FullName = profile.User.FullName
	}
	return resp
}

type VetProfileUpdateRequest struct {
	Bio                       *string                    `json:"bio"`
	AcceptsNewPatients        *bool                      `json:"accepts_new_patients"`
	AverageVisitLengthMinutes int                        `json:"average_visit_length_minutes"`
	Specializations           []models.VetSpecialization `json:"specializations"`
}

type ScheduleEntryRequest struct {
	DayOfWeek         string `json:"day_of_week"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	SlotLengthMinutes int    `json:"slot_length_minutes"`
}

type ScheduleEntryResponse struct {
	ID                uuid.UUID `json:"id"`
	DayOfWeek         string    `json:"day_of_week"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	SlotLengthMinutes int       `json:"slot_length_minutes"`
}

func NewScheduleEntryResponse(e *models.VetScheduleEntry) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		ID:                e.ID,
		DayOfWeek:         e.DayOfWeek,
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		SlotLengthMinutes: e.SlotLengthMinutes,
	}
}

type TimeOffCreateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type TimeOffResponse struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
}

func NewTimeOffResponse(w *models.VetTimeOff) TimeOffResponse {
	return TimeOffResponse{
		ID:        w.ID,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		Reason:    w.Reason,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type VisitStatus string

const (
	VisitScheduled VisitStatus = "SCHEDULED"
	VisitConfirmed VisitStatus = "CONFIRMED"
	VisitCancelled VisitStatus = "CANCELLED"
	VisitCompleted VisitStatus = "COMPLETED"
)

func ValidVisitStatus(s VisitStatus) bool {
	switch s {
	case VisitScheduled, VisitConfirmed, VisitCancelled, VisitCompleted:
		return true
	}
	return false
}

// visitTransitions encodes the visit state machine. CANCELLED and
// COMPLETED are terminal.
var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitScheduled: {VisitConfirmed, VisitCancelled},
	VisitConfirmed: {VisitCompleted, VisitCancelled},
}

// CanTransition reports whether a visit may move from one status to
// another.
func CanTransition(from, to VisitStatus) bool {
	for _, next := range visitTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BlockingStatuses are the visit statuses that occupy a slot for
// overlap purposes. Cancelled visits release their slot.
var BlockingStatuses = []VisitStatus{VisitScheduled, VisitConfirmed}

type Visit struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	PetID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"pet_id"`
	Pet          *Pet        `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	VetProfileID uuid.UUID   `gorm:"type:uuid;not null;index:idx_visits_vet_date" json:"vet_profile_id"`
	VetProfile   *VetProfile `gorm:"foreignKey:VetProfileID" json:"vet_profile,omitempty"`
	Date         string      `gorm:"size:10;not null;index:idx_visits_vet_date" json:"date"`
	StartTime    string      `gorm:"size:5;not null" json:"start_time"`
	EndTime      string      `gorm:"size:5;not null" json:"end_time"`
	Status       VisitStatus `gorm:"size:16;not null" json:"status"`
	Reason       string      `gorm:"size:255" json:"reason"`
	Notes        string      `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

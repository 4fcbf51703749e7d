package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/witoldp/petcare-backend/internal/access"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/database"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/repository"
)

// VisitService owns booking admission and the visit state machine.
type VisitService struct {
	db     *gorm.DB
	visits repository.Visits
	pets   repository.Pets
	vets   repository.Vets
	policy access.Policy
	slots  SlotClassifier
	now    func() time.Time
}

func NewVisitService(db *gorm.DB, visits repository.Visits, pets repository.Pets, vets repository.Vets, policy access.Policy, slots SlotClassifier) *VisitService {
	return &VisitService{
		db:     db,
		visits: visits,
		pets:   pets,
		vets:   vets,
		policy: policy,
		slots:  slots,
		now:    time.Now,
	}
}

// Create runs the booking admission pipeline. Checks outside the
// transaction are advisory; the authoritative conflict check happens
// under the vet profile row lock so two concurrent requests for the
// same slot cannot both pass.
func (s *VisitService) Create(p principal.Principal, req *dto.VisitCreateRequest) (*models.Visit, error) {
	pet, err := s.pets.GetByID(req.PetID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanModifyPet(p, pet); err != nil {
		return nil, err
	}

	if !models.ValidDate(req.Date) {
		return nil, apperrors.Validation("date must be YYYY-MM-DD")
	}
	if !models.ValidClock(req.StartTime) {
		return nil, apperrors.Validation("start time must be HH:MM")
	}

	if err := s.checkNotInPast(req.Date, req.StartTime); err != nil {
		return nil, err
	}

	cls, err := s.slots.ClassifySlot(req.VetProfileID, req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}
	if cls.Entry == nil || !cls.Aligned {
		return nil, apperrors.OutsideWorkingHours("the vet does not offer a slot at this time")
	}
	if cls.OnTimeOff {
		return nil, apperrors.OnTimeOff("the vet is on time off on this date")
	}

	end := models.AddMinutes(req.StartTime, cls.Entry.SlotLengthMinutes)

	visit := &models.Visit{
		ID:           uuid.New(),
		PetID:        pet.ID,
		VetProfileID: req.VetProfileID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      end,
		Status:       models.VisitScheduled,
		Reason:       req.Reason,
		Notes:        req.Notes,
	}

	err = database.WithBookingTx(s.db, func(tx *gorm.DB) error {
		if err := s.vets.WithTx(tx).LockProfile(req.VetProfileID); err != nil {
			return err
		}
		taken, err := s.visits.WithTx(tx).AnyOverlap(req.VetProfileID, req.Date, models.BlockingStatuses, req.StartTime, end)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.SlotTaken("this slot is already booked")
		}
		return s.visits.WithTx(tx).Create(visit)
	})
	if err != nil {
		return nil, err
	}
	return s.visits.GetByID(visit.ID)
}

// UpdateStatus advances the visit through its state machine.
func (s *VisitService) UpdateStatus(p principal.Principal, id uuid.UUID, to models.VisitStatus) (*models.Visit, error) {
	if !models.ValidVisitStatus(to) {
		return nil, apperrors.Validation("unknown visit status: " + string(to))
	}
	visit, err := s.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanModifyVisit(p, visit); err != nil {
		return nil, err
	}
	if !models.CanTransition(visit.Status, to) {
		return nil, apperrors.StatusNotAllowed(
			"cannot change visit status from " + string(visit.Status) + " to " + string(to))
	}
	visit.Status = to
	if err := s.visits.Save(visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// UpdateFields edits the free-text fields. Date, time and vet are
// immutable after booking; rebooking means cancel and create.
func (s *VisitService) UpdateFields(p principal.Principal, id uuid.UUID, req *dto.VisitUpdateRequest) (*models.Visit, error) {
	visit, err := s.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanModifyVisit(p, visit); err != nil {
		return nil, err
	}
	if req.Reason != nil {
		visit.Reason = *req.Reason
	}
	if req.Notes != nil {
		visit.Notes = *req.Notes
	}
	if err := s.visits.Save(visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *VisitService) Delete(p principal.Principal, id uuid.UUID) error {
	visit, err := s.visits.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.policy.CheckCanModifyVisit(p, visit); err != nil {
		return err
	}
	return s.visits.Delete(visit)
}

func (s *VisitService) GetByID(p principal.Principal, id uuid.UUID) (*models.Visit, error) {
	visit, err := s.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanViewVisit(p, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *VisitService) ListForPet(p principal.Principal, petID uuid.UUID, page repository.Page) ([]models.Visit, int64, error) {
	pet, err := s.pets.GetByID(petID)
	if err != nil {
		return nil, 0, err
	}
	if err := s.policy.CheckCanViewPet(p, pet); err != nil {
		return nil, 0, err
	}
	return s.visits.ListByPet(petID, page)
}

func (s *VisitService) ListForVetOnDate(vetProfileID uuid.UUID, date string, page repository.Page) ([]models.Visit, int64, error) {
	if !models.ValidDate(date) {
		return nil, 0, apperrors.Validation("date must be YYYY-MM-DD")
	}
	if _, err := s.vets.GetProfile(vetProfileID); err != nil {
		return nil, 0, err
	}
	return s.visits.ListByVetOnDate(vetProfileID, date, page)
}

func (s *VisitService) ListForVet(vetProfileID uuid.UUID, page repository.Page) ([]models.Visit, int64, error) {
	if _, err := s.vets.GetProfile(vetProfileID); err != nil {
		return nil, 0, err
	}
	return s.visits.ListByVet(vetProfileID, page)
}

// checkNotInPast rejects dates before today and, for today, start
// times at or before the current clock.
func (s *VisitService) checkNotInPast(date, start string) error {
	now := s.now()
	today := models.FormatDate(now)
	if date < today {
		return apperrors.PastDateTime("cannot book a visit in the past")
	}
	if date == today && start <= models.FormatClock(now) {
		return apperrors.PastDateTime("cannot book a visit at a past time today")
	}
	return nil
}

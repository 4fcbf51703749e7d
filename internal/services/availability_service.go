package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/repository"
)

// SlotClassification is the booking engine's view of one requested
// (vet, date, start) triple.
type SlotClassification struct {
	// Entry is the schedule entry whose working-hours block contains
	// the start time, or nil when the vet does not work then.
	Entry *models.VetScheduleEntry
	// Aligned is true when the start time sits on the entry's slot grid.
	Aligned bool
	// OnTimeOff is true when a time-off window contains the date.
	OnTimeOff bool
}

// SlotClassifier is the availability primitive the booking engine
// consumes. Interface so booking tests can script classifications.
type SlotClassifier interface {
	ClassifySlot(vetProfileID uuid.UUID, date, start string) (SlotClassification, error)
}

type AvailabilityService struct {
	vets repository.Vets
}

func NewAvailabilityService(vets repository.Vets) *AvailabilityService {
	return &AvailabilityService{vets: vets}
}

func (s *AvailabilityService) GetWeeklySchedule(vetProfileID uuid.UUID) ([]models.VetScheduleEntry, error) {
	if _, err := s.vets.GetProfile(vetProfileID); err != nil {
		return nil, err
	}
	return s.vets.ListSchedule(vetProfileID)
}

// ReplaceWeeklySchedule atomically swaps the vet's whole weekly
// schedule for the submitted entries.
func (s *AvailabilityService) ReplaceWeeklySchedule(vetProfileID uuid.UUID, reqs []dto.ScheduleEntryRequest) ([]models.VetScheduleEntry, error) {
	entries := make([]models.VetScheduleEntry, 0, len(reqs))
	for i := range reqs {
		entry, err := buildScheduleEntry(vetProfileID, &reqs[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := checkNoSameDayOverlap(entries); err != nil {
		return nil, err
	}

	if err := s.vets.ReplaceSchedule(vetProfileID, entries); err != nil {
		return nil, err
	}
	return s.vets.ListSchedule(vetProfileID)
}

func (s *AvailabilityService) ListTimeOff(vetProfileID uuid.UUID) ([]models.VetTimeOff, error) {
	if _, err := s.vets.GetProfile(vetProfileID); err != nil {
		return nil, err
	}
	return s.vets.ListTimeOff(vetProfileID)
}

func (s *AvailabilityService) AddTimeOff(vetProfileID uuid.UUID, req *dto.TimeOffCreateRequest) (*models.VetTimeOff, error) {
	if !models.ValidDate(req.StartDate) || !models.ValidDate(req.EndDate) {
		return nil, apperrors.Validation("time-off dates must be YYYY-MM-DD")
	}
	if req.EndDate < req.StartDate {
		return nil, apperrors.Validation("end date cannot be before start date")
	}

	window := models.VetTimeOff{
		ID:           uuid.New(),
		VetProfileID: vetProfileID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
	}
	if err := s.vets.CreateTimeOff(&window); err != nil {
		return nil, err
	}
	return &window, nil
}

// DeleteTimeOff is restricted to the owning vet and admins.
func (s *AvailabilityService) DeleteTimeOff(p principal.Principal, id uuid.UUID) error {
	window, err := s.vets.GetTimeOff(id)
	if err != nil {
		return err
	}
	if !p.HasRole(models.RoleAdmin) {
		profile, err := s.vets.GetProfile(window.VetProfileID)
		if err != nil {
			return err
		}
		if profile.UserID != p.UserID {
			return apperrors.Forbidden("you can only delete your own time-off entries")
		}
	}
	return s.vets.DeleteTimeOff(window)
}

func (s *AvailabilityService) IsOnTimeOff(vetProfileID uuid.UUID, date string) (bool, error) {
	return s.vets.AnyTimeOffOn(vetProfileID, date)
}

// ClassifySlot answers whether (vet, date, start) is a bookable slot:
// which schedule entry covers it, whether the start is grid-aligned,
// and whether the date falls inside a time-off window.
func (s *AvailabilityService) ClassifySlot(vetProfileID uuid.UUID, date, start string) (SlotClassification, error) {
	if _, err := s.vets.GetProfile(vetProfileID); err != nil {
		return SlotClassification{}, err
	}

	var cls SlotClassification

	onTimeOff, err := s.vets.AnyTimeOffOn(vetProfileID, date)
	if err != nil {
		return cls, err
	}
	cls.OnTimeOff = onTimeOff

	entries, err := s.vets.ListSchedule(vetProfileID)
	if err != nil {
		return cls, err
	}

	day := models.DayOfWeek(date)
	for i := range entries {
		e := &entries[i]
		if e.DayOfWeek != day {
			continue
		}
		// Half-open block: start == EndTime is outside working hours.
		if start < e.StartTime || start >= e.EndTime {
			continue
		}
		cls.Entry = e
		cls.Aligned = models.MinutesBetween(e.StartTime, start)%e.SlotLengthMinutes == 0
		break
	}
	return cls, nil
}

func buildScheduleEntry(vetProfileID uuid.UUID, req *dto.ScheduleEntryRequest) (*models.VetScheduleEntry, error) {
	if !models.ValidDayOfWeek(req.DayOfWeek) {
		return nil, apperrors.Validation("unknown day of week: " + req.DayOfWeek)
	}
	if !models.ValidClock(req.StartTime) || !models.ValidClock(req.EndTime) {
		return nil, apperrors.Validation("schedule times must be HH:MM")
	}
	if req.StartTime >= req.EndTime {
		return nil, apperrors.Validation("start time must be before end time")
	}
	if req.SlotLengthMinutes < models.MinSlotLengthMinutes ||
		req.SlotLengthMinutes > models.MaxSlotLengthMinutes {
		return nil, apperrors.Validation("slot length must be between 5 and 240 minutes")
	}

	// Visit end times cannot wrap past midnight, so the last grid slot
	// inside the block has to close out within the day.
	startMin := models.MinutesBetween("00:00", req.StartTime)
	span := models.MinutesBetween(req.StartTime, req.EndTime)
	lastStart := (span - 1) / req.SlotLengthMinutes * req.SlotLengthMinutes
	if startMin+lastStart+req.SlotLengthMinutes >= 24*60 {
		return nil, apperrors.Validation("last slot must end before midnight")
	}

	return &models.VetScheduleEntry{
		ID:                uuid.New(),
		VetProfileID:      vetProfileID,
		// Stored uppercase so entries compare against DayOfWeek(date)
		// and group correctly in the overlap check.
		DayOfWeek:         strings.ToUpper(req.DayOfWeek),
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		SlotLengthMinutes: req.SlotLengthMinutes,
	}, nil
}

func checkNoSameDayOverlap(entries []models.VetScheduleEntry) error {
	byDay := make(map[string][]models.VetScheduleEntry)
	for _, e := range entries {
		byDay[e.DayOfWeek] = append(byDay[e.DayOfWeek], e)
	}
	for day, dayEntries := range byDay {
		sort.Slice(dayEntries, func(i, j int) bool {
			return dayEntries[i].StartTime < dayEntries[j].StartTime
		})
		for i := 1; i < len(dayEntries); i++ {
			if dayEntries[i].StartTime < dayEntries[i-1].EndTime {
				return apperrors.Validation("schedule entries overlap on " + day)
			}
		}
	}
	return nil
}

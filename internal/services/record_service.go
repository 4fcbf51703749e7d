package services

import (
	"github.com/google/uuid"

	"github.com/witoldp/petcare-backend/internal/access"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/repository"
)

type RecordService struct {
	records repository.Records
	visits  repository.Visits
	pets    repository.Pets
	vets    repository.Vets
	policy  access.Policy
}

func NewRecordService(records repository.Records, visits repository.Visits, pets repository.Pets, vets repository.Vets, policy access.Policy) *RecordService {
	return &RecordService{records: records, visits: visits, pets: pets, vets: vets, policy: policy}
}

// Create writes the clinical record for a visit. The visit must be
// confirmed or completed, must not have a record yet, and the caller
// must be the visit's vet or an admin. Pet and vet come from the
// visit, never from the request.
func (s *RecordService) Create(p principal.Principal, req *dto.RecordCreateRequest) (*models.MedicalRecord, error) {
	visit, err := s.visits.GetByID(req.VisitID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanModifyVisit(p, visit); err != nil {
		return nil, err
	}
	if visit.Status != models.VisitConfirmed && visit.Status != models.VisitCompleted {
		return nil, apperrors.StatusNotAllowed(
			"medical records can only be added to confirmed or completed visits")
	}
	exists, err := s.records.ExistsForVisit(visit.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Duplicate("medical record already exists for this visit")
	}

	record := &models.MedicalRecord{
		ID:           uuid.New(),
		PetID:        visit.PetID,
		VetProfileID: visit.VetProfileID,
		VisitID:      visit.ID,
		Title:        req.Title,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Notes:        req.Notes,
	}
	record.SetPrescriptions(req.Prescriptions)

	if err := s.records.Create(record); err != nil {
		return nil, err
	}
	return s.records.GetByID(record.ID)
}

func (s *RecordService) Update(p principal.Principal, id uuid.UUID, req *dto.RecordUpdateRequest) (*models.MedicalRecord, error) {
	record, err := s.records.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanModifyRecord(p, record); err != nil {
		return nil, err
	}
	if req.Title != nil {
		record.Title = req.Title
	}
	if req.Diagnosis != nil {
		record.Diagnosis = req.Diagnosis
	}
	if req.Treatment != nil {
		record.Treatment = req.Treatment
	}
	if req.Prescriptions != nil {
		record.SetPrescriptions(*req.Prescriptions)
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	if err := s.records.Save(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *RecordService) Delete(p principal.Principal, id uuid.UUID) error {
	record, err := s.records.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.policy.CheckCanModifyRecord(p, record); err != nil {
		return err
	}
	return s.records.Delete(record)
}

func (s *RecordService) GetByVisit(p principal.Principal, visitID uuid.UUID) (*models.MedicalRecord, error) {
	visit, err := s.visits.GetByID(visitID)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CheckCanViewVisit(p, visit); err != nil {
		return nil, err
	}
	return s.records.GetByVisit(visitID)
}

func (s *RecordService) ListForPet(p principal.Principal, petID uuid.UUID, page repository.Page) ([]models.MedicalRecord, int64, error) {
	pet, err := s.pets.GetByID(petID)
	if err != nil {
		return nil, 0, err
	}
	if err := s.policy.CheckCanViewPet(p, pet); err != nil {
		return nil, 0, err
	}
	return s.records.ListByPet(petID, page)
}

func (s *RecordService) ListForVet(vetProfileID uuid.UUID, page repository.Page) ([]models.MedicalRecord, int64, error) {
	if _, err := s.vets.GetProfile(vetProfileID); err != nil {
		return nil, 0, err
	}
	return s.records.ListByVet(vetProfileID, page)
}

func (s *RecordService) ListAll(p principal.Principal, page repository.Page) ([]models.MedicalRecord, int64, error) {
	if !p.HasRole(models.RoleAdmin) {
		return nil, 0, apperrors.Forbidden("only admins can list all medical records")
	}
	return s.records.ListAll(page)
}

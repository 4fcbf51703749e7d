// Package access decides view/modify rights on pets, visits and
// medical records. Admins and vets see everything; owners see only
// their own animals. Visit and record modification is reserved for the
// admin role and the vet the visit belongs to.
package access

import (
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
)

// Policy is the access decision interface. It is an interface only so
// booking and record tests can substitute a permissive stand-in.
type Policy interface {
	CanViewPet(p principal.Principal, pet *models.Pet) bool
	CanModifyPet(p principal.Principal, pet *models.Pet) bool
	CanReassignPetOwner(p principal.Principal) bool
	CanViewVisit(p principal.Principal, visit *models.Visit) bool
	CanModifyVisit(p principal.Principal, visit *models.Visit) bool
	CanModifyRecord(p principal.Principal, record *models.MedicalRecord) bool

	CheckCanViewPet(p principal.Principal, pet *models.Pet) error
	CheckCanModifyPet(p principal.Principal, pet *models.Pet) error
	CheckCanViewVisit(p principal.Principal, visit *models.Visit) error
	CheckCanModifyVisit(p principal.Principal, visit *models.Visit) error
	CheckCanModifyRecord(p principal.Principal, record *models.MedicalRecord) error
}

type policy struct{}

func NewPolicy() Policy { return policy{} }

func (policy) CanViewPet(p principal.Principal, pet *models.Pet) bool {
	if pet == nil {
		return false
	}
	if p.HasAnyRole(models.RoleAdmin, models.RoleVet) {
		return true
	}
	return pet.OwnerID == p.UserID
}

func (pl policy) CanModifyPet(p principal.Principal, pet *models.Pet) bool {
	// Same rule as viewing; owner reassignment is checked separately.
	return pl.CanViewPet(p, pet)
}

func (policy) CanReassignPetOwner(p principal.Principal) bool {
	return p.HasAnyRole(models.RoleAdmin, models.RoleVet)
}

func (policy) CanViewVisit(p principal.Principal, visit *models.Visit) bool {
	if visit == nil {
		return false
	}
	if p.HasAnyRole(models.RoleAdmin, models.RoleVet) {
		return true
	}
	if visit.Pet == nil {
		return false
	}
	return visit.Pet.OwnerID == p.UserID
}

func (policy) CanModifyVisit(p principal.Principal, visit *models.Visit) bool {
	if visit == nil {
		return false
	}
	if p.HasRole(models.RoleAdmin) {
		return true
	}
	return visit.VetProfile != nil && visit.VetProfile.UserID == p.UserID
}

func (policy) CanModifyRecord(p principal.Principal, record *models.MedicalRecord) bool {
	if record == nil {
		return false
	}
	if p.HasRole(models.RoleAdmin) {
		return true
	}
	return record.VetProfile != nil && record.VetProfile.UserID == p.UserID
}

func (pl policy) CheckCanViewPet(p principal.Principal, pet *models.Pet) error {
	if !pl.CanViewPet(p, pet) {
		return apperrors.Forbidden("you are not allowed to view this pet")
	}
	return nil
}

func (pl policy) CheckCanModifyPet(p principal.Principal, pet *models.Pet) error {
	if !pl.CanModifyPet(p, pet) {
		return apperrors.Forbidden("you are not allowed to modify this pet")
	}
	return nil
}

func (pl policy) CheckCanViewVisit(p principal.Principal, visit *models.Visit) error {
	if !pl.CanViewVisit(p, visit) {
		return apperrors.Forbidden("you are not allowed to view this visit")
	}
	return nil
}

func (pl policy) CheckCanModifyVisit(p principal.Principal, visit *models.Visit) error {
	if !pl.CanModifyVisit(p, visit) {
		return apperrors.Forbidden("you are not allowed to modify this visit")
	}
	return nil
}

func (pl policy) CheckCanModifyRecord(p principal.Principal, record *models.MedicalRecord) error {
	if !pl.CanModifyRecord(p, record) {
		return apperrors.Forbidden("you are not allowed to modify this record")
	}
	return nil
}

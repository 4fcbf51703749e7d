package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/services"
)

type RecordHandler struct {
	recordService *services.RecordService
	vetService    *services.VetService
}

func NewRecordHandler(recordService *services.RecordService, vetService *services.VetService) *RecordHandler {
	return &RecordHandler{recordService: recordService, vetService: vetService}
}

func (h *RecordHandler) Create(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	var req dto.RecordCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	record, err := h.recordService.Create(p, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewRecordResponse(record))
}

func (h *RecordHandler) Update(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.RecordUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	record, err := h.recordService.Update(p, id, &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRecordResponse(record))
}

func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.recordService.Delete(p, id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "medical record deleted"})
}

func (h *RecordHandler) GetByVisit(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	visitID, err := uuidParam(c, "visitId")
	if err != nil {
		return err
	}
	record, err := h.recordService.GetByVisit(p, visitID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRecordResponse(record))
}

func (h *RecordHandler) ListByPet(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	petID, err := uuidParam(c, "petId")
	if err != nil {
		return err
	}
	page := pageQuery(c)
	records, total, err := h.recordService.ListForPet(p, petID, page)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPage(recordResponses(records), page, total))
}

// ListMine lists the records authored by the calling vet.
func (h *RecordHandler) ListMine(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	profile, err := h.vetService.GetOrCreateForUser(p)
	if err != nil {
		return err
	}
	page := pageQuery(c)
	records, total, err := h.recordService.ListForVet(profile.ID, page)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPage(recordResponses(records), page, total))
}

func (h *RecordHandler) ListAll(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	page := pageQuery(c)
	records, total, err := h.recordService.ListAll(p, page)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPage(recordResponses(records), page, total))
}

func recordResponses(records []models.MedicalRecord) []dto.RecordResponse {
	out := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		out = append(out, dto.NewRecordResponse(&records[i]))
	}
	return out
}

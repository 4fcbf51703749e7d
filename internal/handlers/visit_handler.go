package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/services"
)

type VisitHandler struct {
	visitService *services.VisitService
	vetService   *services.VetService
}

func NewVisitHandler(visitService *services.VisitService, vetService *services.VetService) *VisitHandler {
	return &VisitHandler{visitService: visitService, vetService: vetService}
}

func (h *VisitHandler) Create(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	var req dto.VisitCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	visit, err := h.visitService.Create(p, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewVisitResponse(visit))
}

func (h *VisitHandler) Get(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	visit, err := h.visitService.GetByID(p, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVisitResponse(visit))
}

func (h *VisitHandler) UpdateFields(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.VisitUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	visit, err := h.visitService.UpdateFields(p, id, &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVisitResponse(visit))
}

func (h *VisitHandler) UpdateStatus(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.VisitStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	visit, err := h.visitService.UpdateStatus(p, id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVisitResponse(visit))
}

func (h *VisitHandler) Delete(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.visitService.Delete(p, id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "visit deleted"})
}

func (h *VisitHandler) ListByPet(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	petID, err := uuidParam(c, "petId")
	if err != nil {
		return err
	}
	page := pageQuery(c)
	visits, total, err := h.visitService.ListForPet(p, petID, page)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPage(visitResponses(visits), page, total))
}

// ListByVet lists a vet's visits, narrowed to one day when a date
// query parameter is present.
func (h *VisitHandler) ListByVet(c *fiber.Ctx) error {
	vetID, err := uuidParam(c, "vetId")
	if err != nil {
		return err
	}
	page := pageQuery(c)

	var (
		visits []models.Visit
		total  int64
	)
	if date := c.Query("date"); date != "" {
		visits, total, err = h.visitService.ListForVetOnDate(vetID, date, page)
	} else {
		visits, total, err = h.visitService.ListForVet(vetID, page)
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPage(visitResponses(visits), page, total))
}

// ListMine lists the calling vet's own visits.
func (h *VisitHandler) ListMine(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	profile, err := h.vetService.GetOrCreateForUser(p)
	if err != nil {
		return err
	}
	page := pageQuery(c)

	var (
		visits []models.Visit
		total  int64
	)
	if date := c.Query("date"); date != "" {
		visits, total, err = h.visitService.ListForVetOnDate(profile.ID, date, page)
	} else {
		visits, total, err = h.visitService.ListForVet(profile.ID, page)
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPage(visitResponses(visits), page, total))
}

func visitResponses(visits []models.Visit) []dto.VisitResponse {
	out := make([]dto.VisitResponse, 0, len(visits))
	for i := range visits {
		out = append(out, dto.NewVisitResponse(&visits[i]))
	}
	return out
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/services"
)

type PetHandler struct {
	petService *services.PetService
}

func NewPetHandler(petService *services.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// List returns the caller's own pets for owners and the full paged
// catalogue for staff.
func (h *PetHandler) List(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	if p.HasAnyRole(models.RoleAdmin, models.RoleVet) {
		page := pageQuery(c)
		pets, total, err := h.petService.ListAll(p, page)
		if err != nil {
			return err
		}
		return c.JSON(dto.NewPage(petResponses(pets), page, total))
	}

	pets, err := h.petService.ListForOwner(p, p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(petResponses(pets))
}

func (h *PetHandler) Get(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	pet, err := h.petService.GetByID(p, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPetResponse(pet))
}

func (h *PetHandler) Create(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	var req dto.PetCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	pet, err := h.petService.Create(p, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPetResponse(pet))
}

func (h *PetHandler) Update(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.PetUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	pet, err := h.petService.Update(p, id, &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPetResponse(pet))
}

func (h *PetHandler) Delete(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.petService.Delete(p, id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "pet deleted"})
}

func (h *PetHandler) Export(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	items, err := h.petService.Export(p)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *PetHandler) Import(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	var items []dto.PetExport
	if err := c.BodyParser(&items); err != nil {
		return bodyParseError()
	}
	created, err := h.petService.Import(p, items)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(petResponses(created))
}

func petResponses(pets []models.Pet) []dto.PetResponse {
	out := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, dto.NewPetResponse(&pets[i]))
	}
	return out
}

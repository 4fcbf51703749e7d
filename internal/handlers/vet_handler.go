package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/services"
)

// VetHandler serves the public vet directory and the vet self-service
// endpoints for profile, weekly schedule and time-off.
type VetHandler struct {
	vetService   *services.VetService
	availability *services.AvailabilityService
}

func NewVetHandler(vetService *services.VetService, availability *services.AvailabilityService) *VetHandler {
	return &VetHandler{vetService: vetService, availability: availability}
}

func (h *VetHandler) List(c *fiber.Ctx) error {
	profiles, err := h.vetService.ListDirectory()
	if err != nil {
		return err
	}
	return c.JSON(profileResponses(profiles))
}

func (h *VetHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	profile, err := h.vetService.GetProfile(id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVetProfileResponse(profile))
}

func (h *VetHandler) GetSchedule(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	entries, err := h.availability.GetWeeklySchedule(id)
	if err != nil {
		return err
	}
	return c.JSON(scheduleResponses(entries))
}

func (h *VetHandler) GetTimeOff(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	windows, err := h.availability.ListTimeOff(id)
	if err != nil {
		return err
	}
	return c.JSON(timeOffResponses(windows))
}

// --- Self-service (VET role) ---

func (h *VetHandler) GetMyProfile(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	profile, err := h.vetService.GetOrCreateForUser(p)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVetProfileResponse(profile))
}

func (h *VetHandler) UpdateMyProfile(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	var req dto.VetProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	profile, err := h.vetService.UpdateOwnProfile(p, &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewVetProfileResponse(profile))
}

func (h *VetHandler) GetMySchedule(c *fiber.Ctx) error {
	profile, err := h.myProfile(c)
	if err != nil {
		return err
	}
	entries, err := h.availability.GetWeeklySchedule(profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(scheduleResponses(entries))
}

func (h *VetHandler) ReplaceMySchedule(c *fiber.Ctx) error {
	profile, err := h.myProfile(c)
	if err != nil {
		return err
	}
	var reqs []dto.ScheduleEntryRequest
	if err := c.BodyParser(&reqs); err != nil {
		return bodyParseError()
	}
	entries, err := h.availability.ReplaceWeeklySchedule(profile.ID, reqs)
	if err != nil {
		return err
	}
	return c.JSON(scheduleResponses(entries))
}

func (h *VetHandler) ListMyTimeOff(c *fiber.Ctx) error {
	profile, err := h.myProfile(c)
	if err != nil {
		return err
	}
	windows, err := h.availability.ListTimeOff(profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(timeOffResponses(windows))
}

func (h *VetHandler) AddMyTimeOff(c *fiber.Ctx) error {
	profile, err := h.myProfile(c)
	if err != nil {
		return err
	}
	var req dto.TimeOffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	window, err := h.availability.AddTimeOff(profile.ID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTimeOffResponse(window))
}

func (h *VetHandler) DeleteMyTimeOff(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.availability.DeleteTimeOff(p, id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "time-off entry deleted"})
}

func (h *VetHandler) myProfile(c *fiber.Ctx) (*models.VetProfile, error) {
	p, err := principal.FromCtx(c)
	if err != nil {
		return nil, err
	}
	return h.vetService.GetOrCreateForUser(p)
}

func profileResponses(profiles []models.VetProfile) []dto.VetProfileResponse {
	out := make([]dto.VetProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, dto.NewVetProfileResponse(&profiles[i]))
	}
	return out
}

func scheduleResponses(entries []models.VetScheduleEntry) []dto.ScheduleEntryResponse {
	out := make([]dto.ScheduleEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, dto.NewScheduleEntryResponse(&entries[i]))
	}
	return out
}

func timeOffResponses(windows []models.VetTimeOff) []dto.TimeOffResponse {
	out := make([]dto.TimeOffResponse, 0, len(windows))
	for i := range windows {
		out = append(out, dto.NewTimeOffResponse(&windows[i]))
	}
	return out
}

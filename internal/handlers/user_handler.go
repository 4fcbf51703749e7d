package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/services"
)

// UserHandler exposes the admin-only account management endpoints.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page := pageQuery(c)
	users, total, err := h.userService.List(page)
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(dto.NewPage(items, page, total))
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	user, err := h.userService.Create(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	user, err := h.userService.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.userService.Delete(id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "user deleted"})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/repository"
)

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid " + name + " in path")
	}
	return id, nil
}

func pageQuery(c *fiber.Ctx) repository.Page {
	return repository.Page{
		Number: c.QueryInt("page", 1),
		Size:   c.QueryInt("size", 20),
	}.Normalized()
}

func bodyParseError() error {
	return apperrors.Validation("invalid request body")
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/dto"
	"github.com/tunckiral/pocketledger/internal/services"
)

// UserHandler parses request bodies and serializes service results.
// Failures bubble up as typed errors to the central Fiber error handler.
type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.users.Create(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.users.Login(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.users.Update(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.users.Delete(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

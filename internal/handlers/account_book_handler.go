package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/dto"
	"github.com/tunckiral/pocketledger/internal/middleware"
	"github.com/tunckiral/pocketledger/internal/services"
)

type AccountBookHandler struct {
	books *services.AccountBookService
}

func NewAccountBookHandler(books *services.AccountBookService) *AccountBookHandler {
	return &AccountBookHandler{books: books}
}

func (h *AccountBookHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateAccountBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.books.Create(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *AccountBookHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.books.List(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *AccountBookHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAccountBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.books.Update(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *AccountBookHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req dto.DeleteAccountBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.books.Delete(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

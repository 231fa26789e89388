package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/dto"
	"github.com/tunckiral/pocketledger/internal/middleware"
	"github.com/tunckiral/pocketledger/internal/services"
)

type RecordHandler struct {
	records *services.RecordService
}

func NewRecordHandler(records *services.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

func (h *RecordHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.records.Create(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *RecordHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req dto.ListRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.records.List(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *RecordHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.records.Update(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req dto.DeleteRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body")
	}

	resp, err := h.records.Delete(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

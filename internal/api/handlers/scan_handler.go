package handlers

import (
	"reloop-backend/domain"
	"reloop-backend/internal/api/presenters"
	"reloop-backend/pkg/scan"

	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		ScanItem(c *fiber.Ctx) error
		GetScanHistory(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
	}
)

func NewScanHandler(scanService scan.ScanService) ScanHandler {
	return &scanHandler{
		scanService: scanService,
	}
}

func (h *scanHandler) ScanItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanItem, domain.ErrMissingScanImage)
	}

	result, err := h.scanService.ScanItem(c.Context(), domain.ScanItemRequest{Image: file}, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedScanItem, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessScanItem)
}

func (h *scanHandler) GetScanHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	history, err := h.scanService.GetScanHistory(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScanHistory, err)
	}

	return presenters.SuccessResponse(c, history, fiber.StatusOK, domain.MessageSuccessGetScanHistory)
}

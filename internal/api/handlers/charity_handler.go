package handlers

import (
	"reloop-backend/domain"
	"reloop-backend/internal/api/presenters"
	"reloop-backend/pkg/charity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CharityHandler interface {
		GetCharities(c *fiber.Ctx) error
		Donate(c *fiber.Ctx) error
		GetRecentDonations(c *fiber.Ctx) error
		GetDonationStats(c *fiber.Ctx) error
	}

	charityHandler struct {
		charityService charity.CharityService
		validator      *validator.Validate
	}
)

func NewCharityHandler(charityService charity.CharityService, validator *validator.Validate) CharityHandler {
	return &charityHandler{
		charityService: charityService,
		validator:      validator,
	}
}

func (h *charityHandler) GetCharities(c *fiber.Ctx) error {
	role := c.Locals("role").(string)

	charities, err := h.charityService.GetCharities(c.Context(), role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCharities, err)
	}

	return presenters.SuccessResponse(c, charities, fiber.StatusOK, domain.MessageSuccessGetCharities)
}

func (h *charityHandler) Donate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.DonateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if role != domain.RoleDemo {
		if err := h.validator.Struct(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDonate, err)
		}
	} else if req.CharityID == "" || req.Coins < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDonate, domain.ErrCharityNotFound)
	}

	resp, err := h.charityService.Donate(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDonate, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessDonate)
}

func (h *charityHandler) GetRecentDonations(c *fiber.Ctx) error {
	role := c.Locals("role").(string)

	donations, err := h.charityService.GetRecentDonations(c.Context(), role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonationFeed, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonationFeed)
}

func (h *charityHandler) GetDonationStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	stats, err := h.charityService.GetDonationStats(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonationStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDonationStats)
}

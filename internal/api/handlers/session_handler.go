package handlers

import (
	"reloop-backend/domain"
	"reloop-backend/internal/api/presenters"
	"reloop-backend/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SessionHandler interface {
		Me(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
		AddXP(c *fiber.Ctx) error
		AddBadge(c *fiber.Ctx) error
		RemoveBadge(c *fiber.Ctx) error
		GetBadgeCatalog(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	sessionHandler struct {
		sessionService session.SessionService
		validator      *validator.Validate
	}
)

func NewSessionHandler(sessionService session.SessionService, validator *validator.Validate) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
		validator:      validator,
	}
}

func (h *sessionHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	profile, err := h.sessionService.Current(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *sessionHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	patch := new(domain.ProfilePatch)
	if err := c.BodyParser(patch); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	profile, err := h.sessionService.UpdateProfile(c.Context(), userID, role, *patch)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *sessionHandler) AddXP(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.AddXPRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddXP, err)
	}

	profile, err := h.sessionService.AddXP(c.Context(), userID, role, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddXP, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessAddXP)
}

func (h *sessionHandler) AddBadge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.BadgeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBadge, err)
	}

	badges, err := h.sessionService.AddBadge(c.Context(), userID, role, req.BadgeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBadge, err)
	}

	return presenters.SuccessResponse(c, badges, fiber.StatusOK, domain.MessageSuccessAddBadge)
}

func (h *sessionHandler) RemoveBadge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	badgeID := c.Params("badge_id")
	badges, err := h.sessionService.RemoveBadge(c.Context(), userID, role, badgeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveBadge, err)
	}

	return presenters.SuccessResponse(c, badges, fiber.StatusOK, domain.MessageSuccessRemoveBadge)
}

func (h *sessionHandler) GetBadgeCatalog(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.AllBadges, fiber.StatusOK, domain.MessageSuccessGetBadges)
}

func (h *sessionHandler) Logout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	if err := h.sessionService.Logout(c.Context(), userID, role); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "logged out successfully")
}

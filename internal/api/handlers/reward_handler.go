package handlers

import (
	"reloop-backend/domain"
	"reloop-backend/internal/api/presenters"
	"reloop-backend/pkg/reward"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RewardHandler interface {
		GetRewards(c *fiber.Ctx) error
		RedeemReward(c *fiber.Ctx) error
		GetRedemptions(c *fiber.Ctx) error
	}

	rewardHandler struct {
		rewardService reward.RewardService
		validator     *validator.Validate
	}
)

func NewRewardHandler(rewardService reward.RewardService, validator *validator.Validate) RewardHandler {
	return &rewardHandler{
		rewardService: rewardService,
		validator:     validator,
	}
}

func (h *rewardHandler) GetRewards(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	rewards, err := h.rewardService.GetRewards(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRewards, err)
	}

	return presenters.SuccessResponse(c, rewards, fiber.StatusOK, domain.MessageSuccessGetRewards)
}

func (h *rewardHandler) RedeemReward(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.RedeemRewardRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// The demo dataset uses non-UUID identifiers.
	if role != domain.RoleDemo {
		if err := h.validator.Struct(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRedeemReward, err)
		}
	} else if req.RewardID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRedeemReward, domain.ErrRewardNotFound)
	}

	resp, err := h.rewardService.RedeemReward(c.Context(), req.RewardID, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRedeemReward, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRedeemReward)
}

func (h *rewardHandler) GetRedemptions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	redemptions, err := h.rewardService.GetRedemptions(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRedemptions, err)
	}

	return presenters.SuccessResponse(c, redemptions, fiber.StatusOK, domain.MessageSuccessGetRedemptions)
}

package handlers

import (
	"reloop-backend/domain"
	"reloop-backend/internal/api/presenters"
	"reloop-backend/pkg/trade"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TradeHandler interface {
		GetTrades(c *fiber.Ctx) error
		CreateTrade(c *fiber.Ctx) error
		AcceptTrade(c *fiber.Ctx) error
		DeclineTrade(c *fiber.Ctx) error
		CompleteTrade(c *fiber.Ctx) error
	}

	tradeHandler struct {
		tradeService trade.TradeService
		validator    *validator.Validate
	}
)

func NewTradeHandler(tradeService trade.TradeService, validator *validator.Validate) TradeHandler {
	return &tradeHandler{
		tradeService: tradeService,
		validator:    validator,
	}
}

func (h *tradeHandler) GetTrades(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	trades, err := h.tradeService.GetTrades(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrades, err)
	}

	return presenters.SuccessResponse(c, trades, fiber.StatusOK, domain.MessageSuccessGetTrades)
}

func (h *tradeHandler) CreateTrade(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.CreateTradeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if role != domain.RoleDemo {
		if err := h.validator.Struct(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTrade, err)
		}
	}

	t, err := h.tradeService.CreateTrade(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTrade, err)
	}

	return presenters.SuccessResponse(c, t, fiber.StatusCreated, domain.MessageSuccessCreateTrade)
}

func (h *tradeHandler) AcceptTrade(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	t, err := h.tradeService.AcceptTrade(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptTrade, err)
	}

	return presenters.SuccessResponse(c, t, fiber.StatusOK, domain.MessageSuccessAcceptTrade)
}

func (h *tradeHandler) DeclineTrade(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	t, err := h.tradeService.DeclineTrade(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeclineTrade, err)
	}

	return presenters.SuccessResponse(c, t, fiber.StatusOK, domain.MessageSuccessDeclineTrade)
}

func (h *tradeHandler) CompleteTrade(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	t, err := h.tradeService.CompleteTrade(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteTrade, err)
	}

	return presenters.SuccessResponse(c, t, fiber.StatusOK, domain.MessageSuccessCompleteTrade)
}

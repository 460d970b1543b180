package handlers

import (
	"reloop-backend/domain"
	"reloop-backend/internal/api/presenters"
	"reloop-backend/pkg/message"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MessageHandler interface {
		GetConversations(c *fiber.Ctx) error
		StartConversation(c *fiber.Ctx) error
		GetMessages(c *fiber.Ctx) error
		SendMessage(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
	}

	messageHandler struct {
		messageService message.MessageService
		validator      *validator.Validate
	}
)

func NewMessageHandler(messageService message.MessageService, validator *validator.Validate) MessageHandler {
	return &messageHandler{
		messageService: messageService,
		validator:      validator,
	}
}

func (h *messageHandler) GetConversations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	conversations, err := h.messageService.GetConversations(c.Context(), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetConversations, err)
	}

	return presenters.SuccessResponse(c, conversations, fiber.StatusOK, domain.MessageSuccessGetConversations)
}

func (h *messageHandler) StartConversation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.StartConversationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetConversations, err)
	}

	conversation, err := h.messageService.StartConversation(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetConversations, err)
	}

	return presenters.SuccessResponse(c, conversation, fiber.StatusCreated, domain.MessageSuccessGetConversations)
}

func (h *messageHandler) GetMessages(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	messages, err := h.messageService.GetMessages(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMessages, err)
	}

	return presenters.SuccessResponse(c, messages, fiber.StatusOK, domain.MessageSuccessGetMessages)
}

func (h *messageHandler) SendMessage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.SendChatRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.ConversationID = c.Params("id")

	if role != domain.RoleDemo {
		if err := h.validator.Struct(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
		}
	} else if req.Text == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, nil)
	}

	msg, err := h.messageService.SendMessage(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMessage, err)
	}

	return presenters.SuccessResponse(c, msg, fiber.StatusCreated, domain.MessageSuccessSendMessage)
}

func (h *messageHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	if err := h.messageService.MarkAsRead(c.Context(), c.Params("id"), userID, role); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkRead)
}

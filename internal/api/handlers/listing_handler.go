package handlers

import (
	"reloop-backend/domain"
	"reloop-backend/internal/api/presenters"
	"reloop-backend/pkg/listing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ListingHandler interface {
		GetListings(c *fiber.Ctx) error
		GetListingDetails(c *fiber.Ctx) error
		CreateListing(c *fiber.Ctx) error
		UpdateListing(c *fiber.Ctx) error
		DeleteListing(c *fiber.Ctx) error
	}

	listingHandler struct {
		listingService listing.ListingService
		validator      *validator.Validate
	}
)

func NewListingHandler(listingService listing.ListingService, validator *validator.Validate) ListingHandler {
	return &listingHandler{
		listingService: listingService,
		validator:      validator,
	}
}

func (h *listingHandler) GetListings(c *fiber.Ctx) error {
	req := new(domain.GetListingsRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetListings, err)
	}

	listings, err := h.listingService.GetListings(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetListings, err)
	}

	return presenters.SuccessResponse(c, listings, fiber.StatusOK, domain.MessageSuccessGetListings)
}

func (h *listingHandler) GetListingDetails(c *fiber.Ctx) error {
	l, err := h.listingService.GetListingDetails(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetListingDetails, err)
	}

	return presenters.SuccessResponse(c, l, fiber.StatusOK, domain.MessageSuccessGetListingDetails)
}

func (h *listingHandler) CreateListing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateListingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateListing, err)
	}

	l, err := h.listingService.CreateListing(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateListing, err)
	}

	return presenters.SuccessResponse(c, l, fiber.StatusCreated, domain.MessageSuccessCreateListing)
}

func (h *listingHandler) UpdateListing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdateListingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListing, err)
	}

	l, err := h.listingService.UpdateListing(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListing, err)
	}

	return presenters.SuccessResponse(c, l, fiber.StatusOK, domain.MessageSuccessUpdateListing)
}

func (h *listingHandler) DeleteListing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.listingService.DeleteListing(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteListing, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteListing)
}

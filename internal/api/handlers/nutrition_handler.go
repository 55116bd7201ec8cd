package handlers

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/internal/api/presenters"
	"FitnessPro-Backend/pkg/nutrition"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	NutritionHandler interface {
		GetNutritionLogs(c *fiber.Ctx) error
		CreateNutritionLog(c *fiber.Ctx) error
		UpdateNutritionLog(c *fiber.Ctx) error
		DeleteNutritionLog(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
		validator        *validator.Validate
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService, validator *validator.Validate) NutritionHandler {
	return &nutritionHandler{
		nutritionService: nutritionService,
		validator:        validator,
	}
}

func (h *nutritionHandler) GetNutritionLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.nutritionService.GetLogs(
		c.Context(),
		userID,
		c.Query("date"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		return nutritionError(c, domain.MessageFailedGetNutritionLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNutritionLogs)
}

func (h *nutritionHandler) CreateNutritionLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateNutritionLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateNutritionLog, err)
	}

	res, err := h.nutritionService.CreateLog(c.Context(), *req, userID)
	if err != nil {
		return nutritionError(c, domain.MessageFailedCreateNutritionLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateNutritionLog)
}

func (h *nutritionHandler) UpdateNutritionLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	logID := c.Query("id")
	if logID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNutritionLog, domain.ErrNutritionLogIDMissing)
	}

	req := new(domain.UpdateNutritionLogRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNutritionLog, err)
	}

	res, err := h.nutritionService.UpdateLog(c.Context(), logID, *req, userID)
	if err != nil {
		return nutritionError(c, domain.MessageFailedUpdateNutritionLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateNutritionLog)
}

func (h *nutritionHandler) DeleteNutritionLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	logID := c.Query("id")
	if logID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteNutritionLog, domain.ErrNutritionLogIDMissing)
	}

	if err := h.nutritionService.DeleteLog(c.Context(), logID, userID); err != nil {
		return nutritionError(c, domain.MessageFailedDeleteNutritionLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNutritionLog)
}

// nutritionError maps service errors onto status codes. Unexpected errors
// are logged and answered with a generic message only.
func nutritionError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNutritionLogNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrIncompleteDateRange),
		errors.Is(err, domain.ErrNutritionLogIDMissing),
		errors.Is(err, domain.ErrParseUUID):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		log.Errorf("%s: %v", message, err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, nil)
	}
}

package handlers

import (
	"FitnessPro-Backend/domain"
	"FitnessPro-Backend/internal/api/presenters"
	"FitnessPro-Backend/pkg/plan"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlanHandler interface {
		GetPlans(c *fiber.Ctx) error
		GetPlanDetails(c *fiber.Ctx) error
		CreatePlan(c *fiber.Ctx) error
		UploadPlanImage(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
		validator   *validator.Validate
	}
)

func NewPlanHandler(planService plan.PlanService, validator *validator.Validate) PlanHandler {
	return &planHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *planHandler) GetPlans(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "12"))
	if err != nil || limit < 1 {
		limit = 12
	}

	query := domain.PlanQuery{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}

	// "All" from the browse UI means no filter.
	if query.Category == "All" {
		query.Category = ""
	}
	if query.Difficulty == "All" {
		query.Difficulty = ""
	}

	if err := h.validator.Struct(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlans, err)
	}

	plans, count, err := h.planService.GetPlans(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlans, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"plans": plans,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
			"has_next":    int64(page*limit) < count,
			"has_prev":    page > 1,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *planHandler) GetPlanDetails(c *fiber.Ctx) error {
	planID := c.Params("id")

	res, err := h.planService.GetPlanByID(c.Context(), planID)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPlanDetails, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlanDetails, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlanDetails)
}

func (h *planHandler) CreatePlan(c *fiber.Ctx) error {
	req := new(domain.CreatePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlan, err)
	}

	res, err := h.planService.CreatePlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePlan)
}

func (h *planHandler) UploadPlanImage(c *fiber.Ctx) error {
	req := new(domain.UploadPlanImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPlanImage, err)
	}

	if err := h.planService.UploadPlanImage(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadPlanImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPlanImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUploadPlanImage)
}

package controller

import (
	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	ListForUser(ctx *fiber.Ctx) error
}

type progressController struct {
	progressService service.IProgressService
}

func NewProgressController(progressService service.IProgressService) IProgressController {
	return &progressController{
		progressService: progressService,
	}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/progress/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.ListForUser)
	h.Post(":bookId", c.Submit)
}

func (c *progressController) Submit(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	bookId, err := uuid.Parse(ctx.Params("bookId"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, constant.ErrCodeValidation, "Invalid book id", err)
	}

	var req dto.SubmitProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.CorrectCount > req.TotalCount {
		return serverutils.NewAppError(fiber.StatusBadRequest, constant.ErrCodeValidation, "correctCount cannot exceed totalCount", nil)
	}

	res, err := c.progressService.Submit(ctx.Context(), userId, bookId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit progress", res))
}

func (c *progressController) ListForUser(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.progressService.ListForUser(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list progress", res))
}

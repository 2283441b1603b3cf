package controller

import (
	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	GetQuestions(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	GenerateQuestions(ctx *fiber.Ctx) error
}

type bookController struct {
	bookService       service.IBookService
	generationService service.IGenerationService
}

func NewBookController(bookService service.IBookService, generationService service.IGenerationService) IBookController {
	return &bookController{
		bookService:       bookService,
		generationService: generationService,
	}
}

func (c *bookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/books/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":bookId/questions", c.GetQuestions)
	h.Post(":bookId/generate-questions", c.GenerateQuestions)
}

func (c *bookController) List(ctx *fiber.Ctx) error {
	res, err := c.bookService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list books", res))
}

func (c *bookController) GetQuestions(ctx *fiber.Ctx) error {
	bookId, err := uuid.Parse(ctx.Params("bookId"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, constant.ErrCodeValidation, "Invalid book id", err)
	}

	res, err := c.bookService.GetQuestions(ctx.Context(), bookId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list questions", res))
}

func (c *bookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bookService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create book", res))
}

// GenerateQuestions runs the pipeline synchronously and returns the full
// run summary. The background path via book creation uses the same service.
func (c *bookController) GenerateQuestions(ctx *fiber.Ctx) error {
	bookId, err := uuid.Parse(ctx.Params("bookId"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, constant.ErrCodeValidation, "Invalid book id", err)
	}

	res, err := c.generationService.GenerateForBook(ctx.Context(), bookId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate questions", res))
}

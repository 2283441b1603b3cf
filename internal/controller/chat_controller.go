package controller

import (
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateConversation(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	ClearConversation(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("conversation", c.CreateConversation)
	h.Get("conversation", c.GetConversation)
	h.Delete("conversation", c.ClearConversation)
	h.Post("", c.Send)
	h.Post("complete", c.Complete)
	h.Get(":conversationId/:chatId/status", c.Status)
	h.Get(":conversationId/:chatId/messages", c.Messages)
}

func (c *chatController) CreateConversation(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.chatService.CreateConversation(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create conversation", res))
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.chatService.GetConversation(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversation", res))
}

func (c *chatController) ClearConversation(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	if err := c.chatService.ClearConversation(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear conversation", nil))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Send(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) Complete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.CompleteChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Complete(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete chat", res))
}

func (c *chatController) Status(ctx *fiber.Ctx) error {
	res, err := c.chatService.Status(ctx.Context(), ctx.Params("conversationId"), ctx.Params("chatId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat status", res))
}

func (c *chatController) Messages(ctx *fiber.Ctx) error {
	res, err := c.chatService.Messages(ctx.Context(), ctx.Params("conversationId"), ctx.Params("chatId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat messages", res))
}

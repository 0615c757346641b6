package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/service"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
	jwtMiddleware    fiber.Handler
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService, jwtMiddleware fiber.Handler) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
		jwtMiddleware:    jwtMiddleware,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge")
	h.Use(c.jwtMiddleware)
	h.Get("", c.Index)
	h.Post("", serverutils.RequireRoles(string(entity.UserRoleManager), string(entity.UserRoleAdmin)), c.Create)
	h.Delete(":id", serverutils.RequireRoles(string(entity.UserRoleAdmin)), c.Delete)
}

func (c *knowledgeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	author, _ := ctx.Locals("name").(string)
	res, err := c.knowledgeService.Create(ctx.Context(), &req, author)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Knowledge item created", res))
}

func (c *knowledgeController) Index(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *knowledgeController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.knowledgeService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Knowledge item deleted", nil))
}

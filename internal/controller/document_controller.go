package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/service"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
	jwtMiddleware   fiber.Handler
}

func NewDocumentController(documentService service.IDocumentService, jwtMiddleware fiber.Handler) IDocumentController {
	return &documentController{
		documentService: documentService,
		jwtMiddleware:   jwtMiddleware,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/documents")
	h.Use(c.jwtMiddleware)
	h.Get("", c.Index)

	h.Post("", serverutils.RequireRoles(string(entity.UserRoleManager), string(entity.UserRoleAdmin)), c.Upload)
	h.Delete(":id", serverutils.RequireRoles(string(entity.UserRoleAdmin)), c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	file, err := fileUploadFromForm(ctx, "file")
	if err != nil {
		return err
	}

	res, err := c.documentService.Upload(ctx.Context(), &req, file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Document uploaded", res))
}

func (c *documentController) Index(ctx *fiber.Ctx) error {
	res, err := c.documentService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.documentService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document deleted", nil))
}

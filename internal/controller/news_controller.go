package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/service"
)

type INewsController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type newsController struct {
	newsService   service.INewsService
	jwtMiddleware fiber.Handler
}

func NewNewsController(newsService service.INewsService, jwtMiddleware fiber.Handler) INewsController {
	return &newsController{
		newsService:   newsService,
		jwtMiddleware: jwtMiddleware,
	}
}

func (c *newsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/news")
	h.Use(c.jwtMiddleware)
	h.Get("", c.Index)
	h.Get(":id", c.Show)

	h.Post("", serverutils.RequireRoles(string(entity.UserRoleManager), string(entity.UserRoleAdmin)), c.Create)
	h.Delete(":id", serverutils.RequireRoles(string(entity.UserRoleAdmin)), c.Delete)
}

// fileUploadFromForm returns nil when the field is absent, letting optional
// attachments stay optional.
func fileUploadFromForm(ctx *fiber.Ctx, field string) (*service.FileUpload, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	return &service.FileUpload{
		Reader:      file,
		Size:        fileHeader.Size,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

func (c *newsController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	image, err := fileUploadFromForm(ctx, "image")
	if err != nil {
		return err
	}

	author, _ := ctx.Locals("name").(string)
	res, err := c.newsService.Create(ctx.Context(), &req, author, image)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("News published", res))
}

func (c *newsController) Index(ctx *fiber.Ctx) error {
	res, err := c.newsService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *newsController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.newsService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *newsController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.newsService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("News deleted", nil))
}

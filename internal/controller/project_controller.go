package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/service"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
	Completed(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type projectController struct {
	projectService service.IProjectService
	jwtMiddleware  fiber.Handler
}

func NewProjectController(projectService service.IProjectService, jwtMiddleware fiber.Handler) IProjectController {
	return &projectController{
		projectService: projectService,
		jwtMiddleware:  jwtMiddleware,
	}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects")
	h.Use(c.jwtMiddleware)
	h.Get("/current", c.Current)
	h.Get("/completed", c.Completed)

	managerOnly := serverutils.RequireRoles(string(entity.UserRoleManager), string(entity.UserRoleAdmin))
	h.Post("", managerOnly, c.Create)
	h.Put(":id/complete", managerOnly, c.Complete)
	h.Delete(":id", serverutils.RequireRoles(string(entity.UserRoleAdmin)), c.Delete)
}

func (c *projectController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProjectRequest
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

	res, err := c.projectService.Create(ctx.Context(), &req, image)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Project created", res))
}

func (c *projectController) Current(ctx *fiber.Ctx) error {
	completed := false
	res, err := c.projectService.List(ctx.Context(), &completed)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *projectController) Completed(ctx *fiber.Ctx) error {
	completed := true
	res, err := c.projectService.List(ctx.Context(), &completed)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *projectController) Complete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.projectService.Complete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Project completed", res))
}

func (c *projectController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err := c.projectService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Project deleted", nil))
}

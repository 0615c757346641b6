package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/service"
)

type IRequestController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type requestController struct {
	requestService service.IRequestService
	jwtMiddleware  fiber.Handler
}

func NewRequestController(requestService service.IRequestService, jwtMiddleware fiber.Handler) IRequestController {
	return &requestController{
		requestService: requestService,
		jwtMiddleware:  jwtMiddleware,
	}
}

func (c *requestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/requests")
	h.Use(c.jwtMiddleware)
	h.Post("", c.Create)
	h.Get("/me", c.Mine)

	managerOnly := serverutils.RequireRoles(string(entity.UserRoleManager), string(entity.UserRoleAdmin))
	h.Get("/all", managerOnly, c.Index)
	h.Put(":id/status", managerOnly, c.UpdateStatus)
}

func (c *requestController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	employeeCode, _ := ctx.Locals("employee_code").(string)
	name, _ := ctx.Locals("name").(string)
	res, err := c.requestService.Create(ctx.Context(), &req, employeeCode, name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Request submitted", res))
}

func (c *requestController) Mine(ctx *fiber.Ctx) error {
	employeeCode, _ := ctx.Locals("employee_code").(string)
	res, err := c.requestService.ListMine(ctx.Context(), employeeCode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *requestController) Index(ctx *fiber.Ctx) error {
	res, err := c.requestService.ListAll(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *requestController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.UpdateRequestStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.requestService.UpdateStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Request updated", res))
}

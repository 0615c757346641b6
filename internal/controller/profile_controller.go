package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/service"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
	jwtMiddleware  fiber.Handler
}

func NewProfileController(profileService service.IProfileService, jwtMiddleware fiber.Handler) IProfileController {
	return &profileController{
		profileService: profileService,
		jwtMiddleware:  jwtMiddleware,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile")
	h.Use(c.jwtMiddleware)
	h.Get("/me", c.Show)
	h.Put("/me", c.Update)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.profileService.Get(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *profileController) Update(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.profileService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return userId, nil
}

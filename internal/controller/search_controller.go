package controller

import (
	"github.com/gofiber/fiber/v2"

	"corp-portal-be/internal/pkg/serverutils"
	"corp-portal-be/internal/service"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	SearchNews(ctx *fiber.Ctx) error
	SearchDocuments(ctx *fiber.Ctx) error
	SearchKnowledge(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
	jwtMiddleware fiber.Handler
}

func NewSearchController(searchService service.ISearchService, jwtMiddleware fiber.Handler) ISearchController {
	return &searchController{
		searchService: searchService,
		jwtMiddleware: jwtMiddleware,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search")
	h.Use(c.jwtMiddleware)
	h.Get("", c.Search)
	h.Get("/news", c.SearchNews)
	h.Get("/documents", c.SearchDocuments)
	h.Get("/knowledge", c.SearchKnowledge)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	res, err := c.searchService.Search(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *searchController) SearchNews(ctx *fiber.Ctx) error {
	res, err := c.searchService.SearchNews(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *searchController) SearchDocuments(ctx *fiber.Ctx) error {
	res, err := c.searchService.SearchDocuments(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *searchController) SearchKnowledge(ctx *fiber.Ctx) error {
	res, err := c.searchService.SearchKnowledge(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

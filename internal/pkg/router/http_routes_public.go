package router

import (
	"github.com/ManuelReschke/FoxBlog/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// API routes live in ApiRouter (internal/pkg/router/api_router.go)

	// Syntax highlighting for rendered code blocks
	app.Get("/assets/highlight.css", handleHighlightCSS)
}

func handleHighlightCSS(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(utils.HighlightCSS())
}

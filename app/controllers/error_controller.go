package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/ManuelReschke/FoxBlog/internal/pkg/blog"
	"github.com/ManuelReschke/FoxBlog/views"
)

// HandleError is the application's fiber.ErrorHandler. API requests get a
// JSON body, everything else the error page.
func HandleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong"

	var fe *fiber.Error
	switch {
	case errors.Is(err, blog.ErrNotFound):
		code = fiber.StatusNotFound
		message = "Not Found"
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[Error] %s %s: %v", c.Method(), c.Path(), err)
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": message})
	}

	layout := newLayout(c, " | Error", nil)
	layout.IsError = true

	home := views.HomeCtx(layout, views.ErrorContent(code, message))
	handler := adaptor.HTTPHandler(templ.Handler(home, templ.WithStatus(code)))
	if renderErr := handler(c); renderErr != nil {
		log.Printf("[Error] rendering error page: %v", renderErr)
		return c.Status(code).SendString(message)
	}

	return nil
}

package router

import (
	"strings"
	"time"

	"github.com/ManuelReschke/FoxBlog/app/controllers"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/env"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	// Every page renders the layout, whose logout form needs a token
	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get("/", controllers.HandleIndex)
	group.Get("/explore/", controllers.HandleExplore)
	group.Get("/about/", controllers.HandleAbout)
	group.Get("/blog/:id/", controllers.HandleBlogDetail)

	// Auth
	group.Get("/login", controllers.HandleAuthLogin)
	group.Post("/login", controllers.HandleAuthLogin)
	group.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	h.registerAdminRoutes(group)
}

package router

import (
	"github.com/ManuelReschke/FoxBlog/app/controllers"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/middleware"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize controllers with repositories
	controllers.InitializeBlogController()
	controllers.InitializeAuthController()
	controllers.InitializeAdminPostController()

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

package router

import (
	"github.com/ManuelReschke/FoxBlog/app/controllers"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes mounts the post management below the csrf protected group
func (h HttpRouter) registerAdminRoutes(group fiber.Router) {
	adminGroup := group.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin/posts")
	})

	// Post management
	adminGroup.Get("/posts", controllers.HandleAdminPosts)
	adminGroup.Get("/posts/create", controllers.HandleAdminPostCreate)
	adminGroup.Post("/posts/store", controllers.HandleAdminPostStore)
	adminGroup.Get("/posts/edit/:id", controllers.HandleAdminPostEdit)
	adminGroup.Post("/posts/update/:id", controllers.HandleAdminPostUpdate)
	adminGroup.Post("/posts/delete/:id", controllers.HandleAdminPostDelete)
	adminGroup.Post("/posts/toggle/:id", controllers.HandleAdminPostToggle)
}

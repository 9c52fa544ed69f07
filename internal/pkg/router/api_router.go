package router

import (
	"github.com/ManuelReschke/FoxBlog/app/repository"
	apiv1 "github.com/ManuelReschke/FoxBlog/internal/api/v1"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/blog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", cors.New(cors.Config{
		AllowMethods: fiber.MethodGet,
	}))

	service := blog.NewService(repository.GetGlobalFactory().GetPostRepository())
	apiv1.RegisterHandlers(api, apiv1.NewAPIServer(service))
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/FoxBlog/app/repository"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/blog"
)

// Global controller instances
var (
	blogController *BlogController
	authController *AuthController
)

// InitializeBlogController initializes the global blog controller with repositories
func InitializeBlogController() {
	factory := repository.GetGlobalFactory()
	blogController = NewBlogController(blog.NewService(factory.GetPostRepository()))
}

// GetBlogController returns the global blog controller instance
func GetBlogController() *BlogController {
	if blogController == nil {
		InitializeBlogController()
	}
	return blogController
}

// InitializeAuthController initializes the global auth controller with repositories
func InitializeAuthController() {
	authController = NewAuthController(repository.GetGlobalFactory().GetUserRepository())
}

// GetAuthController returns the global auth controller instance
func GetAuthController() *AuthController {
	if authController == nil {
		InitializeAuthController()
	}
	return authController
}

// Adapter functions to maintain compatibility with existing router

// HandleIndex - Adapter for the start page
func HandleIndex(c *fiber.Ctx) error {
	return GetBlogController().HandleIndex(c)
}

// HandleExplore - Adapter for the paginated post list
func HandleExplore(c *fiber.Ctx) error {
	return GetBlogController().HandleExplore(c)
}

// HandleAbout - Adapter for the about page
func HandleAbout(c *fiber.Ctx) error {
	return GetBlogController().HandleAbout(c)
}

// HandleBlogDetail - Adapter for a single post
func HandleBlogDetail(c *fiber.Ctx) error {
	return GetBlogController().HandleBlogDetail(c)
}

// HandleAuthLogin - Adapter for login
func HandleAuthLogin(c *fiber.Ctx) error {
	return GetAuthController().HandleAuthLogin(c)
}

// HandleAuthLogout - Adapter for logout
func HandleAuthLogout(c *fiber.Ctx) error {
	return GetAuthController().HandleAuthLogout(c)
}

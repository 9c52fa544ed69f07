package controllers

import (
	"github.com/ManuelReschke/FoxBlog/app/repository"
	"github.com/gofiber/fiber/v2"
)

// Global admin controller instance
var adminPostController *AdminPostController

// InitializeAdminPostController initializes the global admin post controller with repositories
func InitializeAdminPostController() {
	factory := repository.GetGlobalFactory()
	adminPostController = NewAdminPostController(factory.GetPostRepository(), factory.GetUserRepository())
}

// GetAdminPostController returns the global admin post controller instance
func GetAdminPostController() *AdminPostController {
	if adminPostController == nil {
		InitializeAdminPostController()
	}
	return adminPostController
}

// Post Management - Repository Pattern Functions using dedicated AdminPostController

// HandleAdminPosts - Adapter for post management
func HandleAdminPosts(c *fiber.Ctx) error {
	return GetAdminPostController().HandleAdminPosts(c)
}

// HandleAdminPostCreate - Adapter for post create form
func HandleAdminPostCreate(c *fiber.Ctx) error {
	return GetAdminPostController().HandleAdminPostCreate(c)
}

// HandleAdminPostStore - Adapter for post creation
func HandleAdminPostStore(c *fiber.Ctx) error {
	return GetAdminPostController().HandleAdminPostStore(c)
}

// HandleAdminPostEdit - Adapter for post edit form
func HandleAdminPostEdit(c *fiber.Ctx) error {
	return GetAdminPostController().HandleAdminPostEdit(c)
}

// HandleAdminPostUpdate - Adapter for post update
func HandleAdminPostUpdate(c *fiber.Ctx) error {
	return GetAdminPostController().HandleAdminPostUpdate(c)
}

// HandleAdminPostDelete - Adapter for post deletion
func HandleAdminPostDelete(c *fiber.Ctx) error {
	return GetAdminPostController().HandleAdminPostDelete(c)
}

// HandleAdminPostToggle - Adapter for the publish toggle
func HandleAdminPostToggle(c *fiber.Ctx) error {
	return GetAdminPostController().HandleAdminPostToggle(c)
}

package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"github.com/ManuelReschke/FoxBlog/app/repository"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/usercontext"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/viewmodel"
)

// ============================================================================
// ADMIN POST CONTROLLER - Repository Pattern
// ============================================================================

const adminPostsPath = "/admin/posts"

// AdminPostController handles admin post-related HTTP requests using repository pattern
type AdminPostController struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewAdminPostController creates a new admin post controller with repositories
func NewAdminPostController(postRepo repository.PostRepository, userRepo repository.UserRepository) *AdminPostController {
	return &AdminPostController{
		postRepo: postRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// handleError is a helper method for consistent error handling
func (apc *AdminPostController) handleError(c *fiber.Ctx, message string, err error) error {
	log.Printf("[AdminPost] %s: %v", message, err)
	fm := fiber.Map{
		"type":    "error",
		"message": message + ": " + err.Error(),
	}
	return flash.WithError(c, fm).Redirect(adminPostsPath)
}

func (apc *AdminPostController) success(c *fiber.Ctx, message string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(adminPostsPath)
}

// createdSince maps a created filter option to the start of its range:
// today, the past 7 days, this month or this year.
func createdSince(option string, now time.Time) (time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch option {
	case "today":
		return today, true
	case "7d":
		return today.AddDate(0, 0, -7), true
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case "year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	}

	return time.Time{}, false
}

// parseFilter reads the list filters from the query string. Unknown values
// are ignored rather than rejected.
func parseFilter(c *fiber.Ctx, now time.Time) (repository.PostFilter, viewmodel.AdminPostFilter) {
	var filter repository.PostFilter
	echo := viewmodel.AdminPostFilter{
		Query: c.Query("q"),
	}
	filter.Query = echo.Query

	switch c.Query("published") {
	case "1":
		published := true
		filter.Published = &published
		echo.Published = "1"
	case "0":
		published := false
		filter.Published = &published
		echo.Published = "0"
	}

	if author, err := strconv.ParseUint(c.Query("author"), 10, 32); err == nil {
		filter.AuthorID = uint(author)
		echo.AuthorID = uint(author)
	}

	if since, ok := createdSince(c.Query("created"), now); ok {
		filter.CreatedAfter = since
		echo.Created = c.Query("created")
	}

	return filter, echo
}

// HandleAdminPosts renders the post management page, published and unpublished
func (apc *AdminPostController) HandleAdminPosts(c *fiber.Ctx) error {
	filter, echo := parseFilter(c, apc.now())

	posts, err := apc.postRepo.GetAll(filter)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	authors, err := apc.userRepo.List()
	if err != nil {
		return fmt.Errorf("list authors: %w", err)
	}

	total, err := apc.postRepo.Count()
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}

	return renderTemplate(c, "admin/posts", " | Posts", fiber.Map{
		"List": viewmodel.AdminPostList{
			Posts:   posts,
			Authors: authors,
			Filter:  echo,
			Total:   total,
		},
	})
}

// HandleAdminPostCreate renders the post creation form
func (apc *AdminPostController) HandleAdminPostCreate(c *fiber.Ctx) error {
	return renderTemplate(c, "admin/post_form", " | New post", fiber.Map{
		"Form": viewmodel.AdminPostForm{
			Post:   *models.NewPost("", ""),
			Action: adminPostsPath + "/store",
			IsNew:  true,
		},
	})
}

// HandleAdminPostStore handles post creation
func (apc *AdminPostController) HandleAdminPostStore(c *fiber.Ctx) error {
	post := models.NewPost(c.FormValue("title"), c.FormValue("body"))
	post.IsPublished = c.FormValue("is_published") == "1"

	return apc.savePost(c, post, adminPostsPath+"/create")
}

// HandleAdminPostEdit renders the post edit form
func (apc *AdminPostController) HandleAdminPostEdit(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(adminPostsPath)
	}

	post, err := apc.postRepo.GetByID(id)
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Post not found",
		}
		return flash.WithError(c, fm).Redirect(adminPostsPath)
	}

	return renderTemplate(c, "admin/post_form", " | Edit post", fiber.Map{
		"Form": viewmodel.AdminPostForm{
			Post:   *post,
			Action: fmt.Sprintf("%s/update/%d", adminPostsPath, post.ID),
			IsNew:  false,
		},
	})
}

// HandleAdminPostUpdate handles post update. The author of an existing post
// is never changed.
func (apc *AdminPostController) HandleAdminPostUpdate(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(adminPostsPath)
	}

	post, err := apc.postRepo.GetByID(id)
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Post not found",
		}
		return flash.WithError(c, fm).Redirect(adminPostsPath)
	}

	post.Title = c.FormValue("title")
	post.Body = c.FormValue("body")
	post.IsPublished = c.FormValue("is_published") == "1"

	return apc.savePost(c, post, fmt.Sprintf("%s/edit/%d", adminPostsPath, id))
}

// savePost persists a post coming from the admin forms. New posts are always
// attributed to the acting admin, whatever the form submitted.
func (apc *AdminPostController) savePost(c *fiber.Ctx, post *models.Post, formPath string) error {
	isNew := post.IsNew()
	if isNew {
		post.UserID = usercontext.GetUserID(c)
	}

	if err := post.Validate(); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Title and body are required, the title may have at most 200 characters",
		}
		return flash.WithError(c, fm).Redirect(formPath)
	}

	if isNew {
		if err := apc.postRepo.Create(post); err != nil {
			return apc.handleError(c, "Failed to create post", err)
		}
		return apc.success(c, "Post created")
	}

	if err := apc.postRepo.Update(post); err != nil {
		return apc.handleError(c, "Failed to update post", err)
	}
	return apc.success(c, "Post updated")
}

// HandleAdminPostDelete handles post deletion
func (apc *AdminPostController) HandleAdminPostDelete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(adminPostsPath)
	}

	if _, err := apc.postRepo.GetByID(id); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Post not found",
		}
		return flash.WithError(c, fm).Redirect(adminPostsPath)
	}

	if err := apc.postRepo.Delete(id); err != nil {
		return apc.handleError(c, "Failed to delete post", err)
	}

	return apc.success(c, "Post deleted")
}

// HandleAdminPostToggle flips the publication flag from the list view
func (apc *AdminPostController) HandleAdminPostToggle(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(adminPostsPath)
	}

	post, err := apc.postRepo.GetByID(id)
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Post not found",
		}
		return flash.WithError(c, fm).Redirect(adminPostsPath)
	}

	if err := apc.postRepo.SetPublished(id, !post.IsPublished); err != nil {
		return apc.handleError(c, "Failed to change publication state", err)
	}

	if post.IsPublished {
		return apc.success(c, fmt.Sprintf("%q is no longer published", post.Title))
	}
	return apc.success(c, fmt.Sprintf("%q is published", post.Title))
}

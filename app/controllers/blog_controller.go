package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/FoxBlog/internal/pkg/blog"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/pagination"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/utils"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/viewmodel"
	"github.com/ManuelReschke/FoxBlog/views"
)

// BlogController serves the visitor facing pages
type BlogController struct {
	service *blog.Service
}

// NewBlogController creates a new blog controller on top of the query service
func NewBlogController(service *blog.Service) *BlogController {
	return &BlogController{
		service: service,
	}
}

// HandleIndex renders the most recent published posts
func (bc *BlogController) HandleIndex(c *fiber.Ctx) error {
	posts, err := bc.service.ListRecent(blog.RecentLimit)
	if err != nil {
		return err
	}

	return renderPage(c, "", &viewmodel.OpenGraph{
		Title:       "FoxBlog",
		Description: "The latest posts on FoxBlog",
		Image:       defaultOGImage,
		URL:         "/",
	}, views.IndexContent(posts))
}

// HandleExplore renders one page of published posts. Bad page numbers never fail.
func (bc *BlogController) HandleExplore(c *fiber.Ctx) error {
	page, err := bc.service.ListPaged(blog.ExplorePageSize, pagination.ParseNumber(c.Query("page")))
	if err != nil {
		return err
	}

	return renderPage(c, " | Explore", &viewmodel.OpenGraph{
		Title:       "Explore - FoxBlog",
		Description: "All posts on FoxBlog",
		Image:       defaultOGImage,
		URL:         fmt.Sprintf("/explore/?page=%d", page.Number),
	}, views.ExploreContent(page))
}

// HandleAbout renders the static about page
func (bc *BlogController) HandleAbout(c *fiber.Ctx) error {
	return renderPage(c, " | About", &viewmodel.OpenGraph{
		Title:       "About - FoxBlog",
		Description: "What FoxBlog is about",
		Image:       defaultOGImage,
		URL:         "/about/",
	}, views.AboutContent())
}

// HandleBlogDetail renders a single published post
func (bc *BlogController) HandleBlogDetail(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fiber.ErrNotFound
	}

	post, err := bc.service.GetByID(id)
	if err != nil {
		return err
	}

	return renderPage(c, " | "+post.Title, &viewmodel.OpenGraph{
		Title:       post.Title + " - FoxBlog",
		Description: utils.PreviewText(post.Body, utils.DefaultPreviewWords),
		Image:       utils.GetGravatarURL(post.Author.Email, 256),
		URL:         fmt.Sprintf("/blog/%d/", post.ID),
	}, views.BlogDetailContent(*post))
}

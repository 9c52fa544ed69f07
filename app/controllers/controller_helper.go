package controllers

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/FoxBlog/internal/pkg/usercontext"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/viewmodel"
	"github.com/ManuelReschke/FoxBlog/views"
)

// Session and Locals keys, kept here so controllers read like the middlewares
const (
	AUTH_KEY       = usercontext.AuthKey
	USER_ID        = usercontext.KeyUserID
	USER_NAME      = usercontext.KeyUsername
	USER_IS_ADMIN  = usercontext.KeyIsAdmin
	FROM_PROTECTED = usercontext.KeyFromProtected
)

const defaultOGImage = "/img/foxblog-logo.svg"

func isLoggedIn(c *fiber.Ctx) bool {
	var fromProtected bool
	if protectedValue := c.Locals(FROM_PROTECTED); protectedValue != nil {
		fromProtected, _ = protectedValue.(bool)
	}

	return fromProtected
}

// csrfToken returns the token the csrf middleware stored for this request
func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

// newLayout collects what the main layout needs. Reading the flash consumes it.
func newLayout(c *fiber.Ctx, page string, og *viewmodel.OpenGraph) viewmodel.Layout {
	userCtx := usercontext.GetUserContext(c)

	return viewmodel.Layout{
		Page:          page,
		FromProtected: isLoggedIn(c),
		Msg:           flash.Get(c),
		Username:      userCtx.Username,
		IsAdmin:       userCtx.IsAdmin,
		CSRFToken:     csrfToken(c),
		OGViewModel:   og,
	}
}

// renderPage renders content inside the HomeCtx layout
func renderPage(c *fiber.Ctx, page string, og *viewmodel.OpenGraph, content templ.Component) error {
	home := views.HomeCtx(newLayout(c, page, og), content)

	handler := adaptor.HTTPHandler(templ.Handler(home))
	return handler(c)
}

// renderTemplate renders one of the html form templates inside the layout.
// The template sees the layout data as .Layout.
func renderTemplate(c *fiber.Ctx, view, page string, data fiber.Map) error {
	layout := newLayout(c, page, nil)
	if data == nil {
		data = fiber.Map{}
	}
	data["Layout"] = layout

	home := views.HomeCtx(layout, views.Template(view, data))

	handler := adaptor.HTTPHandler(templ.Handler(home))
	return handler(c)
}

// paramID parses the :id route parameter
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

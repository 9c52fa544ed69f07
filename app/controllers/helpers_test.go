package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"github.com/ManuelReschke/FoxBlog/app/repository"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/blog"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/database"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/session"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/usercontext"
)

var day1 = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// testEnv is a fiber app wired like production, minus csrf, over an
// in-memory database with a controllable clock
type testEnv struct {
	app    *fiber.App
	repos  *repository.Repositories
	admin  *models.User
	author *models.User
	now    time.Time
	actor  *usercontext.UserContext
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{now: day1}

	db, err := database.OpenInMemory(func() time.Time { return env.now })
	require.NoError(t, err)
	env.repos = repository.NewRepositories(db)

	env.admin, err = models.CreateUser("Admin", "admin@example.com", "secret123", models.ROLE_ADMIN)
	require.NoError(t, err)
	require.NoError(t, env.repos.User.Create(env.admin))

	env.author, err = models.CreateUser("Writer", "writer@example.com", "secret123", models.ROLE_USER)
	require.NoError(t, err)
	require.NoError(t, env.repos.User.Create(env.author))

	session.NewMemorySessionStore()

	env.app = fiber.New(fiber.Config{
		ErrorHandler: HandleError,
	})
	env.app.Use(func(c *fiber.Ctx) error {
		if env.actor != nil {
			usercontext.SetUserContext(c, *env.actor)
		}
		return c.Next()
	})

	bc := NewBlogController(blog.NewService(env.repos.Post))
	env.app.Get("/", bc.HandleIndex)
	env.app.Get("/explore/", bc.HandleExplore)
	env.app.Get("/about/", bc.HandleAbout)
	env.app.Get("/blog/:id/", bc.HandleBlogDetail)

	ac := NewAuthController(env.repos.User)
	env.app.Get("/login", ac.HandleAuthLogin)
	env.app.Post("/login", ac.HandleAuthLogin)
	env.app.Post("/logout", ac.HandleAuthLogout)

	apc := NewAdminPostController(env.repos.Post, env.repos.User)
	apc.now = func() time.Time { return env.now }
	admin := env.app.Group("/admin/posts")
	admin.Get("/", apc.HandleAdminPosts)
	admin.Get("/create", apc.HandleAdminPostCreate)
	admin.Post("/store", apc.HandleAdminPostStore)
	admin.Get("/edit/:id", apc.HandleAdminPostEdit)
	admin.Post("/update/:id", apc.HandleAdminPostUpdate)
	admin.Post("/delete/:id", apc.HandleAdminPostDelete)
	admin.Post("/toggle/:id", apc.HandleAdminPostToggle)

	return env
}

func (e *testEnv) actAsAdmin() {
	e.actor = &usercontext.UserContext{
		UserID:     e.admin.ID,
		Username:   e.admin.Name,
		IsLoggedIn: true,
		IsAdmin:    true,
	}
}

func (e *testEnv) addPost(t *testing.T, author *models.User, title, body string, published bool, createdAt time.Time) *models.Post {
	t.Helper()

	p := &models.Post{
		Title:       title,
		Body:        body,
		UserID:      author.ID,
		IsPublished: published,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, e.repos.Post.Create(p))
	return p
}

func (e *testEnv) get(t *testing.T, target string) (*http.Response, string) {
	t.Helper()

	resp, err := e.app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (e *testEnv) postForm(t *testing.T, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// flashMessage returns the decoded flash cookie a redirect carried
func flashMessage(resp *http.Response) string {
	for _, cookie := range resp.Cookies() {
		if strings.Contains(cookie.Name, "flash") {
			value, err := url.QueryUnescape(cookie.Value)
			if err != nil {
				return cookie.Value
			}
			return value
		}
	}
	return ""
}

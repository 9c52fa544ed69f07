package controllers

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAuthLogin_RendersForm(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/login")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="password"`)
}

func TestHandleAuthLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postForm(t, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"secret123"},
	})

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/posts", resp.Header.Get(fiber.HeaderLocation))

	var hasSession bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_id" && cookie.Value != "" {
			hasSession = true
		}
	}
	assert.True(t, hasSession)

	user, err := env.repos.User.GetByID(env.admin.ID)
	require.NoError(t, err)
	assert.NotNil(t, user.LastLoginAt)
}

func TestHandleAuthLogin_NonAdminGoesHome(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postForm(t, "/login", url.Values{
		"email":    {"writer@example.com"},
		"password": {"secret123"},
	})

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestHandleAuthLogin_Failure(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "admin@example.com", "nope-nope"},
		{"unknown email", "ghost@example.com", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.postForm(t, "/login", url.Values{
				"email":    {tt.email},
				"password": {tt.pass},
			})
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
		})
	}
}

func TestHandleAuthLogout(t *testing.T) {
	env := newTestEnv(t)
	env.actAsAdmin()

	resp := env.postForm(t, "/logout", nil)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

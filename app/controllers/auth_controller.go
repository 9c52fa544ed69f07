package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/FoxBlog/app/repository"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/session"
)

// AuthController signs users in and out of the session
type AuthController struct {
	userRepo repository.UserRepository
}

// NewAuthController creates a new auth controller with the user repository
func NewAuthController(userRepo repository.UserRepository) *AuthController {
	return &AuthController{
		userRepo: userRepo,
	}
}

// HandleAuthLogin renders the login form on GET and checks the credentials on POST
func (ac *AuthController) HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		return ac.login(c)
	}

	if isLoggedIn(c) {
		return c.Redirect("/")
	}

	return renderTemplate(c, "auth/login", " | Login", nil)
}

func (ac *AuthController) login(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	// the message never tells which of email or password was wrong
	user, err := ac.userRepo.GetByEmail(strings.TrimSpace(c.FormValue("email")))
	if err != nil || !user.CheckPassword(c.FormValue("password")) {
		fm["message"] = "There is a problem with the login process"

		return flash.WithError(c, fm).Redirect("/login")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	sess.Set(AUTH_KEY, true)
	sess.Set(USER_ID, user.ID)
	sess.Set(USER_NAME, user.Name)
	sess.Set(USER_IS_ADMIN, user.IsAdmin())

	if err := sess.Save(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	if err := ac.userRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		log.Printf("[Auth] could not store last login of user %d: %v", user.ID, err)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Welcome back, " + user.Name,
	}

	target := "/"
	if user.IsAdmin() {
		target = adminPostsPath
	}

	return flash.WithSuccess(c, fm).Redirect(target)
}

// HandleAuthLogout destroys the session
func (ac *AuthController) HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	if err := sess.Destroy(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	c.Locals(FROM_PROTECTED, false)

	fm = fiber.Map{
		"type":    "success",
		"message": "You are logged out",
	}

	return flash.WithSuccess(c, fm).Redirect("/login")
}

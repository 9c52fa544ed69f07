package main

import (
	"flag"
	"log"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"github.com/ManuelReschke/FoxBlog/app/repository"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/database"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/env"
)

// createadmin seeds an account that may sign in to /admin/posts
func main() {
	name := flag.String("name", "", "display name of the admin")
	email := flag.String("email", "", "login email of the admin")
	password := flag.String("password", "", "password, at least 6 characters")
	flag.Parse()

	env.SetupEnvFile()
	database.SetupDatabase()

	user, err := models.CreateUser(*name, *email, *password, models.ROLE_ADMIN)
	if err != nil {
		log.Fatalf("Invalid admin account: %v", err)
	}

	if err := repository.NewUserRepository(database.GetDB()).Create(user); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s <%s> created with id %d", user.Name, user.Email, user.ID)
}

package repository

import (
	"time"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	UpdateLastLogin(id uint, at time.Time) error
}

// PostRepository defines the interface for post-related database operations.
// The Published* methods only ever return posts with is_published = true.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetPublishedByID(id uint) (*models.Post, error)
	GetPublished(offset, limit int) ([]models.Post, error)
	CountPublished() (int64, error)
	SearchPublishedByTitle(query string, limit int) ([]models.Post, error)
	GetAll(filter PostFilter) ([]models.Post, error)
	Update(post *models.Post) error
	SetPublished(id uint, published bool) error
	Delete(id uint) error
	Count() (int64, error)
}

// PostFilter narrows the administrative post listing
type PostFilter struct {
	Published *bool
	AuthorID  uint
	// Query matches title or body, case-insensitive
	Query string
	// CreatedAfter keeps posts created at or after this instant when set
	CreatedAfter time.Time
}

// Repositories struct holds all repository instances
type Repositories struct {
	User UserRepository
	Post PostRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User: NewUserRepository(db),
		Post: NewPostRepository(db),
	}
}

package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Post represents a blog post. Visitors only ever see posts with IsPublished set.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title" validate:"required,min=1,max=200"`
	Body        string    `gorm:"type:text;not null" json:"body" validate:"required"`
	UserID      uint      `gorm:"index;not null" json:"user_id" validate:"required"`
	Author      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"author" validate:"-"`
	IsPublished bool      `gorm:"not null;index" json:"is_published"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}

// NewPost returns a post with the defaults of a freshly written article.
// Posts are published unless the author explicitly unchecks the flag.
func NewPost(title, body string) *Post {
	return &Post{
		Title:       title,
		Body:        body,
		IsPublished: true,
	}
}

func (p *Post) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// IsNew reports whether the post has not been persisted yet
func (p *Post) IsNew() bool {
	return p.ID == 0
}

// AuthorName returns the display name of the author, or an empty string
// when the association was not loaded.
func (p *Post) AuthorName() string {
	return p.Author.Name
}

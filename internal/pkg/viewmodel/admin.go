package viewmodel

import (
	"github.com/ManuelReschke/FoxBlog/app/models"
)

// AdminPostFilter echoes the active list filters back into the form
type AdminPostFilter struct {
	Published string
	AuthorID  uint
	Query     string
	Created   string
}

// AdminPostList is the data of the administrative post overview
type AdminPostList struct {
	Posts   []models.Post
	Authors []models.User
	Filter  AdminPostFilter
	Total   int64
}

// AdminPostForm is the data of the create and edit forms
type AdminPostForm struct {
	Post   models.Post
	Action string
	IsNew  bool
}

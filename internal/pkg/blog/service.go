package blog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"github.com/ManuelReschke/FoxBlog/app/repository"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/pagination"
)

// Limits of the visitor facing surfaces
const (
	RecentLimit       = 6
	ExplorePageSize   = 12
	SearchLimit       = 10
	LatestTopicsLimit = 10
)

// ErrNotFound is returned when no published post matches
var ErrNotFound = errors.New("post not found")

// Service answers every visitor facing read. Unpublished posts never leave
// this service.
type Service struct {
	posts repository.PostRepository
}

// NewService creates a query service from an injected post repository
func NewService(posts repository.PostRepository) *Service {
	return &Service{posts: posts}
}

// ListRecent returns at most limit published posts, newest first
func (s *Service) ListRecent(limit int) ([]models.Post, error) {
	if limit <= 0 {
		return []models.Post{}, nil
	}
	posts, err := s.posts.GetPublished(0, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}
	return posts, nil
}

// ListPaged returns one page of published posts. Page numbers outside the
// valid range are clamped to the first or last page.
func (s *Service) ListPaged(pageSize, pageNumber int) (pagination.Page[models.Post], error) {
	if pageSize <= 0 {
		pageSize = ExplorePageSize
	}

	total, err := s.posts.CountPublished()
	if err != nil {
		return pagination.Page[models.Post]{}, fmt.Errorf("count published posts: %w", err)
	}

	numPages := pagination.NumPages(total, pageSize)
	number := pagination.Clamp(pageNumber, numPages)

	posts, err := s.posts.GetPublished(pagination.Offset(number, pageSize), pageSize)
	if err != nil {
		return pagination.Page[models.Post]{}, fmt.Errorf("list page %d: %w", number, err)
	}

	return pagination.Page[models.Post]{
		Items:      posts,
		Number:     number,
		Size:       pageSize,
		TotalItems: total,
		TotalPages: numPages,
	}, nil
}

// SearchByTitle matches published posts whose title contains query, ignoring
// case. An empty query matches nothing.
func (s *Service) SearchByTitle(query string, limit int) ([]models.Post, error) {
	if query == "" || limit <= 0 {
		return []models.Post{}, nil
	}
	posts, err := s.posts.SearchPublishedByTitle(query, limit)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return posts, nil
}

// GetByID returns a published post. Unpublished posts are reported as
// ErrNotFound, exactly like missing ones.
func (s *Service) GetByID(id uint) (*models.Post, error) {
	post, err := s.posts.GetPublishedByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return post, nil
}

// LatestTopics feeds the latest topics widget. It shares the ordering of
// ListRecent but is kept apart because the two surfaces evolve separately.
func (s *Service) LatestTopics(limit int) ([]models.Post, error) {
	if limit <= 0 {
		return []models.Post{}, nil
	}
	posts, err := s.posts.GetPublished(0, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest topics: %w", err)
	}
	return posts, nil
}

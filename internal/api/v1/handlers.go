package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/FoxBlog/internal/pkg/blog"
)

// APIServer implements the ServerInterface
type APIServer struct {
	service *blog.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(service *blog.Service) *APIServer {
	return &APIServer{
		service: service,
	}
}

// GetSearch returns published posts whose title contains q, ignoring case.
// A missing or empty q yields an empty result list.
func (s *APIServer) GetSearch(c *fiber.Ctx, params GetSearchParams) error {
	posts, err := s.service.SearchByTitle(params.Q, blog.SearchLimit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(SearchResponse{
		Results: blog.ToSearchResults(posts),
	})
}

// GetLatestTopics returns the most recent published posts
func (s *APIServer) GetLatestTopics(c *fiber.Ctx) error {
	posts, err := s.service.LatestTopics(blog.LatestTopicsLimit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(LatestTopicsResponse{
		Topics: blog.ToTopics(posts),
	})
}

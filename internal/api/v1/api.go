package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/FoxBlog/internal/pkg/blog"
)

// SearchResponse is the body of GET /api/search/
type SearchResponse struct {
	Results []blog.SearchResult `json:"results"`
}

// LatestTopicsResponse is the body of GET /api/latest-topics/
type LatestTopicsResponse struct {
	Topics []blog.Topic `json:"topics"`
}

// GetSearchParams defines parameters for GetSearch
type GetSearchParams struct {
	Q string `query:"q"`
}

// ServerInterface represents all server handlers described in public/docs/v1/openapi.yml
type ServerInterface interface {
	// Search published posts by title
	// (GET /search/)
	GetSearch(c *fiber.Ctx, params GetSearchParams) error
	// Latest published posts
	// (GET /latest-topics/)
	GetLatestTopics(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts fiber contexts to parameters
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetSearch operation middleware
func (siw *ServerInterfaceWrapper) GetSearch(c *fiber.Ctx) error {
	params := GetSearchParams{
		Q: c.Query("q"),
	}

	return siw.Handler.GetSearch(c, params)
}

// GetLatestTopics operation middleware
func (siw *ServerInterfaceWrapper) GetLatestTopics(c *fiber.Ctx) error {
	return siw.Handler.GetLatestTopics(c)
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.Get("/search/", wrapper.GetSearch)
	router.Get("/latest-topics/", wrapper.GetLatestTopics)
}

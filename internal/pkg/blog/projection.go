package blog

import "github.com/ManuelReschke/FoxBlog/app/models"

const (
	searchDateLayout = "2006-01-02"
	topicDateLayout  = "2006-01-02 15:04"
)

// SearchResult is the search API representation of a post
type SearchResult struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// Topic is the latest topics API representation of a post
type Topic struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

// ToSearchResults projects posts onto the search result shape. Dates are
// rendered in UTC. The result is never nil so it encodes as an empty JSON
// array.
func ToSearchResults(posts []models.Post) []SearchResult {
	out := make([]SearchResult, 0, len(posts))
	for _, p := range posts {
		out = append(out, SearchResult{
			ID:        p.ID,
			Title:     p.Title,
			Author:    p.AuthorName(),
			CreatedAt: p.CreatedAt.UTC().Format(searchDateLayout),
		})
	}
	return out
}

// ToTopics projects posts onto the latest topics shape
func ToTopics(posts []models.Post) []Topic {
	out := make([]Topic, 0, len(posts))
	for _, p := range posts {
		out = append(out, Topic{
			ID:        p.ID,
			Title:     p.Title,
			CreatedAt: p.CreatedAt.UTC().Format(topicDateLayout),
		})
	}
	return out
}

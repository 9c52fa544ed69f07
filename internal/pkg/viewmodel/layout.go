package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout carries what the shared page layout needs on every request
type Layout struct {
	Page          string
	FromProtected bool
	IsError       bool
	Msg           fiber.Map
	Username      string
	IsAdmin       bool
	CSRFToken     string
	OGViewModel   *OpenGraph
}

// OpenGraph describes the og:* meta tags of a page
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	URL         string
}

package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ManuelReschke/FoxBlog/app/models"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/pagination"
	"github.com/ManuelReschke/FoxBlog/internal/pkg/utils"
)

const displayDate = "January 2, 2006"

// IndexContent lists the most recent posts on the start page
func IndexContent(posts []models.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<h1 class="text-3xl font-bold mb-6">Recent posts</h1>`)
		writePostCards(hw, posts)
		hw.raw(`<a class="btn btn-primary" href="/explore/">Explore all posts</a>`)
		return hw.err
	})
}

// ExploreContent renders one page of the archive with its page links
func ExploreContent(page pagination.Page[models.Post]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<h1 class="text-3xl font-bold mb-6">Explore</h1>`)
		writePostCards(hw, page.Items)

		hw.raw(`<p class="text-sm opacity-70 mt-6">`)
		hw.textf("Page %d of %d", page.Number, page.TotalPages)
		hw.raw(`</p><nav class="join" aria-label="Pagination">`)
		if page.HasPrevious() {
			hw.raw(`<a class="join-item btn" href="` + explorePageURL(page.PreviousNumber()) + `">&laquo; Previous</a>`)
		}
		for _, n := range page.Numbers() {
			if n == page.Number {
				hw.raw(`<span class="join-item btn btn-primary" aria-current="page">` + strconv.Itoa(n) + `</span>`)
				continue
			}
			hw.raw(`<a class="join-item btn" href="` + explorePageURL(n) + `">` + strconv.Itoa(n) + `</a>`)
		}
		if page.HasNext() {
			hw.raw(`<a class="join-item btn" href="` + explorePageURL(page.NextNumber()) + `">Next &raquo;</a>`)
		}
		hw.raw(`</nav>`)
		return hw.err
	})
}

// AboutContent is the static about page
func AboutContent() templ.Component {
	return templ.Raw(`<h1 class="text-3xl font-bold mb-6">About</h1>` +
		`<p class="mb-4">FoxBlog is a small publishing site. Authors write posts in Markdown, ` +
		`visitors browse, search and read whatever has been published.</p>` +
		`<p class="mb-4">Code samples are highlighted and tables are supported, so technical ` +
		`write-ups look the way they were meant to.</p>`)
}

// BlogDetailContent renders a full post with its Markdown body
func BlogDetailContent(post models.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<article><h1 class="text-4xl font-bold mb-2">`)
		hw.text(post.Title)
		hw.raw(`</h1><div class="flex items-center gap-2 mb-6 text-sm opacity-70">`)
		hw.raw(`<img class="w-8 h-8 rounded-full" src="`)
		hw.text(utils.GetGravatarURL(post.Author.Email, 64))
		hw.raw(`" alt=""><span>`)
		hw.text("by " + post.Author.Name + " on " + post.CreatedAt.Format(displayDate))
		hw.raw(`</span>`)
		if post.UpdatedAt.Unix() > post.CreatedAt.Unix() {
			hw.raw(`<span>&middot; `)
			hw.text("updated " + post.UpdatedAt.Format(displayDate))
			hw.raw(`</span>`)
		}
		hw.raw(`</div><div class="prose max-w-none">`)
		hw.raw(string(utils.RenderBody(post.Body)))
		hw.raw(`</div></article><a class="btn btn-ghost mt-8" href="/explore/">&larr; All posts</a>`)
		return hw.err
	})
}

// ErrorContent is the generic error page. Not found gets a fixed message so
// nothing about the missing resource is echoed back.
func ErrorContent(code int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="text-center py-16"><h1 class="text-6xl font-bold mb-4">` + strconv.Itoa(code) + `</h1>`)
		hw.raw(`<p class="mb-6">`)
		if code == 404 {
			hw.text("The page you are looking for does not exist.")
		} else {
			hw.text(message)
		}
		hw.raw(`</p><a class="btn btn-primary" href="/">Back to the start page</a></div>`)
		return hw.err
	})
}

func writePostCards(hw *htmlWriter, posts []models.Post) {
	if len(posts) == 0 {
		hw.raw(`<p>No posts yet.</p>`)
		return
	}
	for _, post := range posts {
		hw.raw(`<article class="card bg-base-200 mb-4"><div class="card-body"><h2 class="card-title">`)
		hw.raw(`<a href="/blog/` + strconv.FormatUint(uint64(post.ID), 10) + `/">`)
		hw.text(post.Title)
		hw.raw(`</a></h2><p class="text-sm opacity-70">`)
		hw.text("by " + post.Author.Name + " on " + post.CreatedAt.Format(displayDate))
		hw.raw(`</p><p>`)
		hw.text(utils.PreviewText(post.Body, utils.DefaultPreviewWords))
		hw.raw(`</p></div></article>`)
	}
}

func explorePageURL(n int) string {
	return "/explore/?page=" + strconv.Itoa(n)
}

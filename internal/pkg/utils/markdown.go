package utils

import (
	"bytes"
	"html"
	"html/template"
	"log"
	"regexp"
	"strings"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// HighlightStyle is the chroma style used for fenced code blocks
const HighlightStyle = "github"

// DefaultPreviewWords is the word limit of list view previews
const DefaultPreviewWords = 30

// tagPattern is a permissive tag matcher, not an HTML parser. Nested or
// malformed markup may leave fragments behind.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Fenced code blocks are CommonMark core; tables come from the GFM
// extension. Raw HTML in a post body is passed through untouched.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		highlighting.NewHighlighting(
			highlighting.WithStyle(HighlightStyle),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// MarkdownToHTML converts a markdown body to HTML. A conversion failure
// never fails the caller: the escaped source is returned instead.
func MarkdownToHTML(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		log.Printf("[Markdown] Conversion failed, falling back to escaped text: %v", err)
		return "<p>" + template.HTMLEscapeString(src) + "</p>"
	}
	return buf.String()
}

// RenderBody returns the display HTML of a post body, styled for the site
func RenderBody(body string) template.HTML {
	return template.HTML(ProcessHTMLContent(MarkdownToHTML(body)))
}

// PreviewText returns the first wordLimit words of the rendered, tag
// stripped body. "..." is appended only when words were cut off. A negative
// limit is treated as zero.
func PreviewText(body string, wordLimit int) string {
	if wordLimit < 0 {
		wordLimit = 0
	}

	text := tagPattern.ReplaceAllString(MarkdownToHTML(body), "")
	text = html.UnescapeString(text)

	words := strings.Fields(text)
	if len(words) > wordLimit {
		return strings.Join(words[:wordLimit], " ") + "..."
	}
	return strings.TrimSpace(text)
}

var (
	highlightCSS     []byte
	highlightCSSOnce sync.Once
)

// HighlightCSS returns the stylesheet matching the classes emitted for
// highlighted code blocks
func HighlightCSS() []byte {
	highlightCSSOnce.Do(func() {
		var buf bytes.Buffer
		formatter := chromahtml.New(chromahtml.WithClasses(true))
		if err := formatter.WriteCSS(&buf, styles.Get(HighlightStyle)); err != nil {
			log.Printf("[Markdown] Failed to build highlight stylesheet: %v", err)
		}
		highlightCSS = buf.Bytes()
	})
	return highlightCSS
}

package views

import (
	"context"
	"embed"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/template/html/v2"
)

//go:embed auth/*.html admin/*.html
var templates embed.FS

var (
	engine     *html.Engine
	engineErr  error
	engineOnce sync.Once
)

// NewEngine returns the html engine over the embedded form templates with
// the blog's template functions registered
func NewEngine() *html.Engine {
	e := html.NewFileSystem(http.FS(templates), ".html")
	for name, fn := range FuncMap() {
		e.AddFunc(name, fn)
	}
	return e
}

func loadedEngine() (*html.Engine, error) {
	engineOnce.Do(func() {
		engine = NewEngine()
		engineErr = engine.Load()
	})
	return engine, engineErr
}

// Template renders an html template without a layout, so form pages can be
// placed inside HomeCtx like every other page content
func Template(name string, data interface{}) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e, err := loadedEngine()
		if err != nil {
			return err
		}
		return e.Render(w, name, data)
	})
}

// FuncMap lists the template functions available to the form templates
func FuncMap() map[string]interface{} {
	return map[string]interface{}{
		"date": func(t time.Time, layout string) string {
			return t.Format(layout)
		},
	}
}

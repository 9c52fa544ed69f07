package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/ManuelReschke/FoxBlog/internal/pkg/viewmodel"
)

// HomeCtx wraps page content in the site layout: navigation, flash message,
// the latest topics sidebar and the live search box
func HomeCtx(layout viewmodel.Layout, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)

		hw.raw(`<!DOCTYPE html><html lang="en" data-theme="light"><head>`)
		hw.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text("FoxBlog" + layout.Page)
		hw.raw(`</title>`)
		if layout.IsError {
			hw.raw(`<meta name="robots" content="noindex">`)
		}
		if og := layout.OGViewModel; og != nil {
			writeMeta(hw, "og:title", og.Title)
			writeMeta(hw, "og:description", og.Description)
			writeMeta(hw, "og:image", og.Image)
			writeMeta(hw, "og:url", og.URL)
		}
		hw.raw(`<link rel="stylesheet" href="/css/styles.css"><link rel="stylesheet" href="/assets/highlight.css">`)
		hw.raw(`</head><body class="bg-base-100 text-base-content">`)

		writeNav(hw, layout)
		writeFlash(hw, layout)

		hw.raw(`<div class="mx-auto max-w-6xl px-4 py-8 flex gap-8"><main class="flex-1">`)
		hw.component(content)
		hw.raw(`</main><aside class="w-64 hidden lg:block"><h3 class="font-bold mb-2">Latest topics</h3>`)
		hw.raw(`<ul id="latest-topics" class="space-y-1 text-sm"></ul></aside></div>`)
		hw.raw(`<footer class="footer footer-center p-4 text-sm">FoxBlog</footer>`)
		hw.raw(layoutScript)
		hw.raw(`</body></html>`)

		return hw.err
	})
}

func writeMeta(hw *htmlWriter, property, content string) {
	hw.raw(`<meta property="` + property + `" content="`)
	hw.text(content)
	hw.raw(`">`)
}

func writeNav(hw *htmlWriter, layout viewmodel.Layout) {
	hw.raw(`<nav class="navbar bg-base-200 px-4">`)
	hw.raw(`<a class="btn btn-ghost text-xl" href="/">FoxBlog</a>`)
	hw.raw(`<a class="btn btn-ghost" href="/explore/">Explore</a>`)
	hw.raw(`<a class="btn btn-ghost" href="/about/">About</a>`)
	hw.raw(`<div class="flex-1"></div><div class="relative mr-2">`)
	hw.raw(`<input id="search" type="search" class="input input-bordered input-sm" placeholder="Search posts" autocomplete="off">`)
	hw.raw(`<ul id="search-results" class="menu bg-base-100 shadow absolute w-64 z-10 hidden"></ul></div>`)
	if layout.IsAdmin {
		hw.raw(`<a class="btn btn-ghost" href="/admin/posts">Admin</a>`)
	}
	if layout.FromProtected {
		hw.raw(`<form method="post" action="/logout"><input type="hidden" name="_csrf" value="`)
		hw.text(layout.CSRFToken)
		hw.raw(`"><button class="btn btn-ghost" type="submit">Logout `)
		hw.text(layout.Username)
		hw.raw(`</button></form>`)
	} else {
		hw.raw(`<a class="btn btn-ghost" href="/login">Login</a>`)
	}
	hw.raw(`</nav>`)
}

func writeFlash(hw *htmlWriter, layout viewmodel.Layout) {
	message, ok := layout.Msg["message"]
	if !ok || message == nil || fmt.Sprint(message) == "" {
		return
	}
	hw.raw(`<div class="alert alert-`)
	hw.textf("%v", layout.Msg["type"])
	hw.raw(` my-4 mx-auto max-w-4xl" role="alert">`)
	hw.textf("%v", message)
	hw.raw(`</div>`)
}

const layoutScript = `<script>
(function () {
  function item(href, text, meta) {
    var li = document.createElement("li");
    var a = document.createElement("a");
    a.href = href;
    a.textContent = text;
    li.appendChild(a);
    if (meta) {
      var small = document.createElement("small");
      small.textContent = " " + meta;
      li.appendChild(small);
    }
    return li;
  }

  fetch("/api/latest-topics/")
    .then(function (r) { return r.json(); })
    .then(function (data) {
      var list = document.getElementById("latest-topics");
      data.topics.forEach(function (t) {
        list.appendChild(item("/blog/" + t.id + "/", t.title, t.created_at));
      });
    });

  var input = document.getElementById("search");
  var results = document.getElementById("search-results");
  var timer;
  input.addEventListener("input", function () {
    clearTimeout(timer);
    timer = setTimeout(function () {
      var q = input.value.trim();
      results.innerHTML = "";
      if (!q) { results.classList.add("hidden"); return; }
      fetch("/api/search/?q=" + encodeURIComponent(q))
        .then(function (r) { return r.json(); })
        .then(function (data) {
          data.results.forEach(function (p) {
            results.appendChild(item("/blog/" + p.id + "/", p.title, p.author + ", " + p.created_at));
          });
          results.classList.toggle("hidden", data.results.length === 0);
        });
    }, 250);
  });
})();
</script>`

// Package pages renders the site's HTML with gomponents and exposes each page
// as a templ.Component.
package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sodikinson/valentine/internal/images"
)

// Component adapts a gomponents node to templ so it can be served with
// templ.Handler.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

func layout(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Div(Class("page"),
					Div(Class("container"), g.Group(body)),
				),
			),
		),
	)
}

func image(img images.Image) g.Node {
	return Div(Class("gif-container"),
		Img(
			Src(img.Src),
			Alt(img.Alt),
			Width(strconv.Itoa(img.Width)),
			Height(strconv.Itoa(img.Height)),
			g.Attr("loading", "eager"),
			g.Attr("decoding", "async"),
		),
	)
}

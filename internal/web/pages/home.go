package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sodikinson/valentine/internal/images"
	"github.com/sodikinson/valentine/internal/proposal"
)

const (
	HomeTitle = "Will you be my Valentine?????"
	YesLabel  = "Yes"
	// NoRoute receives the No button's form post.
	NoRoute = "/no"
)

// Home renders the proposal page for the current click state.
func Home(h *proposal.Home) g.Node {
	return layout("Will you be my Valentine?",
		H1(Class("title"), g.Text(HomeTitle)),
		Div(Class("buttons"),
			Form(Action(h.YesClick()), Method("get"),
				Button(
					Type("submit"),
					Class("yes-button"),
					Style("font-size: "+h.FontSizeCSS()),
					g.Text(YesLabel),
				),
			),
			Form(Action(NoRoute), Method("post"),
				Button(
					Type("submit"),
					Class("no-button"),
					g.Text(h.Label()),
				),
			),
		),
		image(images.CuteCat),
	)
}

package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sodikinson/valentine/internal/deeplink"
	"github.com/sodikinson/valentine/internal/images"
)

const AcceptedTitle = "Knew you would say yes!"

const whatsappIconPath = "M23.3 8.7a10.4 10.4 0 0 0-16.5 12.5L5 27l5.9-1.7a10.4 10.4 0 0 0 12.4-16.6zM16 24.2a8.6 8.6 0 0 1-4.4-1.2l-.3-.2-3.2.9.9-3.1-.2-.3A8.6 8.6 0 1 1 16 24.2zm4.7-6.4c-.3-.1-1.5-.8-1.8-.9-.3-.1-.5-.1-.7.1-.2.3-.7.9-.9 1.1-.2.2-.3.2-.6.1a7.6 7.6 0 0 1-3.8-3.3c-.3-.5.3-.5.8-1.5.1-.2 0-.3 0-.5-.1-.1-.7-1.6-.9-2.2-.2-.6-.5-.5-.7-.5h-.6a1.1 1.1 0 0 0-.8.4 3.5 3.5 0 0 0-1.1 2.6c0 1.5 1.1 3 1.3 3.2.1.2 2.2 3.3 5.3 4.6 2 .8 2.7.9 3.7.7.6-.1 1.5-.6 1.8-1.2.2-.6.2-1.1.2-1.2-.1-.1-.3-.2-.6-.3z"

// Accepted renders the page shown after Yes. shareLink adds the WhatsApp
// button.
func Accepted(shareLink bool) g.Node {
	return layout(AcceptedTitle,
		H1(Class("header-text"), g.Text(AcceptedTitle)),
		image(images.HuggingCharacters),
		g.If(shareLink, tellAri()),
	)
}

func tellAri() g.Node {
	return A(
		Href(deeplink.Default()),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Class("whatsapp-button"),
		Aria("label", deeplink.AriaLabel),
		Span(Class("whatsapp-bubble"), g.Text(deeplink.Label)),
		g.El("svg",
			Class("whatsapp-icon"),
			g.Attr("viewBox", "0 0 32 32"),
			g.Attr("fill", "none"),
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			g.El("circle",
				g.Attr("cx", "16"), g.Attr("cy", "16"), g.Attr("r", "16"),
				g.Attr("fill", "#25D366"),
			),
			g.El("path",
				g.Attr("d", whatsappIconPath),
				g.Attr("fill", "white"),
			),
		),
	)
}

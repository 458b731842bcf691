package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

func PageFooter(site *content.Site) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-brand"),
				Logo(site.Name),
				P(Class("muted"), g.Text(site.Tagline)),
				Div(
					Class("footer-socials"),
					socialLink("lucide--github", "GitHub", "https://github.com"),
					socialLink("lucide--twitter", "Twitter", "https://twitter.com"),
					socialLink("lucide--linkedin", "LinkedIn", "https://linkedin.com"),
				),
			),
			g.Group(g.Map(site.Footer, func(s content.LinkSection) g.Node {
				return Div(
					Class("footer-section"),
					P(Class("footer-title"), g.Text(s.Title)),
					Ul(g.Group(g.Map(s.Links, func(l content.Link) g.Node {
						return Li(A(Href(l.Href), g.Text(l.Label)))
					}))),
				)
			})),
		),
		Div(
			Class("container footer-bottom"),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), site.Name))),
			ThemePicker(),
		),
	)
}

func socialLink(icon, label, href string) g.Node {
	return A(Class("btn btn-ghost btn-circle btn-sm"), Href(href), Target("_blank"), Rel("noopener noreferrer"), Icon(icon, label))
}

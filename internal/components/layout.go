package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

// PageData is what every page needs from the request.
type PageData struct {
	Site *content.Site
	Mode content.Mode
	// Section is the visitor's active section ("home", "about", ...).
	// The navbar highlights its link, falling back to Path when empty.
	Section string
	// Path is the request path, used for redirects.
	Path string
}

type PageConfig struct {
	Title       string
	Description string
}

// Layout wraps page content with the navbar and footer.
func Layout(data PageData, config PageConfig, children ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = data.Site.Name
	} else {
		config.Title = config.Title + " | " + data.Site.Name
	}
	if config.Description == "" {
		config.Description = data.Site.Tagline
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", LightTheme.Name),
			g.Attr("data-mode", string(data.Mode)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				StyleEl(g.Raw(ThemeCSS())),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Navbar(data),
				Main(ID("main"), g.Group(children)),
				PageFooter(data.Site),
				Script(Type("module"), Src("/static/js/theme.js")),
			),
		),
	})
}

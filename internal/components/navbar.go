package components

import (
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

func Navbar(data PageData) g.Node {
	return Header(
		Class("navbar glass"),
		Div(
			Class("container navbar-inner"),
			A(Href("/"), Aria("label", data.Site.Name+" home"), Logo(data.Site.Name)),

			Input(ID("nav-toggle"), Type("checkbox"), Class("nav-toggle")),
			Label(For("nav-toggle"), Class("btn btn-ghost btn-square nav-toggle-button"), Icon("lucide--menu", "Menu")),

			Nav(
				Class("nav-links"),
				Aria("label", "Main"),
				Ul(g.Group(g.Map(data.Site.Nav, func(l content.Link) g.Node {
					active := isActive(l.Href, data.Section, data.Path)
					return Li(A(
						Href(l.Href),
						g.If(active, Aria("current", "page")),
						c.Classes{"nav-link": true, "active": active},
						g.Text(l.Label),
					))
				}))),
			),

			Div(
				Class("navbar-actions"),
				ModeSwitch(data.Mode, data.Path),
				ThemePicker(),
				A(Href("/contact#contact-form"), Class("btn btn-primary btn-sm"), g.Text("Get Started")),
			),
		),
	)
}

func isActive(href, section, path string) bool {
	if section != "" {
		return linkSection(href) == section
	}
	if href == "/" {
		return path == "/" || path == ""
	}
	return path == href
}

// linkSection maps a nav href to its section name: "/" is "home",
// "/about" is "about".
func linkSection(href string) string {
	name := strings.Trim(href, "/")
	if name == "" {
		return "home"
	}
	return name
}

// ModeSwitch posts the chosen mode and returns to next.
func ModeSwitch(active content.Mode, next string) g.Node {
	return Form(
		Class("mode-switch"),
		Method("post"),
		Action("/mode"),
		Input(Type("hidden"), Name("next"), Value(next)),
		g.Group(g.Map(content.Modes(), func(m content.Mode) g.Node {
			selected := m == active
			return Button(
				Type("submit"),
				Name("mode"),
				Value(string(m)),
				c.Classes{"mode-option": true, "selected": selected},
				Aria("pressed", boolString(selected)),
				g.Text(m.Label()),
			)
		})),
	)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

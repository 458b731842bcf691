package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(name string) g.Node {
	return Span(
		Class("logo"),
		Span(Class("logo-mark"), g.Attr("aria-hidden", "true"), g.Text("B")),
		Span(Class("logo-text"), g.Text(name)),
	)
}

// iconName turns "lucide--mail size-4" into the iconify id "lucide:mail".
func iconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func iconSize(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. An empty label hides it from assistive tech.
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify icon"
	if size := iconSize(iconClass); size != "" {
		classes += " " + size
	}
	if ariaLabel != "" {
		return Span(Class(classes), g.Attr("data-icon", iconName(iconClass)), g.Attr("role", "img"), g.Attr("aria-label", ariaLabel))
	}
	return Span(Class(classes), g.Attr("data-icon", iconName(iconClass)), g.Attr("aria-hidden", "true"))
}

func IconBadge(icon, gradient string) g.Node {
	return Span(
		Class("icon-badge"),
		Style(fmt.Sprintf("background:%s", Gradient(gradient))),
		Icon(icon, ""),
	)
}

// GradientText highlights part of a heading.
func GradientText(text string) g.Node {
	return Span(Class("gradient-text"), g.Text(text))
}

func SectionHeader(eyebrow, title, subtitle string) g.Node {
	return Div(
		Class("section-header"),
		g.If(eyebrow != "", Span(Class("eyebrow"), g.Text(eyebrow))),
		H2(g.Text(title)),
		g.If(subtitle != "", P(Class("muted"), g.Text(subtitle))),
	)
}

func ThemePicker() g.Node {
	return Div(
		Class("theme-picker"),
		Span(Class("sr-only"), g.Text("Theme")),
		g.Group(g.Map(Themes, func(t Theme) g.Node {
			return Button(
				Type("button"),
				Class("btn btn-ghost btn-sm theme-option"),
				g.Attr("data-theme", t.Name),
				g.Text(t.Label),
			)
		})),
	)
}

package components

import (
	"fmt"
	"sort"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

func FeatureCard(f content.Feature) g.Node {
	return Article(
		Class("card feature-card glass"),
		ID("feature-"+f.ID),
		IconBadge(f.Icon, "accent"),
		H3(g.Text(f.Title)),
		P(Class("muted"), g.Text(f.Description)),
	)
}

func StatCard(s content.Stat) g.Node {
	return Div(
		Class("card stat-card"),
		g.If(s.Icon != "", IconBadge(s.Icon, "primary")),
		P(Class("stat-value"), g.Text(s.Value), g.If(s.Suffix != "", Span(Class("stat-suffix"), g.Text(s.Suffix)))),
		P(Class("muted"), g.Text(s.Label)),
	)
}

var socialIcons = map[string]string{
	"linkedin": "lucide--linkedin",
	"twitter":  "lucide--twitter",
	"github":   "lucide--github",
}

func TeamMemberCard(m content.TeamMember) g.Node {
	networks := make([]string, 0, len(m.Socials))
	for n := range m.Socials {
		networks = append(networks, n)
	}
	sort.Strings(networks)

	avatar := Div(
		Class("avatar"),
		Style("background:"+Gradient(m.Gradient)),
		g.Text(m.Initials),
	)
	if m.ImageURL != "" {
		avatar = Img(Class("avatar"), Src(m.ImageURL), Alt(m.Name))
	}

	return Article(
		Class("card team-card"),
		avatar,
		H3(g.Text(m.Name)),
		P(Class("muted"), g.Text(m.Role)),
		Div(
			Class("team-socials"),
			g.Group(g.Map(networks, func(n string) g.Node {
				icon, ok := socialIcons[n]
				if !ok {
					icon = "lucide--link"
				}
				return socialLink(icon, fmt.Sprintf("%s on %s", m.Name, n), m.Socials[n])
			})),
		),
	)
}

func RoadmapCard(item content.RoadmapItem) g.Node {
	return Article(
		Class("card roadmap-card"),
		Div(
			Class("roadmap-labels"),
			Span(Class("chip"), Style(chipStyle(item.LabelColor)), g.Text(item.Label)),
			g.If(item.Status != "", Span(Class("chip chip-outline"), g.Text(item.Status))),
		),
		Div(
			Class("roadmap-body"),
			Span(Class("roadmap-icon"), Style("color:"+item.LabelColor), Icon(item.Icon, "")),
			Div(
				H3(g.Text(item.Title)),
				P(Class("muted"), g.Text(item.Description)),
			),
		),
		Div(
			Class("roadmap-meta"),
			Span(Icon("lucide--thumbs-up", "Votes"), g.Text(" "+strconv.Itoa(item.Votes))),
			Span(Icon("lucide--eye", "Views"), g.Text(" "+strconv.Itoa(item.Views))),
		),
	)
}

func ProjectCard(p content.Project) g.Node {
	return Article(
		Class("card project-card"),
		Span(Class("chip"), Style(chipStyle(p.CategoryColor)), g.Text(p.Category)),
		H3(g.Text(p.Title)),
		P(Class("muted"), g.Text(p.Description)),
	)
}

// chipStyle tints a chip with color at low opacity. color is a #rrggbb value.
func chipStyle(color string) string {
	if color == "" {
		return ""
	}
	return fmt.Sprintf("color:%s;background:%s1a;border-color:%s4d", color, color, color)
}

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
)

func HomePage(data PageData) g.Node {
	mc := data.Site.ForMode(data.Mode)
	return Layout(data, PageConfig{},
		Section(
			Class("hero"),
			ID("hero"),
			Div(Class("hero-blob blob-a"), Aria("hidden", "true")),
			Div(Class("hero-blob blob-b"), Aria("hidden", "true")),
			Div(
				Class("container hero-inner"),
				Span(Class("pill"), g.Text("Trusted by 500+ teams")),
				H1(g.Text(mc.Hero.Headline)),
				P(Class("lead"), g.Text(mc.Hero.Subhead)),
				Div(
					Class("hero-actions"),
					A(Href("#features"), Class("btn btn-primary"), g.Text(mc.Hero.CTAPrimary)),
					A(Href("/contact#contact-form"), Class("btn btn-outline"), g.Text(mc.Hero.CTASecondary)),
				),
			),
		),
		Section(
			Class("section"),
			ID("features"),
			Div(
				Class("container"),
				SectionHeader(data.Mode.Label(), "Why "+data.Site.Name, "Powerful capabilities wrapped in a simple, intuitive approach."),
				Div(Class("grid grid-3"), g.Group(g.Map(mc.Features, FeatureCard))),
			),
		),
		callToAction("Ready to simplify your stack?", "Join 500+ companies that have already transformed their workflows."),
	)
}

func AboutPage(data PageData) g.Node {
	return Layout(data, PageConfig{Title: "About"},
		Section(
			Class("hero hero-compact"),
			Div(
				Class("container hero-inner"),
				H1(g.Text("We build the "), GradientText("operating systems"), g.Text(" of growing businesses")),
				P(Class("lead"), g.Text(data.Site.Tagline)),
				Div(
					Class("hero-actions"),
					A(Href("/roadmap"), Class("btn btn-primary"), g.Text("View our Journey")),
				),
			),
		),
		Section(
			Class("section"),
			ID("stats"),
			Div(
				Class("container"),
				SectionHeader("", "Numbers that matter", "Our growth is a testament to the trust our customers place in us."),
				Div(Class("grid grid-4"), g.Group(g.Map(data.Site.Stats, StatCard))),
			),
		),
		Section(
			Class("section"),
			ID("team"),
			Div(
				Class("container"),
				SectionHeader("", "Meet the team", "Our team of engineers, designers, and dreamers building the tools you use every day."),
				Div(Class("grid grid-3"), g.Group(g.Map(data.Site.Team, TeamMemberCard))),
			),
		),
		Section(
			Class("section"),
			ID("projects"),
			Div(
				Class("container"),
				SectionHeader("", "Selected work", ""),
				Div(Class("grid grid-2"), g.Group(g.Map(data.Site.Projects, ProjectCard))),
			),
		),
		callToAction("Ready to shape the future?", "Join 500+ companies that have already transformed the way they work."),
	)
}

func RoadmapPage(data PageData) g.Node {
	return Layout(data, PageConfig{Title: "Roadmap"},
		Section(
			Class("hero hero-compact"),
			Div(
				Class("container hero-inner"),
				H1(g.Text("Building the Future of "), GradientText("Business Tools")),
				P(Class("lead"), g.Text("Transparency at our core. Explore what we are building next and where we have been.")),
			),
		),
		Section(
			Class("section"),
			ID("roadmap"),
			Div(
				Class("container"),
				SectionHeader("Current Focus", "What's next", ""),
				Div(Class("grid grid-3"), g.Group(g.Map(data.Site.Roadmap, RoadmapCard))),
			),
		),
	)
}

// ContactState is the per-visitor state the contact page shows.
type ContactState struct {
	Form        contact.View
	ExpandedFAQ int
	FAQOpen     bool
}

func ContactPage(data PageData, state ContactState) g.Node {
	mc := data.Site.ForMode(data.Mode)
	return Layout(data, PageConfig{Title: "Contact"},
		Section(
			Class("hero hero-compact"),
			Div(
				Class("container hero-inner"),
				Span(Class("eyebrow"), g.Text("CONTACT US")),
				H1(g.Text("Let's scale together.")),
				P(Class("lead"), g.Text("Have a question about our integrated tools? Our team is ready to help you find the right fit.")),
			),
		),
		Section(
			Class("section"),
			Div(
				Class("container contact-grid"),
				Aside(
					Class("contact-info"),
					g.Group(g.Map(data.Site.ContactInfo, contactInfoItem)),
				),
				ContactForm(state.Form, mc.MessagePlaceholder),
			),
		),
		FAQAccordion(data.Site.FAQs, state.ExpandedFAQ, state.FAQOpen),
	)
}

func contactInfoItem(ci content.ContactInfo) g.Node {
	return Div(
		Class("card contact-info-item"),
		IconBadge(ci.Icon, "accent"),
		Div(
			P(Class("muted"), g.Text(ci.Label)),
			P(Class("strong"), g.Text(ci.Value)),
		),
	)
}

func callToAction(title, text string) g.Node {
	return Section(
		Class("section cta"),
		Div(
			Class("container cta-inner"),
			H2(g.Text(title)),
			P(g.Text(text)),
			Div(
				Class("hero-actions"),
				A(Href("/contact#contact-form"), Class("btn btn-light"), g.Text("Book a Consultation")),
				A(Href("/contact"), Class("btn btn-outline-light"), g.Text("Contact Sales")),
			),
		),
	)
}

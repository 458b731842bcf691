package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

// FAQAccordion renders the questions with at most one answer expanded.
func FAQAccordion(faqs []content.FAQ, expanded int, open bool) g.Node {
	items := make([]g.Node, 0, len(faqs))
	for i, f := range faqs {
		isOpen := open && i == expanded
		panelID := fmt.Sprintf("faq-panel-%d", i)
		items = append(items, Div(
			c.Classes{"faq-item": true, "open": isOpen},
			Form(
				Method("post"),
				Action(fmt.Sprintf("/faq/%d", i)),
				Button(
					Type("submit"),
					Class("faq-question"),
					Aria("expanded", boolString(isOpen)),
					Aria("controls", panelID),
					Span(g.Text(f.Question)),
					Icon("lucide--chevron-down", ""),
				),
			),
			g.If(isOpen, Div(ID(panelID), Class("faq-answer"), P(g.Text(f.Answer)))),
		))
	}

	return Section(
		Class("section faq"),
		ID("faq"),
		Div(
			Class("container narrow"),
			SectionHeader("", "Frequently Asked Questions", ""),
			Div(Class("faq-list"), g.Group(items)),
		),
	)
}

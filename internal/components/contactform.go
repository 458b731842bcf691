package components

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
)

type inputSpec struct {
	field        contact.Field
	label        string
	kind         string
	placeholder  string
	autocomplete string
	required     bool
}

var inputs = []inputSpec{
	{contact.FieldFullName, "Full Name", "text", "Jane Doe", "name", true},
	{contact.FieldWorkEmail, "Work Email", "email", "jane@company.com", "email", true},
	{contact.FieldCompanyName, "Company Name", "text", "Acme Corp", "organization", false},
}

// ContactForm renders the form for view. Field errors are shown inline and the
// current notice above the submit button.
func ContactForm(view contact.View, messagePlaceholder string) g.Node {
	submitting := view.Status == contact.StatusSubmitting

	return Div(
		Class("card contact-card glass"),
		ID("contact-form"),
		H2(g.Text("Send us a message")),
		Form(
			Method("post"),
			Action("/contact"),
			g.Attr("novalidate"),
			g.Attr("data-status", string(view.Status)),

			Div(
				Class("form-grid"),
				g.Group(g.Map(inputs, func(in inputSpec) g.Node {
					return formField(in.field, in.label, in.required, view.Errors,
						Input(
							ID(string(in.field)),
							Name(string(in.field)),
							Type(in.kind),
							Value(view.Fields.Get(in.field)),
							Placeholder(in.placeholder),
							AutoComplete(in.autocomplete),
							g.If(in.required, Required()),
							g.If(view.Errors.Has(in.field), Aria("invalid", "true")),
							g.If(submitting, Disabled()),
						),
					)
				})),
				formField(contact.FieldTopic, "Project Type", false, view.Errors,
					Select(
						ID(string(contact.FieldTopic)),
						Name(string(contact.FieldTopic)),
						g.If(submitting, Disabled()),
						g.Group(g.Map(view.TopicOptions, func(opt string) g.Node {
							return Option(Value(opt), g.If(opt == view.Fields.Topic, Selected()), g.Text(opt))
						})),
					),
				),
			),

			formField(contact.FieldMessage, "How can we help?", true, view.Errors,
				Textarea(
					ID(string(contact.FieldMessage)),
					Name(string(contact.FieldMessage)),
					Rows("5"),
					Placeholder(messagePlaceholder),
					Required(),
					g.If(view.Errors.Has(contact.FieldMessage), Aria("invalid", "true")),
					g.If(submitting, Disabled()),
					g.Text(view.Fields.Message),
				),
			),

			Button(
				Type("submit"),
				Class("btn btn-primary btn-block"),
				g.If(submitting, Disabled()),
				g.If(submitting, Aria("busy", "true")),
				Icon("lucide--send", ""),
				g.If(submitting, g.Text(" Sending...")),
				g.If(!submitting, g.Text(" Send Message")),
			),
		),
		NoticeBar(view.Notice),
	)
}

func formField(field contact.Field, label string, required bool, errs contact.ValidationErrors, control g.Node) g.Node {
	invalid := errs.Has(field)
	return Div(
		c.Classes{"form-field": true, "has-error": invalid},
		Label(
			For(string(field)),
			g.Text(label),
			g.If(required, Span(Class("required"), Aria("hidden", "true"), g.Text(" *"))),
		),
		control,
		g.If(invalid, P(Class("field-error"), ID(string(field)+"-error"), Role("alert"), g.Text(errs.Message(field)))),
	)
}

// NoticeBar renders the snackbar for n. Outcome notices get a dismiss button.
func NoticeBar(n *contact.Notice) g.Node {
	if n == nil {
		return nil
	}
	dismissable := n.Kind != contact.NoticeSending
	return Div(
		c.Classes{"notice": true, "notice-" + string(n.Severity): true},
		Role("status"),
		Aria("live", "polite"),
		g.Attr("data-kind", string(n.Kind)),
		Span(g.Text(n.Message)),
		g.If(dismissable, Form(
			Method("post"),
			Action("/contact/dismiss"),
			Button(Type("submit"), Class("btn btn-ghost btn-sm"), Aria("label", "Dismiss"), Icon("lucide--x", "")),
		)),
	)
}

package contact

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/aymerick/raymond"
	"github.com/mailgun/mailgun-go/v4"

	"github.com/ahbiggie/Bigeen-web/internal/config"
)

//go:embed templates/submission.txt.hbs
var submissionTemplate string

// MailgunSink emails each submission to the site owner.
type MailgunSink struct {
	cfg    config.MailgunConfig
	client *mailgun.MailgunImpl
	tmpl   *raymond.Template
}

// NewMailgunSink builds a Mailgun sink. httpClient may be nil.
func NewMailgunSink(cfg config.MailgunConfig, httpClient *http.Client) (*MailgunSink, error) {
	tmpl, err := raymond.Parse(submissionTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse submission template: %w", err)
	}
	s := &MailgunSink{cfg: cfg, tmpl: tmpl}
	if cfg.Domain != "" && cfg.APIKey != "" {
		s.client = mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
		if cfg.APIBase != "" {
			s.client.SetAPIBase(cfg.APIBase)
		}
		if httpClient != nil {
			s.client.SetClient(httpClient)
		}
	}
	return s, nil
}

func (s *MailgunSink) Name() string { return "mailgun" }

func (s *MailgunSink) Ready() error {
	if !s.cfg.IsConfigured() || s.client == nil {
		return fmt.Errorf("%w: MAILGUN_DOMAIN, MAILGUN_API_KEY and CONTACT_NOTIFY_TO are required", ErrSinkNotConfigured)
	}
	return nil
}

// Deliver sends one message. Reply-To is set to the visitor.
func (s *MailgunSink) Deliver(ctx context.Context, p Payload) Outcome {
	body, err := s.Render(p)
	if err != nil {
		return Outcome{Kind: OutcomeTransportError, Err: err}
	}

	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}
	msg := s.client.NewMessage(from, subjectFor(p), body, s.cfg.NotifyTo)
	msg.SetReplyTo(p.Email)

	if _, _, err := s.client.Send(ctx, msg); err != nil {
		if status := mailgun.GetStatusFromErr(err); status > 0 {
			return Rejected(status)
		}
		return TransportFailure(err)
	}
	return Delivered(http.StatusOK)
}

// Render produces the plain-text email body for p.
func (s *MailgunSink) Render(p Payload) (string, error) {
	return s.tmpl.Exec(map[string]any{
		"modeLabel": p.Mode.Label(),
		"payload": map[string]string{
			"name":        p.Name,
			"email":       p.Email,
			"company":     p.Company,
			"projectType": p.ProjectType,
			"message":     p.Message,
			"submittedAt": p.SubmittedAt,
		},
	})
}

func subjectFor(p Payload) string {
	if p.ProjectType != "" {
		return fmt.Sprintf("[%s] %s: %s", p.Mode.Label(), p.ProjectType, p.Name)
	}
	return fmt.Sprintf("[%s] Contact from %s", p.Mode.Label(), p.Name)
}

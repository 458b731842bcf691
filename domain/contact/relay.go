package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// RelaySink posts the payload as JSON to a third-party form relay.
type RelaySink struct {
	endpoint string
	client   *resty.Client
}

// NewRelaySink builds a relay sink for endpoint. transport may be nil.
func NewRelaySink(endpoint string, transport http.RoundTripper) *RelaySink {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if transport != nil {
		client.SetTransport(transport)
	}
	return &RelaySink{endpoint: endpoint, client: client}
}

func (s *RelaySink) Name() string { return "relay" }

// Ready requires an absolute http or https endpoint.
func (s *RelaySink) Ready() error {
	if s.endpoint == "" {
		return fmt.Errorf("%w: CONTACT_RELAY_ENDPOINT is empty", ErrSinkNotConfigured)
	}
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSinkNotConfigured, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint %q is not an absolute http(s) URL", ErrSinkNotConfigured, s.endpoint)
	}
	return nil
}

// Deliver issues one POST. The response body is not interpreted.
func (s *RelaySink) Deliver(ctx context.Context, p Payload) Outcome {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(p).
		Post(s.endpoint)
	if err != nil {
		return TransportFailure(err)
	}
	if resp.IsSuccess() {
		return Delivered(resp.StatusCode())
	}
	return Rejected(resp.StatusCode())
}

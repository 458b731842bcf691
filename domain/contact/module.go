package contact

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"

	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/internal/config"
	"github.com/ahbiggie/Bigeen-web/pkg/logger"
)

// Module provides the contact sink, metrics, rate limiter and controller factory.
var Module = fx.Module("contact",
	fx.Provide(
		NewSink,
		NewDefaultMetrics,
		NewClientLimiterFromConfig,
		NewFactory,
	),
)

// NewSink picks the delivery backend named by CONTACT_SINK.
// A misconfigured sink is still returned; submissions then fail with a configuration notice.
func NewSink(cfg *config.Config, log *slog.Logger) (Sink, error) {
	log = log.With(logger.Scope("contact"))

	var transport http.RoundTripper
	if cfg.Otel.Enabled() {
		transport = otelhttp.NewTransport(http.DefaultTransport)
	}

	var (
		sink Sink
		err  error
	)
	switch cfg.Contact.Sink {
	case "mailgun":
		var client *http.Client
		if transport != nil {
			client = &http.Client{Transport: transport}
		}
		sink, err = NewMailgunSink(cfg.Mailgun, client)
		if err != nil {
			return nil, err
		}
	case "relay", "":
		sink = NewRelaySink(cfg.Contact.RelayEndpoint, transport)
	default:
		return nil, fmt.Errorf("unknown contact sink %q", cfg.Contact.Sink)
	}

	if err := sink.Ready(); err != nil {
		log.Warn("contact sink not ready, submissions will fail", slog.String("sink", sink.Name()), logger.Error(err))
	} else {
		log.Info("contact sink ready", slog.String("sink", sink.Name()))
	}
	return sink, nil
}

// NewDefaultMetrics registers with the process-wide Prometheus registry.
func NewDefaultMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}

func NewClientLimiterFromConfig(cfg *config.Config) *ClientLimiter {
	return NewClientLimiter(cfg.Contact.RequestsPerMinute, cfg.Contact.Burst)
}

// Factory creates one controller per visitor.
type Factory struct {
	sink    Sink
	cfg     ControllerConfig
	log     *slog.Logger
	metrics *Metrics
}

func NewFactory(cfg *config.Config, sink Sink, log *slog.Logger, metrics *Metrics) *Factory {
	return &Factory{
		sink: sink,
		cfg: ControllerConfig{
			Timeout:     cfg.Contact.SubmitTimeout,
			SuccessHold: cfg.Contact.SuccessNoticeDuration,
			FailureHold: cfg.Contact.FailureNoticeDuration,
		},
		log:     log,
		metrics: metrics,
	}
}

// New returns a controller with an empty form in mode.
func (f *Factory) New(mode content.Mode) *Controller {
	return NewController(NewStore(mode, content.TopicOptions), f.sink, f.cfg, f.log, f.metrics)
}

// Sink returns the shared delivery backend.
func (f *Factory) Sink() Sink {
	return f.sink
}

// AngelaMos | 2026
// events.go

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/aurex-pk/aurex-api/internal/config"
)

const (
	TenantProvisioned   = "tenant.provisioned"
	InvoiceCreated      = "invoice.created"
	InvoiceDeleted      = "invoice.deleted"
	QuotationConverted  = "quotation.converted"
	PaymentRecorded     = "payment.recorded"
	PaymentDeleted      = "payment.deleted"
	SubscriptionChanged = "subscription.changed"
)

// Envelope is the wire shape of every published event.
type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	CompanyID  int64     `json:"companyId,omitempty"`
	Data       any       `json:"data"`
}

// Publisher emits domain events. Publishing is best-effort; a failure is
// logged and never fails the request that produced the event.
type Publisher interface {
	Publish(ctx context.Context, eventType string, companyID int64, data any)
	Close()
}

func NewEnvelope(eventType string, companyID int64, data any) Envelope {
	return Envelope{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		CompanyID:  companyID,
		Data:       data,
	}
}

type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
	logger *slog.Logger
}

func Connect(cfg config.EventsConfig, appName string, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(cfg.NatsURL,
		nats.Name(appName),
		nats.ReconnectWait(cfg.ReconnectInterval),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	return &NATSPublisher{nc: nc, prefix: cfg.SubjectPrefix, logger: logger}, nil
}

func (p *NATSPublisher) Subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}

func (p *NATSPublisher) Publish(ctx context.Context, eventType string, companyID int64, data any) {
	env := NewEnvelope(eventType, companyID, data)

	payload, err := json.Marshal(env)
	if err != nil {
		p.logger.ErrorContext(ctx, "marshal event", "type", eventType, "error", err)
		return
	}

	if err := p.nc.Publish(p.Subject(eventType), payload); err != nil {
		p.logger.WarnContext(ctx, "publish event",
			"type", eventType,
			"event_id", env.ID,
			"error", err,
		)
	}
}

// Ping round-trips to the server, honouring the context deadline.
func (p *NATSPublisher) Ping(ctx context.Context) error {
	if !p.nc.IsConnected() {
		return fmt.Errorf("nats: %s", p.nc.Status())
	}
	return p.nc.FlushWithContext(ctx)
}

func (p *NATSPublisher) Close() {
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, int64, any) {}

func (NoopPublisher) Close() {}

// Recorder keeps published envelopes in memory for tests.
type Recorder struct {
	Events []Envelope
}

func (r *Recorder) Publish(_ context.Context, eventType string, companyID int64, data any) {
	r.Events = append(r.Events, NewEnvelope(eventType, companyID, data))
}

func (r *Recorder) Close() {}

func (r *Recorder) Types() []string {
	out := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		out = append(out, e.Type)
	}
	return out
}

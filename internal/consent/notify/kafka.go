package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cmpref/internal/consent/adapter"
	"cmpref/internal/consent/models"
	"cmpref/internal/platform/kafka/producer"
)

// EventTypeConsentChanged is the event_type header on published records.
const EventTypeConsentChanged = "consent_changed"

// ChangeEvent is the JSON payload published for each consent change.
type ChangeEvent struct {
	EventID    uuid.UUID    `json:"event_id"`
	Module     string       `json:"module"`
	Key        models.Key   `json:"key"`
	Value      models.Value `json:"value,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// Publisher buffers records for delivery. *producer.Producer satisfies it.
type Publisher interface {
	ProduceAsync(msg *producer.Message) error
}

// KafkaDelegate publishes consent changes to a Kafka topic, keyed by consent
// key so changes to one key stay ordered.
type KafkaDelegate struct {
	publisher Publisher
	consents  Consents
	topic     string
	logger    *slog.Logger
	now       func() time.Time
}

// KafkaOption configures the KafkaDelegate.
type KafkaOption func(*KafkaDelegate)

// WithKafkaLogger sets a logger for publish failures.
func WithKafkaLogger(logger *slog.Logger) KafkaOption {
	return func(d *KafkaDelegate) {
		d.logger = logger
	}
}

// WithKafkaClock overrides the event timestamp source.
func WithKafkaClock(now func() time.Time) KafkaOption {
	return func(d *KafkaDelegate) {
		if now != nil {
			d.now = now
		}
	}
}

func NewKafkaDelegate(publisher Publisher, consents Consents, topic string, opts ...KafkaOption) *KafkaDelegate {
	d := &KafkaDelegate{
		publisher: publisher,
		consents:  consents,
		topic:     topic,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *KafkaDelegate) OnConsentChange(key models.Key) {
	event := ChangeEvent{
		EventID:    uuid.New(),
		Module:     adapter.ModuleID,
		Key:        key,
		Value:      d.consents.Consents(context.Background())[key],
		OccurredAt: d.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		d.logError("failed to encode consent change", key, err)
		return
	}
	msg := &producer.Message{
		Topic: d.topic,
		Key:   []byte(key),
		Value: payload,
		Headers: map[string]string{
			"event_type": EventTypeConsentChanged,
			"event_id":   event.EventID.String(),
		},
	}
	if err := d.publisher.ProduceAsync(msg); err != nil {
		d.logError("failed to publish consent change", key, err)
	}
}

func (d *KafkaDelegate) logError(msg string, key models.Key, err error) {
	if d.logger != nil {
		d.logger.Error(msg, "key", key, "topic", d.topic, "error", err)
	}
}

var (
	_ adapter.Delegate = (*KafkaDelegate)(nil)
	_ Publisher        = (*producer.Producer)(nil)
)

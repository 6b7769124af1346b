package broker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/avvvet/signin-register/internal/comm"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Conn is the part of *nats.Conn the broker needs.
type Conn interface {
	Publish(subj string, data []byte) error
}

var _ Conn = (*nats.Conn)(nil)

type Broker struct {
	Conn       Conn
	InstanceId string
	now        func() time.Time
}

func NewBroker(conn Conn, instanceId string) *Broker {
	return &Broker{
		Conn:       conn,
		InstanceId: instanceId,
		now:        time.Now,
	}
}

// PublishEvent wraps payload in a comm.Event and publishes it on subject.
// Failures are logged only, a write never fails because of the event.
func (b *Broker) PublishEvent(subject, eventType string, payload interface{}) {
	if err := b.publish(subject, eventType, payload); err != nil {
		log.Errorf("error [PublishEvent] %s on %s: %v", eventType, subject, err)
	}
}

func (b *Broker) publish(subject, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	msg := comm.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Data:      data,
		Instance:  b.InstanceId,
		Timestamp: b.now().UTC(),
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := b.Conn.Publish(subject, raw); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	log.Debugf("published %s on %s", eventType, subject)
	return nil
}

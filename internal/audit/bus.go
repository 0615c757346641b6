package audit

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic is the in-process channel audit entries flow through before being
// persisted by the consumer.
const Topic = "portal.audit"

// Entry is one auditable action performed through the portal.
type Entry struct {
	EventType string                 `json:"event_type"`
	Details   map[string]interface{} `json:"details"`
}

// NewBus creates the in-process pub/sub channel for audit entries. The
// publisher and subscriber sides are the same object.
func NewBus() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NopLogger{},
	)
}

// Publish marshals and emits one entry. Best effort; a full buffer or a
// closed bus must never fail the request being audited.
func Publish(publisher message.Publisher, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return publisher.Publish(Topic, msg)
}

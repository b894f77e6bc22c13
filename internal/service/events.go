package service

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// NATS subjects for fleet events. The websocket hub subscribes to
// SubjectFleetEvents and relays everything to dashboard clients.
const (
	SubjectFleetEvents      = "fleet.events.*"
	SubjectFuelEvents       = "fleet.events.fuel"
	SubjectMaintenanceEvent = "fleet.events.maintenance"
)

// FleetEvent is the envelope published on the fleet event bus.
type FleetEvent struct {
	Type      string      `json:"type"`
	VehicleID uint        `json:"vehicle_id"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// EventPublisher publishes fleet events to NATS. A nil connection
// disables publishing, which keeps the workflows usable in tests.
type EventPublisher struct {
	nats *nats.Conn
}

// NewEventPublisher creates an event publisher
func NewEventPublisher(nc *nats.Conn) *EventPublisher {
	return &EventPublisher{nats: nc}
}

// Publish sends an event on the given subject. Publish failures are
// logged, never propagated: the storage transaction has already
// committed and must not be reported as failed.
func (p *EventPublisher) Publish(subject, eventType string, vehicleID uint, payload interface{}) {
	if p == nil || p.nats == nil {
		return
	}

	event := FleetEvent{
		Type:      eventType,
		VehicleID: vehicleID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Events] Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := p.nats.Publish(subject, data); err != nil {
		log.Printf("[Events] Failed to publish %s event: %v", eventType, err)
	}
}

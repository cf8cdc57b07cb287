package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated     EventType = "ticket_created"
	EventConfirmationSent  EventType = "confirmation_sent"
	EventDialogOpenFailure EventType = "dialog_open_failure"
)

// Event represents a domain event emitted by the submission workflow.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	ChannelID string      `json:"channel_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Cluster  string `json:"cluster"`
	Resource string `json:"resource"`
	Problem  string `json:"problem"`
}

// DialogOpenFailurePayload payload.
type DialogOpenFailurePayload struct {
	TriggerID string `json:"trigger_id"`
	Reason    string `json:"reason"`
}

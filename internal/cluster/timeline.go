package cluster

import (
	"sort"
	"time"
)

// EventType tags a timeline entry with the kind of activity it records.
type EventType string

const (
	// Task-view events.
	EventTicketCreated EventType = "ticket_created"
	EventCommit        EventType = "commit"
	EventEmail         EventType = "email"

	// Employee-view events.
	EventTicketAssigned EventType = "ticket_assigned"
	EventTicketResolved EventType = "ticket_resolved"
	EventEmailSent      EventType = "email_sent"
	EventEmailReceived  EventType = "email_received"
)

// Event is one entry in a cluster timeline. RefID points back at the
// originating record (ticket ID, commit ID, or email thread ID).
type Event struct {
	Type      EventType `json:"type"`
	RefID     string    `json:"ref_id"`
	Timestamp time.Time `json:"timestamp"`
}

// sortTimeline orders events ascending by timestamp. The sort is stable so
// ties keep input order, which keeps correlation output reproducible.
func sortTimeline(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
}

// Package audit captures structured events for roster changes. Events are
// emitted from the service layer and fanned out to a sink (in-memory for
// tests and development, Kafka in production). Audit failures are logged and
// dropped; they never fail the business operation that produced them.
package audit

import (
	"time"
)

// Action names a roster change.
type Action string

const (
	ActionSchoolCreated   Action = "school_created"
	ActionSchoolUpdated   Action = "school_updated"
	ActionSchoolDeleted   Action = "school_deleted"
	ActionClassCreated    Action = "class_created"
	ActionClassUpdated    Action = "class_updated"
	ActionClassDeleted    Action = "class_deleted"
	ActionPersonCreated   Action = "person_created"
	ActionPersonUpdated   Action = "person_updated"
	ActionPersonDeleted   Action = "person_deleted"
	ActionClassesAssigned Action = "classes_assigned"
)

// Event is emitted from domain logic to capture a roster change. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	// Subject is the primary entity the action applied to (person, school,
	// or class id in string form).
	Subject string `json:"subject"`
	// Detail carries secondary identifiers, such as the class ids of an
	// assignment.
	Detail string `json:"detail,omitempty"`
	// Actor is the authenticated staff subject, when known.
	Actor string `json:"actor,omitempty"`
	// RequestID correlates the event with the HTTP request that caused it.
	RequestID string `json:"request_id,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	// Device is the display name parsed from UserAgent.
	Device string `json:"device,omitempty"`
}

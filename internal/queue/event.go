// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationStatusEvent is published when a reservation is confirmed or
// cancelled.  It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the primary database.
type ReservationStatusEvent struct {
	ReservationID string  `json:"reservation_id"`
	ClientID      string  `json:"client_id"`
	ClientName    string  `json:"client_name"`
	PropertyID    *string `json:"property_id,omitempty"`
	PropertyName  string  `json:"property_name,omitempty"`
	Status        string  `json:"status"`
	StartDate     string  `json:"date"`
	EndDate       string  `json:"end_date"`
	Guests        int     `json:"number_of_guests"`
	OccurredAt    string  `json:"occurred_at"`
}

package domain

import (
	"context"
	"time"
)

// Event represents a ticketed event
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	TicketPrice float64   `json:"ticketPrice"`
	MaxTickets  int       `json:"maxTickets"`
	Organizer   string    `json:"organizer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name, description, location string, date time.Time, ticketPrice float64, maxTickets int, organizer string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Location:    location,
		Date:        date,
		TicketPrice: ticketPrice,
		MaxTickets:  maxTickets,
		Organizer:   organizer,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventUpdate carries the fields of an update request. Zero values mean
// "leave unchanged": an omitted field, an empty string, a zero date, a
// ticket price of 0, and a max tickets of 0 all keep the stored value.
type EventUpdate struct {
	Name        string
	Description string
	Date        time.Time
	Location    string
	TicketPrice float64
	MaxTickets  int
}

// Apply merges the update into the event. Only non-zero fields overwrite.
// Note this makes it impossible to zero out a numeric field; that matches
// the merge rules the API has always had.
func (u EventUpdate) Apply(e *Event) {
	if u.Name != "" {
		e.Name = u.Name
	}
	if u.Description != "" {
		e.Description = u.Description
	}
	if !u.Date.IsZero() {
		e.Date = u.Date
	}
	if u.Location != "" {
		e.Location = u.Location
	}
	if u.TicketPrice != 0 {
		e.TicketPrice = u.TicketPrice
	}
	if u.MaxTickets != 0 {
		e.MaxTickets = u.MaxTickets
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for the event lifecycle.
type EventService interface {
	CreateEvent(ctx context.Context, organizerID string, event *Event) error
	ListAllEvents(ctx context.Context, callerRole string) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListMyEvents(ctx context.Context, callerID string) ([]*Event, error)
	UpdateEvent(ctx context.Context, id, callerID, callerRole string, update EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id, callerRole, bearerToken string) error
}

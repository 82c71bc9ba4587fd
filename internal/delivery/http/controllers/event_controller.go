package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventgate/internal/delivery/http/helpers"
	"eventgate/internal/delivery/http/middleware"
	"eventgate/internal/domain"
)

// EventRequest is the request body for POST /create-event and
// PUT /update-event/{id}. On update every field is optional; zero values
// (missing field, empty string, 0) leave the stored value unchanged.
type EventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	TicketPrice float64   `json:"ticketPrice"`
	MaxTickets  int       `json:"maxTickets"`
}

// EventResponse is the success body for create and update.
type EventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// EventListResponse is the success body for GET /all-events.
type EventListResponse struct {
	Events []*domain.Event `json:"events"`
}

// MyEventsResponse is the success body for GET /my-events.
type MyEventsResponse struct {
	Message string          `json:"message"`
	Events  []*domain.Event `json:"events"`
}

// SingleEventResponse is the success body for GET /event/{id}.
type SingleEventResponse struct {
	Event *domain.Event `json:"event"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *EventController) serverError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteServerError(w, err)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event; the authenticated caller becomes the organizer regardless of the payload. The organizer is emailed that the event is live.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event fields"
// @Success 201 {object} EventResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /create-event [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	event := domain.NewEvent(req.Name, req.Description, req.Location, req.Date, req.TicketPrice, req.MaxTickets, identity.UserID, now, now)
	if err := c.Service.CreateEvent(r.Context(), identity.UserID, event); err != nil {
		c.serverError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{Message: "Event created successfully", Event: event})
}

// ListAllEvents godoc
// @Summary List all events
// @Description Returns every event. Admin and superadmin only. An empty store is reported as 404.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} EventListResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /all-events [get]
func (c *EventController) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListAllEvents(r.Context(), identity.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONMessage(w, http.StatusForbidden, "Access denied. Admin only.")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONMessage(w, http.StatusNotFound, "No events found.")
		default:
			c.serverError(w, r, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventListResponse{Events: events})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns the event. Any authenticated caller may read any event.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} SingleEventResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /event/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONMessage(w, http.StatusBadRequest, "missing event id")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		c.serverError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SingleEventResponse{Event: event})
}

// ListMyEvents godoc
// @Summary List the caller's events
// @Description Returns events organized by the authenticated caller; 404 when there are none.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MyEventsResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /my-events [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListMyEvents(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONMessage(w, http.StatusNotFound, "No events found for this user.")
			return
		}
		c.serverError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, MyEventsResponse{Message: "Events retrieved successfully", Events: events})
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Merges the provided fields into the event. Zero values leave fields unchanged. Only the organizer or an admin may update; superadmin has no special update rights.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body EventRequest true "Fields to update (all optional)"
// @Success 200 {object} EventResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /update-event/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONMessage(w, http.StatusBadRequest, "missing event id")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	update := domain.EventUpdate{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		TicketPrice: req.TicketPrice,
		MaxTickets:  req.MaxTickets,
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, identity.UserID, identity.Role, update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONMessage(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONMessage(w, http.StatusForbidden, "Access denied. Not the event organizer.")
		default:
			c.serverError(w, r, err)
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event updated successfully", Event: event})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event (admin and superadmin only) and relays an admin-action record to the audit service using the caller's own bearer token.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ServerErrorResponse
// @Router /event/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONMessage(w, http.StatusBadRequest, "missing event id")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	token, _ := middleware.BearerTokenFromContext(r.Context())
	if err := c.Service.DeleteEvent(r.Context(), id, identity.Role, token); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONMessage(w, http.StatusForbidden, "Access denied. Admin only.")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONMessage(w, http.StatusNotFound, "Event not found")
		default:
			c.serverError(w, r, err)
		}
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Event deleted successfully")
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventgate/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	auditRelay     domain.AuditRelay
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	auditRelay domain.AuditRelay,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		auditRelay:     auditRelay,
		contextTimeout: timeout,
	}
}

// CreateEvent stores the event with the caller as organizer, then emails the
// organizer that the event is live. The insert is not rolled back if the
// user lookup or the email fails; the error still propagates to the caller.
func (s *eventService) CreateEvent(ctx context.Context, organizerID string, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if organizerID == "" {
		return fmt.Errorf("event organizer is required")
	}

	event.Organizer = organizerID
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	organizer, err := s.userRepo.GetByID(ctx, organizerID)
	if err != nil {
		return fmt.Errorf("get organizer: %w", err)
	}

	data := &domain.EventCreatedEmailData{
		Email:         organizer.Email,
		OrganizerName: organizer.Name,
		EventName:     event.Name,
	}
	if err := s.emailService.SendEventCreated(ctx, data); err != nil {
		return fmt.Errorf("send event created email: %w", err)
	}
	return nil
}

// ListAllEvents returns every event. Admin and superadmin only. An empty
// store is reported as ErrNotFound, not an empty list.
func (s *eventService) ListAllEvents(ctx context.Context, callerRole string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.RoleAllowed(callerRole, domain.RoleAdmin, domain.RoleSuperadmin) {
		return nil, domain.ErrForbidden
	}
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// ListMyEvents returns the caller's own events, ErrNotFound when there are
// none (same empty-is-error policy as ListAllEvents).
func (s *eventService) ListMyEvents(ctx context.Context, callerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByOrganizer(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list events by organizer: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return events, nil
}

// UpdateEvent loads the event, checks that the caller is its organizer or an
// admin, merges the non-zero fields of update, and persists the result.
// Superadmin gets no special update rights here; only delete is widened to
// superadmin.
func (s *eventService) UpdateEvent(ctx context.Context, id, callerID, callerRole string, update domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Organizer != callerID && callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	update.Apply(event)
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes the event and relays an admin-action record to the
// audit service, authenticated with the caller's own bearer token. The relay
// happens after the delete has committed; a relay failure propagates even
// though the row is already gone. No retries.
func (s *eventService) DeleteEvent(ctx context.Context, id, callerRole, bearerToken string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.RoleAllowed(callerRole, domain.RoleAdmin, domain.RoleSuperadmin) {
		return domain.ErrForbidden
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}

	action := domain.AdminAction{
		Action:      "Deleted Event",
		TargetID:    event.ID,
		TargetType:  "event",
		Description: fmt.Sprintf("Event %q was deleted by admin.", event.Name),
	}
	if err := s.auditRelay.Relay(ctx, action, bearerToken); err != nil {
		return fmt.Errorf("relay admin action: %w", err)
	}
	return nil
}

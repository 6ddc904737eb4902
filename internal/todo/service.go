package todo

import (
	"context"
	"errors"
	"fmt"

	"todocore/internal/auth"
)

// Service enforces ownership and admin policy around the repository.
type Service struct {
	todos  Repository
	events Notifier
}

// NewService creates a todo service. notifier may be nil, in which case
// no events are published.
func NewService(todos Repository, events Notifier) *Service {
	return &Service{todos: todos, events: events}
}

// Create adds a new item owned by the actor.
func (s *Service) Create(ctx context.Context, actor *auth.User, title, description string) (*Todo, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	item := &Todo{
		OwnerID:     actor.ID,
		Title:       title,
		Description: description,
	}
	if err := s.todos.Create(ctx, item); err != nil {
		return nil, err
	}

	s.notify(actor.ID, Event{Type: EventTodoCreated, Todo: item})
	return item, nil
}

// Get returns one of the actor's items. An item owned by someone else
// is reported as not found, same as an item that does not exist.
func (s *Service) Get(ctx context.Context, actor *auth.User, id string) (*Todo, error) {
	return s.getOwned(ctx, actor, id)
}

// ListMine returns all of the actor's items.
func (s *Service) ListMine(ctx context.Context, actor *auth.User) ([]Todo, error) {
	return s.todos.ListByOwner(ctx, actor.ID)
}

// Update modifies one of the actor's items. A nil field is left
// untouched; a non-nil field replaces the stored value. Ownership
// is immutable.
func (s *Service) Update(ctx context.Context, actor *auth.User, id string, title, description *string, completed *bool) (*Todo, error) {
	item, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		if *title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		item.Title = *title
	}
	if description != nil {
		item.Description = *description
	}
	if completed != nil {
		item.Completed = *completed
	}

	if err := s.todos.Update(ctx, item); err != nil {
		return nil, err
	}

	s.notify(item.OwnerID, Event{Type: EventTodoUpdated, Todo: item})
	return item, nil
}

// Delete removes one of the actor's items.
func (s *Service) Delete(ctx context.Context, actor *auth.User, id string) error {
	item, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.todos.Delete(ctx, item.ID); err != nil {
		return err
	}

	s.notify(item.OwnerID, Event{Type: EventTodoDeleted, TodoID: item.ID})
	return nil
}

// ListAll returns every item across all owners. Admin only.
func (s *Service) ListAll(ctx context.Context, actor *auth.User) ([]Todo, error) {
	if !auth.CanAdminister(actor) {
		return nil, ErrForbidden
	}
	return s.todos.ListAll(ctx)
}

// AdminDelete removes any item regardless of owner. Admin only.
// Unlike Delete, a missing item is reported truthfully.
func (s *Service) AdminDelete(ctx context.Context, actor *auth.User, id string) error {
	if !auth.CanAdminister(actor) {
		return ErrForbidden
	}

	item, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.todos.Delete(ctx, item.ID); err != nil {
		return err
	}

	s.notify(item.OwnerID, Event{Type: EventTodoDeleted, TodoID: item.ID})
	return nil
}

// getOwned loads an item and masks everything the actor does not own
// behind ErrTodoNotFound.
func (s *Service) getOwned(ctx context.Context, actor *auth.User, id string) (*Todo, error) {
	item, err := s.todos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTodoNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	if !auth.Owns(actor, item.OwnerID) {
		return nil, ErrTodoNotFound
	}
	return item, nil
}

func (s *Service) notify(ownerID string, event Event) {
	if s.events != nil {
		s.events.NotifyTodoEvent(ownerID, event)
	}
}

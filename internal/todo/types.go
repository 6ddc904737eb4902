package todo

import (
	"errors"
	"time"
)

// Todo is a single todo item. OwnerID is set at creation and never
// changes afterwards; completion state and text are mutable.
type Todo struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Sentinel errors for todo operations.
var (
	ErrTodoNotFound = errors.New("todo not found")
	ErrForbidden    = errors.New("operation not permitted")
	ErrInvalidInput = errors.New("invalid input")
)

// Event types published to the live feed.
const (
	EventTodoCreated = "todo.created"
	EventTodoUpdated = "todo.updated"
	EventTodoDeleted = "todo.deleted"
)

// Event describes a change to a todo item. Deleted events carry only
// the item ID.
type Event struct {
	Type   string `json:"type"`
	Todo   *Todo  `json:"todo,omitempty"`
	TodoID string `json:"todo_id,omitempty"`
}

// Notifier delivers todo events to the owner's live connections.
// Implementations must not block; the service calls it inline.
type Notifier interface {
	NotifyTodoEvent(ownerID string, event Event)
}

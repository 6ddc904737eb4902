package todo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for todo item persistence.
type Repository interface {
	Create(ctx context.Context, item *Todo) error
	GetByID(ctx context.Context, id string) (*Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Todo, error)
	ListAll(ctx context.Context) ([]Todo, error)
	Update(ctx context.Context, item *Todo) error
	Delete(ctx context.Context, id string) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite-backed todo repository.
func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new todo item. The ID is generated if empty.
func (r *SQLiteRepository) Create(ctx context.Context, item *Todo) error {
	if item.ID == "" {
		item.ID = "todo-" + uuid.NewString()[:8]
	}

	now := time.Now().UTC().Format(time.RFC3339)
	item.CreatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled
	item.UpdatedAt = item.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (id, owner_id, title, description, completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.OwnerID, item.Title, item.Description,
		boolToInt(item.Completed), now, now,
	)
	if err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}

	return nil
}

// GetByID retrieves a todo item by its unique ID.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Todo, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, owner_id, title, description, completed, created_at, updated_at FROM todos WHERE id = ?", id)
	return scanTodoFrom(row)
}

// ListByOwner returns all items owned by the given user, oldest first.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]Todo, error) {
	return r.list(ctx,
		"SELECT id, owner_id, title, description, completed, created_at, updated_at FROM todos WHERE owner_id = ? ORDER BY created_at ASC, id ASC", ownerID)
}

// ListAll returns every todo item across all owners, oldest first.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]Todo, error) {
	return r.list(ctx,
		"SELECT id, owner_id, title, description, completed, created_at, updated_at FROM todos ORDER BY created_at ASC, id ASC")
}

// Update modifies an item's title, description and completion state.
// OwnerID is deliberately not part of the statement: items cannot be
// reassigned.
func (r *SQLiteRepository) Update(ctx context.Context, item *Todo) error {
	now := time.Now().UTC().Format(time.RFC3339)
	item.UpdatedAt, _ = time.Parse(time.RFC3339, now) //nolint:errcheck // format is controlled

	result, err := r.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = ? WHERE id = ?`,
		item.Title, item.Description, boolToInt(item.Completed), now, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete removes a todo item by ID.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrTodoNotFound
	}
	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	var items []Todo
	for rows.Next() {
		item, err := scanTodoFrom(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}

	if items == nil {
		items = []Todo{}
	}
	return items, nil
}

// scanner is an interface for sql.Row and sql.Rows Scan methods.
type scanner interface {
	Scan(dest ...any) error
}

// scanTodoFrom scans a todo from any scanner (Row or Rows).
func scanTodoFrom(s scanner) (*Todo, error) {
	var item Todo
	var completed int
	var createdAt, updatedAt string

	err := s.Scan(&item.ID, &item.OwnerID, &item.Title, &item.Description,
		&completed, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("scanning todo: %w", err)
	}

	item.Completed = completed != 0
	item.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled
	item.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt) //nolint:errcheck // format is controlled

	return &item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

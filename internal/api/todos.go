package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todocore/internal/todo"
)

type createTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type updateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// handleListTodos returns the authenticated user's items.
func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	items, err := s.todos.ListMine(r.Context(), userFromContext(r.Context()))
	if err != nil {
		s.logger.Error("list todos failed", "error", err)
		writeInternalError(w, "failed to list todos")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"todos": items,
		"count": len(items),
	})
}

// handleCreateTodo adds a new item owned by the authenticated user.
func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	actor := userFromContext(r.Context())

	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	item, err := s.todos.Create(r.Context(), actor, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, todo.ErrInvalidInput) {
			writeBadRequest(w, err.Error())
			return
		}
		s.logger.Error("create todo failed", "error", err)
		writeInternalError(w, "failed to create todo")
		return
	}

	s.logger.Info("todo created", "todo_id", item.ID, "owner_id", actor.ID)
	writeJSON(w, http.StatusCreated, item)
}

// handleGetTodo returns one of the authenticated user's items. Items
// owned by someone else are indistinguishable from missing ones.
func (s *Server) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := s.todos.Get(r.Context(), userFromContext(r.Context()), id)
	if err != nil {
		if errors.Is(err, todo.ErrTodoNotFound) {
			writeNotFound(w, "todo not found")
			return
		}
		s.logger.Error("get todo failed", "todo_id", id, "error", err)
		writeInternalError(w, "failed to get todo")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// handleUpdateTodo modifies one of the authenticated user's items.
// Absent fields are left untouched.
func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	actor := userFromContext(r.Context())

	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	item, err := s.todos.Update(r.Context(), actor, id, req.Title, req.Description, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, todo.ErrTodoNotFound):
			writeNotFound(w, "todo not found")
		case errors.Is(err, todo.ErrInvalidInput):
			writeBadRequest(w, err.Error())
		default:
			s.logger.Error("update todo failed", "todo_id", id, "error", err)
			writeInternalError(w, "failed to update todo")
		}
		return
	}

	s.logger.Info("todo updated", "todo_id", id, "owner_id", actor.ID)
	writeJSON(w, http.StatusOK, item)
}

// handleDeleteTodo removes one of the authenticated user's items.
func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	actor := userFromContext(r.Context())

	if err := s.todos.Delete(r.Context(), actor, id); err != nil {
		if errors.Is(err, todo.ErrTodoNotFound) {
			writeNotFound(w, "todo not found")
			return
		}
		s.logger.Error("delete todo failed", "todo_id", id, "error", err)
		writeInternalError(w, "failed to delete todo")
		return
	}

	s.logger.Info("todo deleted", "todo_id", id, "owner_id", actor.ID)
	w.WriteHeader(http.StatusNoContent)
}

// ─── Admin handlers ────────────────────────────────────────────────

// handleAdminListTodos returns every item across all owners.
func (s *Server) handleAdminListTodos(w http.ResponseWriter, r *http.Request) {
	items, err := s.todos.ListAll(r.Context(), userFromContext(r.Context()))
	if err != nil {
		if errors.Is(err, todo.ErrForbidden) {
			writeForbidden(w, "admin access required")
			return
		}
		s.logger.Error("admin list todos failed", "error", err)
		writeInternalError(w, "failed to list todos")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"todos": items,
		"count": len(items),
	})
}

// handleAdminDeleteTodo removes any item regardless of owner.
func (s *Server) handleAdminDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	actor := userFromContext(r.Context())

	if err := s.todos.AdminDelete(r.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, todo.ErrTodoNotFound):
			writeNotFound(w, "todo not found")
		case errors.Is(err, todo.ErrForbidden):
			writeForbidden(w, "admin access required")
		default:
			s.logger.Error("admin delete todo failed", "todo_id", id, "error", err)
			writeInternalError(w, "failed to delete todo")
		}
		return
	}

	s.logger.Info("todo deleted by admin", "todo_id", id, "deleted_by", actor.ID)
	w.WriteHeader(http.StatusNoContent)
}

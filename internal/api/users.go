package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todocore/internal/auth"
)

type updateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// handleMe returns the authenticated user's account.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFromContext(r.Context()))
}

// handleUpdateProfile modifies the authenticated user's name and phone.
// Absent fields are left untouched; an explicit empty phone clears it.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	updated, err := s.accounts.UpdateProfile(r.Context(), user, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidInput) {
			writeBadRequest(w, err.Error())
			return
		}
		s.logger.Error("update profile failed", "user_id", user.ID, "error", err)
		writeInternalError(w, "failed to update profile")
		return
	}

	s.logger.Info("profile updated", "user_id", user.ID)
	writeJSON(w, http.StatusOK, updated)
}

// handleChangePassword rotates the authenticated user's password.
func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	err := s.accounts.ChangePassword(r.Context(), user, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeBadRequest(w, "current password is incorrect")
		case errors.Is(err, auth.ErrInvalidInput):
			writeBadRequest(w, err.Error())
		default:
			s.logger.Error("change password failed", "user_id", user.ID, "error", err)
			writeInternalError(w, "failed to change password")
		}
		return
	}

	s.logger.Info("password changed", "user_id", user.ID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "password_changed"})
}

// ─── Admin handlers ────────────────────────────────────────────────

// handleAdminListUsers returns all user accounts.
func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("list users failed", "error", err)
		writeInternalError(w, "failed to list users")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users": users,
		"count": len(users),
	})
}

// handleAdminDeleteUser removes a user account and, via cascade, all of
// its todos. Deleting your own account is refused so an admin cannot
// lock the instance out.
func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	actor := userFromContext(r.Context())

	if !auth.CanDeleteUser(actor, id) {
		writeForbidden(w, "cannot delete your own account")
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeNotFound(w, "user not found")
			return
		}
		s.logger.Error("delete user failed", "user_id", id, "error", err)
		writeInternalError(w, "failed to delete user")
		return
	}

	s.logger.Info("user deleted", "user_id", id, "deleted_by", actor.ID)
	w.WriteHeader(http.StatusNoContent)
}

package auth

import "testing"

func TestCanAdminister(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"admin", &User{ID: "usr-a", IsAdmin: true}, true},
		{"regular user", &User{ID: "usr-b", IsAdmin: false}, false},
		{"nil user", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdminister(tt.user); got != tt.want {
				t.Errorf("CanAdminister() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	admin := &User{ID: "usr-admin", IsAdmin: true}
	regular := &User{ID: "usr-regular", IsAdmin: false}

	tests := []struct {
		name     string
		actor    *User
		targetID string
		want     bool
	}{
		{"admin deletes other", admin, "usr-other", true},
		{"admin deletes self", admin, admin.ID, false},
		{"regular deletes other", regular, "usr-other", false},
		{"regular deletes self", regular, regular.ID, false},
		{"nil actor", nil, "usr-other", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanDeleteUser(tt.actor, tt.targetID); got != tt.want {
				t.Errorf("CanDeleteUser() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOwns(t *testing.T) {
	user := &User{ID: "usr-owner"}

	if !Owns(user, "usr-owner") {
		t.Error("Owns() should be true for matching owner id")
	}
	if Owns(user, "usr-other") {
		t.Error("Owns() should be false for a different owner id")
	}
	if Owns(nil, "usr-owner") {
		t.Error("Owns() should be false for nil user")
	}
}

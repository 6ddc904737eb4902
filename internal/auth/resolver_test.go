package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

const resolverTestSecret = "resolver-test-secret"

func TestResolver_ValidToken(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	user := seedTestUser(t, db, "alice@example.com", false)

	token, err := GenerateToken(user.ID, resolverTestSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	resolver := NewResolver(repo, resolverTestSecret)
	resolved, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if resolved.ID != user.ID {
		t.Errorf("Resolve() ID = %q, want %q", resolved.ID, user.ID)
	}
	if resolved.Email != "alice@example.com" {
		t.Errorf("Resolve() Email = %q, want alice@example.com", resolved.Email)
	}
}

func TestResolver_GarbageToken(t *testing.T) {
	db := testDB(t)
	resolver := NewResolver(NewUserRepository(db), resolverTestSecret)

	_, err := resolver.Resolve(context.Background(), "not-a-token")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Resolve() = %v, want ErrUnauthenticated", err)
	}
}

func TestResolver_DeletedAccount(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	user := seedTestUser(t, db, "gone@example.com", false)

	token, err := GenerateToken(user.ID, resolverTestSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Token is cryptographically valid but its subject no longer exists.
	resolver := NewResolver(repo, resolverTestSecret)
	_, err = resolver.Resolve(context.Background(), token)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Resolve() after account deletion = %v, want ErrUnauthenticated", err)
	}
}

func TestResolver_WrongSecret(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	user := seedTestUser(t, db, "bob@example.com", false)

	token, err := GenerateToken(user.ID, "some-other-secret", 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	resolver := NewResolver(repo, resolverTestSecret)
	if _, err := resolver.Resolve(context.Background(), token); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Resolve() with foreign token = %v, want ErrUnauthenticated", err)
	}
}

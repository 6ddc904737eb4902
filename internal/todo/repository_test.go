package todo

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRepository_CreateAndGet(t *testing.T) {
	db := testDB(t)
	owner := seedTestUser(t, db, "owner@example.com", false)
	repo := NewRepository(db)

	item := &Todo{
		OwnerID:     owner.ID,
		Title:       "buy milk",
		Description: "semi-skimmed",
	}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !strings.HasPrefix(item.ID, "todo-") {
		t.Errorf("generated ID = %q, want todo- prefix", item.ID)
	}

	got, err := repo.GetByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "buy milk" || got.Description != "semi-skimmed" || got.OwnerID != owner.ID {
		t.Errorf("GetByID() = %+v, want original fields", got)
	}
	if got.Completed {
		t.Error("new item should not be completed")
	}
}

func TestRepository_GetNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db)

	if _, err := repo.GetByID(context.Background(), "todo-missing"); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("GetByID() = %v, want ErrTodoNotFound", err)
	}
}

func TestRepository_ListByOwner(t *testing.T) {
	db := testDB(t)
	alice := seedTestUser(t, db, "alice@example.com", false)
	bob := seedTestUser(t, db, "bob@example.com", false)
	repo := NewRepository(db)

	for _, title := range []string{"one", "two"} {
		if err := repo.Create(context.Background(), &Todo{OwnerID: alice.ID, Title: title}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := repo.Create(context.Background(), &Todo{OwnerID: bob.ID, Title: "three"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	aliceItems, err := repo.ListByOwner(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(aliceItems) != 2 {
		t.Errorf("ListByOwner(alice) = %d items, want 2", len(aliceItems))
	}
	for _, item := range aliceItems {
		if item.OwnerID != alice.ID {
			t.Errorf("ListByOwner(alice) returned item owned by %q", item.OwnerID)
		}
	}

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListAll() = %d items, want 3", len(all))
	}

	empty, err := repo.ListByOwner(context.Background(), "usr-nobody")
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("ListByOwner() for unknown owner = %v, want empty slice", empty)
	}
}

func TestRepository_Update(t *testing.T) {
	db := testDB(t)
	owner := seedTestUser(t, db, "owner@example.com", false)
	repo := NewRepository(db)

	item := &Todo{OwnerID: owner.ID, Title: "draft"}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	item.Title = "final"
	item.Completed = true
	if err := repo.Update(context.Background(), item); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := repo.GetByID(context.Background(), item.ID)
	if got.Title != "final" || !got.Completed {
		t.Errorf("after update got %+v", got)
	}
	if got.OwnerID != owner.ID {
		t.Error("update must not change the owner")
	}

	missing := &Todo{ID: "todo-missing", Title: "x"}
	if err := repo.Update(context.Background(), missing); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Update() on missing item = %v, want ErrTodoNotFound", err)
	}
}

func TestRepository_Delete(t *testing.T) {
	db := testDB(t)
	owner := seedTestUser(t, db, "owner@example.com", false)
	repo := NewRepository(db)

	item := &Todo{OwnerID: owner.ID, Title: "temp"}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(context.Background(), item.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("GetByID() after delete = %v, want ErrTodoNotFound", err)
	}

	if err := repo.Delete(context.Background(), "todo-missing"); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Delete() on missing item = %v, want ErrTodoNotFound", err)
	}
}

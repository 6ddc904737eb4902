package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"todocore/internal/todo"
)

// createTodoVia posts a todo through the API and returns it.
func createTodoVia(t *testing.T, router http.Handler, token, title string) todo.Todo {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/todos", token,
		`{"title":"`+title+`","description":"test item"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create todo status = %d, body: %s", w.Code, w.Body.String())
	}

	var item todo.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return item
}

func TestHandleCreateAndListTodos(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	createTestAccount(t, srv, "alice@example.com", false)
	createTestAccount(t, srv, "bob@example.com", false)
	aliceToken := loginToken(t, router, "alice@example.com", "test-password")
	bobToken := loginToken(t, router, "bob@example.com", "test-password")

	createTodoVia(t, router, aliceToken, "hers")
	createTodoVia(t, router, bobToken, "his")

	// Each user lists only their own items.
	w := doJSON(t, router, http.MethodGet, "/api/v1/todos", aliceToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Todos []todo.Todo `json:"todos"`
		Count int         `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 || resp.Todos[0].Title != "hers" {
		t.Errorf("list = %+v, want only alice's item", resp)
	}

	// Empty title is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/v1/todos", aliceToken, `{"title":""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty title status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleTodo_OwnershipMasking(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	createTestAccount(t, srv, "alice@example.com", false)
	createTestAccount(t, srv, "bob@example.com", false)
	aliceToken := loginToken(t, router, "alice@example.com", "test-password")
	bobToken := loginToken(t, router, "bob@example.com", "test-password")

	item := createTodoVia(t, router, aliceToken, "private")

	// Another user's probe is indistinguishable from a missing item.
	other := doJSON(t, router, http.MethodGet, "/api/v1/todos/"+item.ID, bobToken, "")
	missing := doJSON(t, router, http.MethodGet, "/api/v1/todos/todo-missing", bobToken, "")
	if other.Code != http.StatusNotFound {
		t.Errorf("non-owner get status = %d, want %d", other.Code, http.StatusNotFound)
	}
	if other.Body.String() != missing.Body.String() {
		t.Error("non-owner and missing responses must be identical")
	}

	w := doJSON(t, router, http.MethodPut, "/api/v1/todos/"+item.ID, bobToken, `{"completed":true}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("non-owner update status = %d, want %d", w.Code, http.StatusNotFound)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/v1/todos/"+item.ID, bobToken, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("non-owner delete status = %d, want %d", w.Code, http.StatusNotFound)
	}

	// The owner still sees the unmodified item.
	w = doJSON(t, router, http.MethodGet, "/api/v1/todos/"+item.ID, aliceToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("owner get status = %d", w.Code)
	}
}

func TestHandleUpdateTodo(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	createTestAccount(t, srv, "alice@example.com", false)
	token := loginToken(t, router, "alice@example.com", "test-password")

	item := createTodoVia(t, router, token, "draft")

	// Only the provided field changes.
	w := doJSON(t, router, http.MethodPut, "/api/v1/todos/"+item.ID, token, `{"completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body: %s", w.Code, w.Body.String())
	}

	var got todo.Todo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Completed || got.Title != "draft" || got.Description != "test item" {
		t.Errorf("update result = %+v, want only completed changed", got)
	}

	w = doJSON(t, router, http.MethodPut, "/api/v1/todos/"+item.ID, token, `{"title":""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty title status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleDeleteTodo(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	createTestAccount(t, srv, "alice@example.com", false)
	token := loginToken(t, router, "alice@example.com", "test-password")

	item := createTodoVia(t, router, token, "temp")

	w := doJSON(t, router, http.MethodDelete, "/api/v1/todos/"+item.ID, token, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, body: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/todos/"+item.ID, token, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandleAdminTodos(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	createTestAccount(t, srv, "admin@example.com", true)
	createTestAccount(t, srv, "alice@example.com", false)
	adminToken := loginToken(t, router, "admin@example.com", "test-password")
	aliceToken := loginToken(t, router, "alice@example.com", "test-password")

	item := createTodoVia(t, router, aliceToken, "hers")

	// Admin sees every item.
	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/todos", adminToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("admin list status = %d, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Todos []todo.Todo `json:"todos"`
		Count int         `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 || resp.Todos[0].OwnerID == "" {
		t.Errorf("admin list = %+v", resp)
	}

	// Regular user is rejected by the admin gate.
	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/todos", aliceToken, "")
	if w.Code != http.StatusForbidden {
		t.Errorf("regular list status = %d, want %d", w.Code, http.StatusForbidden)
	}

	// Admin deletes any item; missing items report a true 404.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/todos/"+item.ID, adminToken, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("admin delete status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/todos/"+item.ID, adminToken, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("admin delete missing status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

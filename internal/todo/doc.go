// Package todo implements todo item persistence and the owner-scoped
// operations on top of it.
//
// Every operation takes the already-authenticated actor and enforces
// ownership before touching a row. Non-owners get ErrTodoNotFound for
// items they do not own, so probing cannot distinguish "exists but not
// yours" from "does not exist". Administrators see the true state and
// may list or delete any item through the Admin* operations.
package todo

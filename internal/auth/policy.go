package auth

// Access policy. Pure rules over already-authenticated users; no I/O.
// Handlers translate a false answer into 403 for admin surfaces and
// into 404 for resource ownership, so non-owners cannot distinguish
// "exists but not yours" from "does not exist".

// CanAdminister reports whether the user may use the administrative
// surface (listing all users and todos, deleting other accounts).
func CanAdminister(user *User) bool {
	return user != nil && user.IsAdmin
}

// CanDeleteUser reports whether actor may delete the target account.
// Only administrators may delete accounts, and never their own:
// the last admin cannot lock everyone out by removing itself.
func CanDeleteUser(actor *User, targetID string) bool {
	return CanAdminister(actor) && actor.ID != targetID
}

// Owns reports whether the user owns the resource with the given owner id.
func Owns(user *User, ownerID string) bool {
	return user != nil && user.ID == ownerID
}

// Package auth provides authentication and authorisation for the todo service.
//
// It implements:
//   - Argon2id password hashing in PHC string format
//   - HS256 JWT bearer tokens carrying the account id and expiry
//   - A resolver mapping raw bearer tokens to active accounts
//   - The access policy gating every resource operation: ownership checks,
//     admin escalation, and the self-deletion guard
//   - Account management: registration, login, password change, profile update
//
// Tokens are stateless and self-contained; there is no session table and no
// revocation — a token is valid until its embedded expiry. The signing
// secret is static configuration, so key rotation is unsupported.
//
// Concurrent mutations of the same account are not ordered relative to each
// other: last write wins.
package auth

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Demo account credentials. Seeding is off by default and only meant
// for local development; see bootstrap.seed_demo_accounts.
const (
	demoAdminEmail = "admin@admin.com"
	demoUserEmail  = "user@user.com"
)

// SeedDemoAccounts creates the two demo accounts (one admin, one
// regular user) if they do not already exist. It is idempotent: an
// account that is already present is left untouched, so repeated boots
// never reset a changed password.
func SeedDemoAccounts(ctx context.Context, userRepo UserRepository, logger *slog.Logger) error {
	accounts := []struct {
		name     string
		email    string
		password string
		isAdmin  bool
	}{
		{name: "Admin", email: demoAdminEmail, password: "admin", isAdmin: true},
		{name: "User", email: demoUserEmail, password: "user", isAdmin: false},
	}

	for _, a := range accounts {
		if _, err := userRepo.GetByEmail(ctx, a.email); err == nil {
			logger.Debug("demo account exists, skipping", "email", a.email)
			continue
		} else if !errors.Is(err, ErrUserNotFound) {
			return fmt.Errorf("checking demo account %s: %w", a.email, err)
		}

		hash, err := HashPassword(a.password)
		if err != nil {
			return fmt.Errorf("hashing demo password: %w", err)
		}

		user := &User{
			Name:         a.name,
			Email:        a.email,
			PasswordHash: hash,
			IsAdmin:      a.isAdmin,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, ErrEmailExists) {
				continue
			}
			return fmt.Errorf("creating demo account %s: %w", a.email, err)
		}

		logger.Warn("demo account created",
			"email", a.email,
			"is_admin", a.isAdmin,
			"action_required", "disable seeding outside development",
		)
	}

	return nil
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned by Create when the unique email index rejects the
// insert. Registration relies on this instead of a check-then-insert pair, so
// there is no race window between duplicate registrations.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by the hex form of their object id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user, assigning its ID. Returns ErrEmailTaken
	// when the email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the mutable fields of an existing user.
	Update(ctx context.Context, user *entity.User) error
}

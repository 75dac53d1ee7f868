package identity

import (
	"context"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines persistence for accounts
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByProfile(ctx context.Context, profileID uuid.UUID) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*User, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

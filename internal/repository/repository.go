package repository

import (
	"alcyxob/exercise-tracker/internal/domain" // Import our defined domain models
	"context"                                  // Standard for request-scoped deadlines, cancellation signals, etc.

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// List returns every user in storage order.
	List(ctx context.Context) ([]domain.User, error)
	// AppendExercise pushes the exercise onto the user's log and returns the
	// updated user in one indivisible step. Unknown ids yield ErrNotFound.
	AppendExercise(ctx context.Context, userID primitive.ObjectID, exercise domain.Exercise) (*domain.User, error)
}

// ExerciseRepository defines the interface for the standalone exercise records.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	// GetByID reads a standalone record back. No route serves it; it is
	// how tests check that AddExercise stored the standalone copy.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
}

// Package memory is an in-process implementation of the repository
// interfaces. It backs the "memory" database driver and the test suites.
package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds users and standalone exercises. All reads hand out copies.
type Store struct {
	mu        sync.RWMutex
	users     []domain.User
	userIndex map[primitive.ObjectID]int
	exercises map[primitive.ObjectID]domain.Exercise
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		userIndex: make(map[primitive.ObjectID]int),
		exercises: make(map[primitive.ObjectID]domain.Exercise),
	}
}

// Users returns a repository.UserRepository view of the store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Exercises returns a repository.ExerciseRepository view of the store.
func (s *Store) Exercises() repository.ExerciseRepository { return &exerciseRepo{s} }

func cloneUser(u domain.User) domain.User {
	u.Log = u.LogCopy()
	return u
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	if user.Username == "" {
		return primitive.NilObjectID, errors.New("username is required")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Mirrors the unique username index of the mongo backend.
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	if user.Log == nil {
		user.Log = []domain.Exercise{}
	}

	r.s.userIndex[user.ID] = len(r.s.users)
	r.s.users = append(r.s.users, cloneUser(*user))
	return user.ID, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			out := cloneUser(u)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.userIndex[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneUser(r.s.users[i])
	return &out, nil
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.User, len(r.s.users))
	for i, u := range r.s.users {
		out[i] = cloneUser(u)
	}
	return out, nil
}

func (r *userRepo) AppendExercise(ctx context.Context, userID primitive.ObjectID, exercise domain.Exercise) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.userIndex[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.s.users[i].Log = append(r.s.users[i].Log, exercise)
	out := cloneUser(r.s.users[i])
	return &out, nil
}

type exerciseRepo struct{ s *Store }

func (r *exerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}
	if exercise.Description == "" || exercise.Date == "" {
		return primitive.NilObjectID, errors.New("exercise description and date are required")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	r.s.exercises[exercise.ID] = *exercise
	return exercise.ID, nil
}

func (r *exerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ex, ok := r.s.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ex, nil
}

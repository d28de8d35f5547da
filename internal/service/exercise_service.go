package service

import (
	"alcyxob/exercise-tracker/internal/datefmt"
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseEntry is the result of logging one exercise: the owner plus the
// exercise as stored. It deliberately leaves out the rest of the log.
type ExerciseEntry struct {
	UserID   primitive.ObjectID
	Username string
	Exercise domain.Exercise
}

// LogQuery narrows a log read. Empty From/To and a nil Limit mean "no bound".
type LogQuery struct {
	From  string
	To    string
	Limit *int
}

// ExerciseService logs exercises against users and reads logs back.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date string) (*ExerciseEntry, error)
	GetLog(ctx context.Context, userID primitive.ObjectID, q LogQuery) (*domain.User, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	now          Clock
}

// NewExerciseService creates a new instance of exerciseService.
// A nil clock means time.Now in the local zone.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository, now Clock) ExerciseService {
	if now == nil {
		now = time.Now
	}
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          now,
	}
}

// AddExercise normalizes the date, stores the exercise on its own and then
// appends it to the user's log.
func (s *exerciseService) AddExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date string) (*ExerciseEntry, error) {
	exercise := &domain.Exercise{
		Description: description,
		Duration:    duration,
		Date:        datefmt.Normalize(date, s.now()),
	}
	if err := validate.Struct(exercise); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}

	user, err := s.userRepo.AppendExercise(ctx, userID, *exercise)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &ExerciseEntry{
		UserID:   user.ID,
		Username: user.Username,
		Exercise: *exercise,
	}, nil
}

// GetLog reads the user and returns a copy whose log is filtered by
// q.From/q.To and cut to q.Limit. The stored record is left alone.
func (s *exerciseService) GetLog(ctx context.Context, userID primitive.ObjectID, q LogQuery) (*domain.User, error) {
	if q.Limit != nil && *q.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	view := *user
	view.Log = FilterLog(user.LogCopy(), q, s.now())
	return &view, nil
}

package service

import (
	"alcyxob/exercise-tracker/internal/repository/memory"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestServices(t *testing.T) (UserService, ExerciseService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewUserService(store.Users()),
		NewExerciseService(store.Users(), store.Exercises(), fixedClock),
		store
}

func intPtr(n int) *int { return &n }

func TestAddExercise_NormalizesDate(t *testing.T) {
	users, exercises, store := newTestServices(t)
	ctx := context.Background()
	alice, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	entry, err := exercises.AddExercise(ctx, alice.ID, "run", 30, "2023-01-10")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, entry.UserID)
	assert.Equal(t, "alice", entry.Username)
	assert.Equal(t, "run", entry.Exercise.Description)
	assert.Equal(t, 30, entry.Exercise.Duration)
	assert.Equal(t, "Tue Jan 10 2023", entry.Exercise.Date)

	// the standalone record exists too
	stored, err := store.Exercises().GetByID(ctx, entry.Exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Exercise, *stored)
}

func TestAddExercise_DefaultsToToday(t *testing.T) {
	users, exercises, _ := newTestServices(t)
	ctx := context.Background()
	alice, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	entry, err := exercises.AddExercise(ctx, alice.ID, "swim", 20, "")
	require.NoError(t, err)
	assert.Equal(t, "Mon Oct 19 2026", entry.Exercise.Date)
}

func TestAddExercise_UnknownUser(t *testing.T) {
	_, exercises, _ := newTestServices(t)

	_, err := exercises.AddExercise(context.Background(), primitive.NewObjectID(), "run", 30, "2023-01-10")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddExercise_Validation(t *testing.T) {
	users, exercises, _ := newTestServices(t)
	ctx := context.Background()
	alice, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = exercises.AddExercise(ctx, alice.ID, "", 30, "2023-01-10")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = exercises.AddExercise(ctx, alice.ID, "run", 0, "2023-01-10")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestAddExercise_PersistenceFailure(t *testing.T) {
	boom := errors.New("write rejected")
	store := memory.NewStore()
	svc := NewExerciseService(failingUserRepo{err: boom}, store.Exercises(), fixedClock)

	_, err := svc.AddExercise(context.Background(), primitive.NewObjectID(), "run", 30, "2023-01-10")
	assert.ErrorIs(t, err, boom)
}

func TestAddThenGetLog_RoundTrip(t *testing.T) {
	users, exercises, _ := newTestServices(t)
	ctx := context.Background()
	alice, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	entry, err := exercises.AddExercise(ctx, alice.ID, "run", 30, "2023-01-10")
	require.NoError(t, err)

	view, err := exercises.GetLog(ctx, alice.ID, LogQuery{})
	require.NoError(t, err)
	require.Len(t, view.Log, 1)
	assert.Equal(t, entry.Exercise.Description, view.Log[0].Description)
	assert.Equal(t, entry.Exercise.Duration, view.Log[0].Duration)
	assert.Equal(t, entry.Exercise.Date, view.Log[0].Date)
}

func TestGetLog_FilterAndLimit(t *testing.T) {
	users, exercises, store := newTestServices(t)
	ctx := context.Background()
	alice, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)
	for _, d := range []string{"2023-01-01", "2023-01-10", "2023-02-01", "2023-03-01"} {
		_, err := exercises.AddExercise(ctx, alice.ID, "ex "+d, 10, d)
		require.NoError(t, err)
	}

	view, err := exercises.GetLog(ctx, alice.ID, LogQuery{From: "2023-01-05", To: "2023-02-28", Limit: intPtr(1)})
	require.NoError(t, err)
	require.Len(t, view.Log, 1)
	assert.Equal(t, "ex 2023-01-10", view.Log[0].Description)

	// the stored log is untouched
	stored, err := store.Users().GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Log, 4)
}

func TestGetLog_UnknownUser(t *testing.T) {
	_, exercises, _ := newTestServices(t)

	_, err := exercises.GetLog(context.Background(), primitive.NewObjectID(), LogQuery{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetLog_NegativeLimit(t *testing.T) {
	users, exercises, _ := newTestServices(t)
	ctx := context.Background()
	alice, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = exercises.GetLog(ctx, alice.ID, LogQuery{Limit: intPtr(-1)})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

package memory

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepo_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	u := &domain.User{Username: "alice"}
	id, err := users.Create(ctx, u)
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Equal(t, id, u.ID)
	assert.NotNil(t, u.Log)

	byName, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)

	byID, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = users.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = users.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	_, err := users.Create(ctx, &domain.User{Username: "alice"})
	require.NoError(t, err)
	_, err = users.Create(ctx, &domain.User{Username: "alice"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserRepo_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()
	for _, name := range []string{"c", "a", "b"} {
		_, err := users.Create(ctx, &domain.User{Username: name})
		require.NoError(t, err)
	}

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Username)
	assert.Equal(t, "a", all[1].Username)
	assert.Equal(t, "b", all[2].Username)
}

func TestUserRepo_AppendExercise(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()
	id, err := users.Create(ctx, &domain.User{Username: "alice"})
	require.NoError(t, err)

	ex := domain.Exercise{Description: "run", Duration: 30, Date: "Tue Jan 10 2023"}
	updated, err := users.AppendExercise(ctx, id, ex)
	require.NoError(t, err)
	require.Len(t, updated.Log, 1)
	assert.Equal(t, ex, updated.Log[0])

	_, err = users.AppendExercise(ctx, primitive.NewObjectID(), ex)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()
	id, err := users.Create(ctx, &domain.User{Username: "alice"})
	require.NoError(t, err)
	_, err = users.AppendExercise(ctx, id, domain.Exercise{Description: "run", Duration: 30, Date: "Tue Jan 10 2023"})
	require.NoError(t, err)

	got, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	got.Log[0].Description = "mutated"
	got.Log = got.Log[:0]

	again, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, again.Log, 1)
	assert.Equal(t, "run", again.Log[0].Description)
}

func TestUserRepo_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()
	id, err := users.Create(ctx, &domain.User{Username: "alice"})
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := users.AppendExercise(ctx, id, domain.Exercise{
				Description: fmt.Sprintf("ex-%d", i), Duration: i + 1, Date: "Tue Jan 10 2023",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got.Log, n)
}

func TestUserRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Users().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExerciseRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	exercises := NewStore().Exercises()

	ex := &domain.Exercise{Description: "swim", Duration: 45, Date: "Wed May 17 2023"}
	id, err := exercises.Create(ctx, ex)
	require.NoError(t, err)
	assert.Equal(t, id, ex.ID)

	got, err := exercises.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, *ex, *got)

	_, err = exercises.Create(ctx, &domain.Exercise{Duration: 5, Date: "Wed May 17 2023"})
	assert.Error(t, err)

	_, err = exercises.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

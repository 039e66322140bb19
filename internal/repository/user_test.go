package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/storage/flatfile"
)

func newUserRepo(t *testing.T) *UserRepository {
	t.Helper()
	store := flatfile.New(t.TempDir())
	require.NoError(t, store.Initialize())
	return NewUserRepo(store)
}

func TestUserRepository_SeedUsersPresent(t *testing.T) {
	repo := newUserRepo(t)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 4)

	var individual, dept int
	for _, u := range users {
		switch u.Role {
		case domain.RoleIndividual:
			individual++
		case domain.RoleDepartment:
			dept++
		}
	}
	assert.Equal(t, 2, individual)
	assert.Equal(t, 2, dept)
}

func TestUserRepository_Create_DuplicateID(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	user := &domain.User{ID: "1", Name: "Clone", Department: "IT", Role: domain.RoleIndividual, Email: "clone@example.com"}
	err := repo.Create(ctx, user)
	require.ErrorIs(t, err, domain.ErrIDTaken)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestUserRepository_Update_Merge(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	department := "Finance"
	updated, err := repo.Update(ctx, "1", domain.UpdateUserInput{Department: &department})
	require.NoError(t, err)
	assert.Equal(t, "Finance", updated.Department)
	assert.NotEmpty(t, updated.Name)
	assert.NotEmpty(t, updated.Email)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo := newUserRepo(t)

	name := "Nobody"
	_, err := repo.Update(context.Background(), "missing", domain.UpdateUserInput{Name: &name})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "1"))

	_, err := repo.GetByID(ctx, "1")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	err = repo.Delete(ctx, "1")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demcare-service/internal/domain/entities"
)

func newTestUser(t *testing.T, email string) *entities.ValidatedUser {
	t.Helper()
	user, err := entities.NewValidatedUser(entities.NewUser("Mridul", 72, entities.GenderMale, email, "9876543210"))
	require.NoError(t, err)
	return user
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser(t, "a@x.com"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "a@x.com", created.Email)
	assert.False(t, created.IsVerified)
	assert.Empty(t, created.Tokens)
	assert.Empty(t, created.Todos)

	byID, err := repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, created.Id, byID.Id)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.Id, byEmail.Id)

	missing, err := repo.FindById(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryEmailUnique(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestUser(t, "a@x.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestUser(t, "a@x.com"))
	assert.Error(t, err)
}

func TestUserRepositoryMarkVerified(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser(t, "a@x.com"))
	require.NoError(t, err)

	require.NoError(t, repo.MarkVerified(ctx, created.Id))

	user, err := repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
}

func TestUserRepositoryAppendTokenCapsList(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser(t, "a@x.com"))
	require.NoError(t, err)

	var evicted []string
	for i := 0; i < 5; i++ {
		out, err := repo.AppendToken(ctx, created.Id, fmt.Sprintf("token-%d", i), 3)
		require.NoError(t, err)
		evicted = append(evicted, out...)
	}

	user, err := repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"token-2", "token-3", "token-4"}, user.Tokens)
	assert.Equal(t, []string{"token-0", "token-1"}, evicted)

	has, err := repo.HasToken(ctx, created.Id, "token-4")
	require.NoError(t, err)
	assert.True(t, has)

	// Evicted tokens are revoked.
	has, err = repo.HasToken(ctx, created.Id, "token-0")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestUserRepositoryAppendTokenUnlimited(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser(t, "a@x.com"))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		evicted, err := repo.AppendToken(ctx, created.Id, fmt.Sprintf("token-%d", i), 0)
		require.NoError(t, err)
		assert.Empty(t, evicted)
	}

	user, err := repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	assert.Len(t, user.Tokens, 4)
}

func TestUserRepositoryPermanentLocation(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	entity := entities.NewUser("Mridul", 72, entities.GenderMale, "a@x.com", "9876543210")
	entity.PermanentLocation = "221B Baker Street, London"
	validated, err := entities.NewValidatedUser(entity)
	require.NoError(t, err)

	created, err := repo.Create(ctx, validated)
	require.NoError(t, err)
	assert.Equal(t, "221B Baker Street, London", created.PermanentLocation)

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "221B Baker Street, London", found.PermanentLocation)
}

func TestUserRepositoryReplaceEmergencyContacts(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser(t, "a@x.com"))
	require.NoError(t, err)

	first := []entities.EmergencyContact{
		{ContactName: "Asha", ContactNumber: "111"},
		{ContactName: "Ravi", ContactNumber: "222", ContactEmail: "ravi@x.com"},
	}
	require.NoError(t, repo.ReplaceEmergencyContacts(ctx, created.Id, first))

	user, err := repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	require.Len(t, user.EmergencyContacts, 2)
	assert.Equal(t, "ravi@x.com", user.EmergencyContacts[1].ContactEmail)

	second := []entities.EmergencyContact{
		{ContactName: "Meera", ContactNumber: "333"},
	}
	require.NoError(t, repo.ReplaceEmergencyContacts(ctx, created.Id, second))

	user, err = repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	require.Len(t, user.EmergencyContacts, 1)
	assert.Equal(t, "Meera", user.EmergencyContacts[0].ContactName)
}

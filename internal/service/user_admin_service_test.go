package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/repository"
	"github.com/KEYAJANI/demiland-sub000/internal/security"
)

func newUserAdminService(t *testing.T) (*UserAdminService, *MockUserStore, *MockSessionStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := NewMockUserStore(ctrl)
	sessions := NewMockSessionStore(ctrl)
	return NewUserAdminService(users, sessions, testConfig(), zerolog.Nop()), users, sessions
}

func TestAdminCreateDefaultsToUserRole(t *testing.T) {
	svc, users, _ := newUserAdminService(t)
	ctx := context.Background()

	var created models.User
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) error {
		created = u
		return nil
	})

	_, err := svc.Create(ctx, CreateUserInput{
		Email:     "staff@demiland.co",
		Password:  "s3cret-pass",
		FirstName: "Sam",
		LastName:  "Lee",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, created.Role)
	assert.True(t, created.IsActive)
}

func TestAdminCreateRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newUserAdminService(t)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Email:     "staff@demiland.co",
		Password:  "s3cret-pass",
		FirstName: "Sam",
		LastName:  "Lee",
		Role:      models.UserRole("owner"),
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAdminCreateEmailTaken(t *testing.T) {
	svc, users, _ := newUserAdminService(t)
	ctx := context.Background()

	users.EXPECT().Create(ctx, gomock.Any()).Return(repository.ErrEmailTaken)

	_, err := svc.Create(ctx, CreateUserInput{
		Email:     "staff@demiland.co",
		Password:  "s3cret-pass",
		FirstName: "Sam",
		LastName:  "Lee",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAdminUpdateRehashesPassword(t *testing.T) {
	svc, users, _ := newUserAdminService(t)
	ctx := context.Background()

	var update models.UserUpdate
	users.EXPECT().Update(ctx, "user-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, u models.UserUpdate) error {
		update = u
		return nil
	})
	users.EXPECT().GetByID(ctx, "user-1").Return(models.User{ID: "user-1"}, nil)

	password := "brand-new-pass"
	_, err := svc.Update(ctx, "user-1", AdminUserUpdate{Password: &password})
	require.NoError(t, err)

	require.NotEmpty(t, update.PasswordHash)
	ok, err := security.VerifyPassword(password, update.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAdminDeactivateRevokesSessions(t *testing.T) {
	svc, users, sessions := newUserAdminService(t)
	ctx := context.Background()

	users.EXPECT().Update(ctx, "user-1", gomock.Any()).Return(nil)
	sessions.EXPECT().DeleteByUser(ctx, "user-1").Return(nil)
	users.EXPECT().GetByID(ctx, "user-1").Return(models.User{ID: "user-1", IsActive: false}, nil)

	inactive := false
	user, err := svc.Update(ctx, "user-1", AdminUserUpdate{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestAdminUpdateEmpty(t *testing.T) {
	svc, _, _ := newUserAdminService(t)

	_, err := svc.Update(context.Background(), "user-1", AdminUserUpdate{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestAdminDeleteSelfBlocked(t *testing.T) {
	svc, _, _ := newUserAdminService(t)
	// No store expectation: the guard fires before any persistence call.

	err := svc.Delete(context.Background(), "admin-1", "admin-1")
	assert.ErrorIs(t, err, ErrSelfDelete)
}

func TestAdminDeleteCascades(t *testing.T) {
	svc, users, _ := newUserAdminService(t)
	ctx := context.Background()

	users.EXPECT().DeleteCascade(ctx, "user-2").Return(nil)

	assert.NoError(t, svc.Delete(ctx, "admin-1", "user-2"))
}

func TestChangeRole(t *testing.T) {
	svc, users, _ := newUserAdminService(t)
	ctx := context.Background()

	users.EXPECT().Update(ctx, "user-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, u models.UserUpdate) error {
		require.NotNil(t, u.Role)
		assert.Equal(t, models.UserRoleAdmin, *u.Role)
		return nil
	})
	users.EXPECT().GetByID(ctx, "user-1").Return(models.User{ID: "user-1", Role: models.UserRoleAdmin}, nil)

	user, err := svc.ChangeRole(ctx, "user-1", models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, user.Role)
}

func TestChangeRoleInvalid(t *testing.T) {
	svc, _, _ := newUserAdminService(t)

	_, err := svc.ChangeRole(context.Background(), "user-1", models.UserRole("root"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/models"
	"github.com/gracechapel/pastor-mobile-api/internal/password"
)

type userFixture struct {
	svc        *UserService
	users      *memUserStore
	mail       *recordingMailer
	superadmin *models.User
	admin      *models.User
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	users := newMemUserStore()
	mail := &recordingMailer{}

	superadmin := &models.User{
		Email: "root@gracechapel.org", Role: models.RoleSuperadmin, IsActive: true,
	}
	require.NoError(t, users.Create(context.Background(), superadmin))
	admin := &models.User{
		Email: "admin@gracechapel.org", Role: models.RoleAdmin, IsActive: true,
	}
	require.NoError(t, users.Create(context.Background(), admin))

	return &userFixture{
		svc:        NewUserService(users, mail),
		users:      users,
		mail:       mail,
		superadmin: superadmin,
		admin:      admin,
	}
}

func TestProvisionAdmin(t *testing.T) {
	f := newUserFixture(t)

	resp, err := f.svc.Provision(context.Background(), f.superadmin, models.RoleAdmin, &dto.CreateUserRequest{
		Email:     "New.Admin@GraceChapel.org",
		FirstName: "Ruth",
		LastName:  "Boaz",
	})
	require.NoError(t, err)

	assert.Equal(t, "new.admin@gracechapel.org", resp.User.Email)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.True(t, resp.User.IsActive)
	require.NotNil(t, resp.User.CreatedByID)
	assert.Equal(t, f.superadmin.ID, *resp.User.CreatedByID)
	assert.True(t, resp.CredentialsSent)

	// The temporary password was mailed and actually opens the account.
	require.Len(t, f.mail.credentials, 1)
	sent := f.mail.credentials[0]
	assert.Equal(t, "new.admin@gracechapel.org", sent.to)
	stored, err := f.users.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.True(t, password.Compare(stored.PasswordHash, sent.tempPassword))
}

func TestProvisionHierarchy(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	// An admin provisions ministry roles, never other admins.
	for _, role := range []models.Role{models.RoleTeaching, models.RolePublishing, models.RoleSmallGroups} {
		_, err := f.svc.Provision(ctx, f.admin, role, &dto.CreateUserRequest{
			Email: string(role) + "@gracechapel.org", FirstName: "A", LastName: "B",
		})
		assert.NoError(t, err, role)
	}
	_, err := f.svc.Provision(ctx, f.admin, models.RoleAdmin, &dto.CreateUserRequest{
		Email: "peer@gracechapel.org", FirstName: "A", LastName: "B",
	})
	assert.ErrorIs(t, err, ErrForbidden)

	// The superadmin provisions admins, never ministry roles directly.
	_, err = f.svc.Provision(ctx, f.superadmin, models.RoleTeaching, &dto.CreateUserRequest{
		Email: "skip@gracechapel.org", FirstName: "A", LastName: "B",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestProvisionDuplicateEmail(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Provision(context.Background(), f.superadmin, models.RoleAdmin, &dto.CreateUserRequest{
		Email: "ADMIN@gracechapel.org", FirstName: "A", LastName: "B",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Empty(t, f.mail.credentials, "no mail for a rejected account")
}

func TestProvisionSurvivesMailFailure(t *testing.T) {
	f := newUserFixture(t)
	f.mail.fail = true

	resp, err := f.svc.Provision(context.Background(), f.superadmin, models.RoleAdmin, &dto.CreateUserRequest{
		Email: "new@gracechapel.org", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)
	assert.False(t, resp.CredentialsSent)

	// The account exists and credentials can be resent later.
	f.mail.fail = false
	require.NoError(t, f.svc.ResendCredentials(context.Background(), f.superadmin, models.RoleAdmin, resp.User.ID))
	assert.Len(t, f.mail.credentials, 1)
}

func TestResendCredentialsRotatesPassword(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Provision(ctx, f.superadmin, models.RoleAdmin, &dto.CreateUserRequest{
		Email: "new@gracechapel.org", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)
	firstHash := mustGet(t, f, resp.User.ID).PasswordHash

	require.NoError(t, f.svc.ResendCredentials(ctx, f.superadmin, models.RoleAdmin, resp.User.ID))

	require.Len(t, f.mail.credentials, 2)
	second := mustGet(t, f, resp.User.ID)
	assert.NotEqual(t, firstHash, second.PasswordHash)
	assert.True(t, password.Compare(second.PasswordHash, f.mail.credentials[1].tempPassword))
}

func TestGetHidesOtherRoles(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Provision(ctx, f.admin, models.RoleTeaching, &dto.CreateUserRequest{
		Email: "teach@gracechapel.org", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)

	// Right role segment: found.
	got, err := f.svc.Get(ctx, f.admin, models.RoleTeaching, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, got.ID)

	// Same ID under the wrong role segment reads as not found.
	_, err = f.svc.Get(ctx, f.admin, models.RolePublishing, resp.User.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndCountByRole(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	for _, email := range []string{"a@x.org", "b@x.org"} {
		_, err := f.svc.Provision(ctx, f.admin, models.RoleSmallGroups, &dto.CreateUserRequest{
			Email: email, FirstName: "A", LastName: "B",
		})
		require.NoError(t, err)
	}

	list, err := f.svc.List(ctx, f.admin, models.RoleSmallGroups)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	n, err := f.svc.Count(ctx, f.admin, models.RoleSmallGroups)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Reads go down the hierarchy: an admin may list its own level, a team
	// role may not look upward.
	admins, err := f.svc.List(ctx, f.admin, models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	teach := &models.User{ID: uuid.New(), Role: models.RoleTeaching}
	_, err = f.svc.List(ctx, teach, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateDeactivates(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Provision(ctx, f.superadmin, models.RoleAdmin, &dto.CreateUserRequest{
		Email: "new@gracechapel.org", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := f.svc.Update(ctx, f.superadmin, models.RoleAdmin, resp.User.ID, &dto.UpdateUserRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdateRejectsWeakPassword(t *testing.T) {
	f := newUserFixture(t)
	weak := "short"
	_, err := f.svc.Update(context.Background(), f.superadmin, models.RoleAdmin, f.admin.ID, &dto.UpdateUserRequest{
		Password: &weak,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDelete(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Delete(ctx, f.superadmin, models.RoleAdmin, f.admin.ID))
	_, err := f.svc.Get(ctx, f.superadmin, models.RoleAdmin, f.admin.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// An admin never deletes another admin, including itself via the admin path.
	err = f.svc.Delete(ctx, f.admin, models.RoleAdmin, f.admin.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteMissingUser(t *testing.T) {
	f := newUserFixture(t)
	err := f.svc.Delete(context.Background(), f.superadmin, models.RoleAdmin, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMeAndUpdateProfile(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	me, err := f.svc.Me(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, f.admin.Email, me.Email)

	name := "Deborah"
	updated, err := f.svc.UpdateProfile(ctx, f.admin.ID, &dto.UpdateProfileRequest{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Deborah", updated.FirstName)
}

func mustGet(t *testing.T, f *userFixture, id uuid.UUID) *models.User {
	t.Helper()
	u, err := f.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

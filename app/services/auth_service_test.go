package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftline/storefront/app/models"
	"github.com/craftline/storefront/app/repositories"
	"github.com/craftline/storefront/pkg/auth"
)

func newAuthService(t *testing.T) (*AuthService, *repositories.UserRepository) {
	t.Helper()
	repo := repositories.NewUserRepository(newTestDB(t))
	return NewAuthService(repo), repo
}

func TestRegisterCreatesUser(t *testing.T) {
	svc, repo := newAuthService(t)

	user, err := svc.Register(RegisterInput{
		Email:     "New@Example.com",
		Password:  "secret99",
		Username:  "newbie",
		Firstname: "New",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", user.Email, "email is normalised")
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret99", user.Password, "password is stored hashed")
	assert.True(t, auth.CheckPassword(user.Password, "secret99"))

	stored, err := repo.FindByEmail("new@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	in := RegisterInput{Email: "dup@example.com", Password: "secret99", Username: "dup"}
	_, err := svc.Register(in)
	require.NoError(t, err)

	_, err = svc.Register(in)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(RegisterInput{
		Email:    "login@example.com",
		Password: "secret99",
		Username: "login",
	})
	require.NoError(t, err)

	token, err := svc.Login("login@example.com", "secret99")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "login@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(RegisterInput{
		Email:    "login@example.com",
		Password: "secret99",
		Username: "login",
	})
	require.NoError(t, err)

	_, err = svc.Login("", "secret99")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login("login@example.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	// Unknown email and wrong password are indistinguishable.
	_, err = svc.Login("nobody@example.com", "secret99")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("login@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

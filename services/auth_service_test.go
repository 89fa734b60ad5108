package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgpnguyen/restaurant/repository"
	"github.com/hgpnguyen/restaurant/services"
	"github.com/hgpnguyen/restaurant/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	user, err := svc.Register("alice", "Alice@Example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.Password) // stored hashed

	_, err = svc.Register("alice", "other@example.com", "hunter22")
	assert.ErrorIs(t, err, services.ErrUserTaken)

	token, got, err := svc.Login("alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	claims, err := utils.ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidLogin)

	_, _, err = svc.Login("nobody", "hunter22")
	assert.ErrorIs(t, err, services.ErrInvalidLogin)
}

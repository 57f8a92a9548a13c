package services

import (
	"context"
	"testing"
	"time"

	"pinboard-backend/internal/models"
	"pinboard-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(ttl time.Duration) *UserService {
	return NewUserService(store.NewMemoryStores().Users, []byte("test-secret"), ttl)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newUserService(time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw", user.PasswordHash)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newUserService(time.Hour)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice"})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Register(context.Background(), models.RegisterRequest{Password: "pw"})
	assert.ErrorAs(t, err, &ve)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newUserService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newUserService(time.Hour)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newUserService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	username, err := svc.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newUserService(-time.Minute)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.VerifyToken(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := newUserService(time.Hour)

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUsernameExists(t *testing.T) {
	svc := newUserService(time.Hour)
	ctx := context.Background()

	exists, err := svc.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	exists, err = svc.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

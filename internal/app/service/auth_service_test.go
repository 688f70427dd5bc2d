package service

import (
	"context"
	"testing"

	"galactic_pets/internal/common"
	"galactic_pets/internal/common/security"
	"galactic_pets/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUserWithUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	user, err := svc.Register(context.Background(), RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Empty(t, user.HashedPassword)

	stored := repo.users[user.ID]
	require.NotNil(t, stored)
	assert.True(t, security.CheckPasswordHash("pw1", stored.HashedPassword))
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil)

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	_, err = svc.Register(context.Background(), RegisterRequest{Email: "a@x.com", Password: ""})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestRegister_DuplicateEmailKeepsExistingHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	first, err := svc.Register(context.Background(), RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	originalHash := repo.users[first.ID].HashedPassword

	_, err = svc.Register(context.Background(), RegisterRequest{Email: "a@x.com", Password: "pw2"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Equal(t, originalHash, repo.users[first.ID].HashedPassword)
	assert.Len(t, repo.users, 1)
}

func TestLogin_Success(t *testing.T) {
	initTestJWT(t)
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, model.RoleUser, resp.User.Role)
	assert.Empty(t, resp.User.HashedPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@x.com", Password: "pw"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "pw2"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

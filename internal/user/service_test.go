package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ropa-market/internal/apperr"
	"github.com/MikeMC777/ropa-market/internal/auth"
)

func newTestService() (*Service, *auth.Tokens) {
	tk := auth.NewTokens("test", time.Hour)
	return NewService(newMemRepo(), tk), tk
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, tk := newTestService()

	res, err := svc.Signup(ctx, SignupRequest{Name: " Asha ", Email: "Asha@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", res.User.Email)
	assert.Equal(t, "Asha", res.User.Name)
	assert.Equal(t, auth.RoleUser, res.User.Role)

	id, err := tk.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id.UserID)

	_, err = svc.Signup(ctx, SignupRequest{Name: "Other", Email: "asha@example.com", Password: "secret1"})
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	_, err = svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	got, err := svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, got.User.ID)
}

func TestSignup_Validation(t *testing.T) {
	svc, _ := newTestService()
	for _, in := range []SignupRequest{
		{Email: "a@b.c", Password: "secret1"},
		{Name: "x", Email: "not-an-email", Password: "secret1"},
		{Name: "x", Email: "a@b.c", Password: "123"},
	} {
		_, err := svc.Signup(context.Background(), in)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err), "%+v", in)
	}
}

func TestChangePasswordAndRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	res, err := svc.Signup(ctx, SignupRequest{Name: "B", Email: "b@example.com", Password: "secret1"})
	require.NoError(t, err)
	uid := res.User.ID

	err = svc.ChangePassword(ctx, uid, ChangePasswordRequest{OldPassword: "bad", NewPassword: "secret2"})
	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))

	require.NoError(t, svc.ChangePassword(ctx, uid, ChangePasswordRequest{OldPassword: "secret1", NewPassword: "secret2"}))
	_, err = svc.Login(ctx, LoginRequest{Email: "b@example.com", Password: "secret2"})
	require.NoError(t, err)

	u, err := svc.SetRole(ctx, uid, "admin")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, u.Role)

	_, err = svc.SetRole(ctx, uid, "root")
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.SetRole(ctx, "missing", "user")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	u, err = svc.UpdateProfile(ctx, uid, UpdateProfileRequest{Phone: "9800000000"})
	require.NoError(t, err)
	assert.Equal(t, "B", u.Name)
	assert.Equal(t, "9800000000", u.Phone)
}

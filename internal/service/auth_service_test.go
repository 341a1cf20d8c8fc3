package service

import (
	"context"
	"testing"
	"time"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesMember(t *testing.T) {
	f := newFixture(t)

	res, err := f.auth.Register(context.Background(), RegisterInput{
		Username: "  alice ",
		Email:    " Alice@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, model.Member, res.User.Role)
	assert.Zero(t, res.User.Points)
	assert.NotEqual(t, "correct horse", res.User.Password)

	claims, err := util.ParseJWT(res.Token, f.cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, res.User.ID, claims.Subject)
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "bob")

	tests := []struct {
		name    string
		input   RegisterInput
		message string
	}{
		{"same email", RegisterInput{Username: "bobby", Email: "BOB@example.com", Password: "password123"}, "email already exists"},
		{"same username", RegisterInput{Username: "bob", Email: "other@example.com", Password: "password123"}, "username already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Register(ctx, tt.input)
			appErr, ok := util.AsAppError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, util.KindConflict, appErr.Kind)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegister_RequiresAllFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(context.Background(), RegisterInput{Username: "   ", Email: "x@example.com", Password: "password123"})
	assert.True(t, util.IsKind(err, util.KindValidation))
}

func TestLogin_FailsUniformly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "carol")

	res, err := f.auth.Login(ctx, "CAROL@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, wrongPassword := f.auth.Login(ctx, "carol@example.com", "not-the-password")
	_, unknownEmail := f.auth.Login(ctx, "nobody@example.com", "password123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, util.ErrInvalidCredentials, wrongPassword)
	assert.Equal(t, util.ErrInvalidCredentials, unknownEmail)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dave := f.register(t, "dave")

	valid, err := util.GenerateJWT(dave, f.cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	user, err := f.auth.Authenticate(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, dave.ID, user.ID)

	expired, err := util.GenerateJWT(dave, f.cfg.JWT.Secret, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := util.GenerateJWT(dave, "another-secret", time.Hour)
	require.NoError(t, err)
	ghost, err := util.GenerateJWT(&model.User{UUIDBase: model.UUIDBase{ID: model.GenerateUUID()}}, f.cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":     expired,
		"wrong key":   wrongKey,
		"ghost user":  ghost,
		"garbage":     "not.a.token",
		"empty token": "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.auth.Authenticate(ctx, token)
			assert.Equal(t, util.ErrUnauthenticated, err)
		})
	}
}

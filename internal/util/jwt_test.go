package util

import (
	"testing"
	"time"

	"cyber_academy_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{UUIDBase: model.UUIDBase{ID: model.GenerateUUID()}}

	token, err := GenerateJWT(user, testSecret, 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ID, claims.Subject)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseJWT_Rejects(t *testing.T) {
	user := &model.User{UUIDBase: model.UUIDBase{ID: model.GenerateUUID()}}

	expired, err := GenerateJWT(user, testSecret, -time.Second)
	require.NoError(t, err)

	otherKey, err := GenerateJWT(user, "other-secret", time.Hour)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: user.ID,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":    expired,
		"other key":  otherKey,
		"alg none":   unsigned,
		"no expiry":  noExpiry,
		"no subject": noSubject,
		"garbage":    "abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJWT(token, testSecret)
			assert.Error(t, err)
		})
	}
}

package jwt

import (
	"testing"
	"time"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	j := New("test-secret", time.Hour)
	user := domain.User{Id: "user-123", Username: "dicoding"}

	token, err := j.NewToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := j.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", decoded.Id)
	assert.Equal(t, "dicoding", decoded.Username)
}

func TestDecodeExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute)
	token, err := j.NewToken(domain.User{Id: "user-123"})
	require.NoError(t, err)

	_, err = j.DecodeToken(token)
	require.Error(t, err)
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok)
	assert.Equal(t, 401, e.StatusCode)
}

func TestDecodeWrongKey(t *testing.T) {
	token, err := New("key-one", time.Hour).NewToken(domain.User{Id: "user-123"})
	require.NoError(t, err)

	_, err = New("key-two", time.Hour).DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := New("test-secret", time.Hour).DecodeToken("not.a.token")
	assert.Error(t, err)
}

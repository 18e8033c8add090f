package service

import (
	"net/http"
	"testing"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthRegister(t *testing.T) {
	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		var saved domain.User
		users := &MockUserStore{
			saveUserFunc: func(user domain.User) (domain.AddedUser, error) {
				saved = user
				return domain.AddedUser{Id: "user-1", Username: user.Username}, nil
			},
		}
		svc := NewAuth(users, &MockJwt{})

		added, err := svc.Register("dicoding", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "user-1", added.Id)
		assert.Equal(t, "dicoding", saved.Username)
		assert.NotEqual(t, "secret123", saved.PassHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PassHash), []byte("secret123")))
	})

	t.Run("invalid credentials are rejected before any store call", func(t *testing.T) {
		called := false
		users := &MockUserStore{
			saveUserFunc: func(user domain.User) (domain.AddedUser, error) {
				called = true
				return domain.AddedUser{}, nil
			},
		}
		svc := NewAuth(users, &MockJwt{})

		_, err := svc.Register("dicoding", "123")

		require.Error(t, err)
		assert.False(t, called)
	})

	t.Run("duplicate username error propagates", func(t *testing.T) {
		users := &MockUserStore{
			saveUserFunc: func(user domain.User) (domain.AddedUser, error) {
				return domain.AddedUser{}, internal_errors.Validation("username tidak tersedia")
			},
		}
		svc := NewAuth(users, &MockJwt{})

		_, err := svc.Register("dicoding", "secret123")

		assert.Error(t, err)
	})
}

func TestAuthLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	storedUser := domain.User{Id: "user-1", Username: "dicoding", PassHash: string(hash)}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		users := &MockUserStore{
			userByUsernameFunc: func(username domain.Username) (domain.User, error) {
				assert.Equal(t, "dicoding", username)
				return storedUser, nil
			},
		}
		jwt := &MockJwt{
			newTokenFunc: func(user domain.User) (string, error) {
				assert.Equal(t, "user-1", user.Id)
				return "signed-token", nil
			},
		}
		svc := NewAuth(users, jwt)

		token, err := svc.Login("Dicoding", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		users := &MockUserStore{
			userByUsernameFunc: func(username domain.Username) (domain.User, error) {
				return storedUser, nil
			},
		}
		svc := NewAuth(users, &MockJwt{})

		_, err := svc.Login("dicoding", "wrongpass")

		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("unknown user is unauthorized, not not-found", func(t *testing.T) {
		users := &MockUserStore{
			userByUsernameFunc: func(username domain.Username) (domain.User, error) {
				return domain.User{}, internal_errors.NotFound("user tidak ditemukan")
			},
		}
		svc := NewAuth(users, &MockJwt{})

		_, err := svc.Login("ghost123", "secret123")

		assertStatus(t, err, http.StatusUnauthorized)
	})
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "expected *ErrorWithStatusCode, got %T", err)
	assert.Equal(t, want, e.StatusCode)
}

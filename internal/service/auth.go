package service

import (
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(username domain.Username, password string) (domain.AddedUser, error)
	Login(username domain.Username, password string) (string, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	users UserStore
	jwt   Jwt
}

func NewAuth(users UserStore, jwt Jwt) *Auth {
	return &Auth{users, jwt}
}

func (a *Auth) Register(username domain.Username, password string) (domain.AddedUser, error) {
	creds, err := domain.NewCredentials(username, password)
	if err != nil {
		return domain.AddedUser{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AddedUser{}, err
	}

	added, err := a.users.SaveUser(domain.User{Username: creds.Username, PassHash: string(passHash)})
	if err != nil {
		return domain.AddedUser{}, err
	}
	logger.Log.Info("user registered", "userId", added.Id)
	return added, nil
}

func (a *Auth) Login(username domain.Username, password string) (string, error) {
	creds, err := domain.NewCredentials(username, password)
	if err != nil {
		return "", err
	}

	user, err := a.users.UserByUsername(creds.Username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", invalidCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return "", invalidCredentials()
	}

	return a.jwt.NewToken(user)
}

// Same answer for unknown user and wrong password, so login probing can't
// enumerate usernames.
func invalidCredentials() error {
	return &internal_errors.ErrorWithStatusCode{Message: "invalid username or password", StatusCode: http.StatusUnauthorized}
}

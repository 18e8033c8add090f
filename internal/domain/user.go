package domain

import (
	"strings"
	"time"
)

type User struct {
	Id        UserId
	Username  Username
	PassHash  string
	CreatedAt time.Time
}

type Credentials struct {
	Username Username `validate:"required,min=3,max=50,alphanum"`
	Password string   `validate:"required,min=6"`
}

func NewCredentials(username Username, password string) (Credentials, error) {
	creds := Credentials{Username: strings.ToLower(strings.TrimSpace(username)), Password: password}
	if err := validateStruct(creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

type AddedUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
}

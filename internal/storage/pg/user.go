package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

type UserStorage struct {
	*Storage
}

// SaveUser wraps the insert in a transaction so registration stays atomic if
// it ever grows side tables (profiles, audit rows).
func (s *UserStorage) SaveUser(user domain.User) (domain.AddedUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var added domain.AddedUser
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = s.saveUser(tx, user)
		return err
	})
	return added, err
}

func (s *UserStorage) UserByUsername(username domain.Username) (domain.User, error) {
	return s.user(s.db, username)
}

func (s *UserStorage) saveUser(q Querier, user domain.User) (domain.AddedUser, error) {
	id := newId("user")
	_, err := q.Exec(`
        INSERT INTO users (id, username, password_hash)
        VALUES ($1, $2, $3)
    `, id, user.Username, user.PassHash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.AddedUser{}, internal_errors.Validation("username tidak tersedia")
		}
		return domain.AddedUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.AddedUser{Id: id, Username: user.Username}, nil
}

func (s *UserStorage) user(q Querier, username domain.Username) (domain.User, error) {
	var user domain.User
	err := q.QueryRow(
		"SELECT id, username, password_hash, created_at FROM users WHERE username = $1",
		username,
	).Scan(&user.Id, &user.Username, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("user tidak ditemukan")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

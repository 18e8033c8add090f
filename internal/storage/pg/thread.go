package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

type ThreadStorage struct {
	*Storage
}

// Exists is a cheap presence check, used before any heavier fetch or write
// scoped to a thread.
func (s *ThreadStorage) Exists(id domain.ThreadId) error {
	var found bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&found)
	if err != nil {
		return fmt.Errorf("failed to check thread existence: %w", err)
	}
	if !found {
		return internal_errors.NotFound("thread tidak ditemukan")
	}
	return nil
}

func (s *ThreadStorage) GetById(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT t.id, t.title, t.body, t.created_at, u.username
        FROM threads t
        JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.CreatedAt, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("thread tidak ditemukan")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

func (s *ThreadStorage) Create(data domain.ThreadCreationData) (domain.AddedThread, error) {
	id := newId("thread")
	_, err := s.db.Exec(`
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
    `, id, data.Title, data.Body, data.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.AddedThread{Id: id, Title: data.Title, Owner: data.Owner}, nil
}

package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

type CommentStorage struct {
	*Storage
}

func (s *CommentStorage) Exists(id domain.CommentId) error {
	var found bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)", id).Scan(&found)
	if err != nil {
		return fmt.Errorf("failed to check comment existence: %w", err)
	}
	if !found {
		return internal_errors.NotFound("komentar tidak ditemukan")
	}
	return nil
}

func (s *CommentStorage) Create(data domain.CommentCreationData) (domain.AddedComment, error) {
	id := newId("comment")
	_, err := s.db.Exec(`
        INSERT INTO comments (id, thread_id, content, owner)
        VALUES ($1, $2, $3, $4)
    `, id, data.ThreadId, data.Content, data.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.AddedComment{Id: id, Content: data.Content, Owner: data.Owner}, nil
}

// ListByThread returns every comment of the thread in creation order.
// Soft-deleted rows are included; masking happens in the service layer.
func (s *CommentStorage) ListByThread(threadId domain.ThreadId) ([]domain.Comment, error) {
	rows, err := s.db.Query(`
        SELECT c.id, u.username, c.created_at, c.content, c.is_deleted
        FROM comments c
        JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.created_at, c.id
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.Id, &c.Username, &c.CreatedAt, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

// VerifyOwner distinguishes a missing comment (404) from someone else's
// comment (403).
func (s *CommentStorage) VerifyOwner(id domain.CommentId, owner domain.UserId) error {
	var actual domain.UserId
	err := s.db.QueryRow("SELECT owner FROM comments WHERE id = $1", id).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("komentar tidak ditemukan")
		}
		return fmt.Errorf("failed to fetch comment owner: %w", err)
	}
	if actual != owner {
		return internal_errors.Forbidden("anda tidak berhak mengakses resource ini")
	}
	return nil
}

// SoftDelete flips is_deleted; the row and its replies survive so the thread
// detail can keep the conversation shape.
func (s *CommentStorage) SoftDelete(id domain.CommentId, owner domain.UserId) error {
	result, err := s.db.Exec(`
        UPDATE comments SET is_deleted = TRUE
        WHERE id = $1 AND owner = $2
    `, id, owner)
	if err != nil {
		return fmt.Errorf("failed to soft-delete comment: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("komentar tidak ditemukan")
	}
	return nil
}

package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

type ReplyStorage struct {
	*Storage
}

func (s *ReplyStorage) Create(data domain.ReplyCreationData) (domain.AddedReply, error) {
	id := newId("reply")
	_, err := s.db.Exec(`
        INSERT INTO replies (id, comment_id, content, owner)
        VALUES ($1, $2, $3, $4)
    `, id, data.CommentId, data.Content, data.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.AddedReply{Id: id, Content: data.Content, Owner: data.Owner}, nil
}

// ListByCommentIds batch-fetches replies for a set of parent comments in one
// round-trip. An empty id set never touches the database.
func (s *ReplyStorage) ListByCommentIds(ids []domain.CommentId) ([]domain.Reply, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(`
        SELECT r.id, r.comment_id, u.username, r.created_at, r.content, r.is_deleted
        FROM replies r
        JOIN users u ON u.id = r.owner
        WHERE r.comment_id = ANY($1)
        ORDER BY r.created_at, r.id
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.Reply
	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Username, &r.CreatedAt, &r.Content, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

func (s *ReplyStorage) VerifyOwner(id domain.ReplyId, owner domain.UserId) error {
	var actual domain.UserId
	err := s.db.QueryRow("SELECT owner FROM replies WHERE id = $1", id).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("balasan tidak ditemukan")
		}
		return fmt.Errorf("failed to fetch reply owner: %w", err)
	}
	if actual != owner {
		return internal_errors.Forbidden("anda tidak berhak mengakses resource ini")
	}
	return nil
}

func (s *ReplyStorage) SoftDelete(id domain.ReplyId, owner domain.UserId) error {
	result, err := s.db.Exec(`
        UPDATE replies SET is_deleted = TRUE
        WHERE id = $1 AND owner = $2
    `, id, owner)
	if err != nil {
		return fmt.Errorf("failed to soft-delete reply: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("balasan tidak ditemukan")
	}
	return nil
}

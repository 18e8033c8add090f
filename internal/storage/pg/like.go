package pg

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

type LikeStorage struct {
	*Storage
}

func (s *LikeStorage) IsLiked(commentId domain.CommentId, userId domain.UserId) (bool, error) {
	var liked bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment_id = $1 AND user_id = $2)",
		commentId, userId,
	).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}
	return liked, nil
}

// Add inserts the like row. The UNIQUE(user_id, comment_id) constraint is the
// backstop for two concurrent toggles; its violation surfaces as
// ErrAlreadyLiked so the caller can treat the like as already in place.
func (s *LikeStorage) Add(like domain.LikeCreationData) error {
	id := newId("like")
	_, err := s.db.Exec(`
        INSERT INTO comment_likes (id, comment_id, user_id)
        VALUES ($1, $2, $3)
    `, id, like.CommentId, like.UserId)
	if err != nil {
		if isUniqueViolation(err) {
			return internal_errors.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *LikeStorage) Remove(commentId domain.CommentId, userId domain.UserId) error {
	result, err := s.db.Exec(
		"DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2",
		commentId, userId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.Invariant("like row missing on removal")
	}
	return nil
}

// CountsByCommentIds maps every requested id to its like count. Ids with no
// likes are present with a zero, so callers never distinguish "absent" from
// "zero".
func (s *LikeStorage) CountsByCommentIds(ids []domain.CommentId) (map[domain.CommentId]int, error) {
	counts := make(map[domain.CommentId]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	for _, id := range ids {
		counts[id] = 0
	}

	rows, err := s.db.Query(`
        SELECT comment_id, COUNT(*)
        FROM comment_likes
        WHERE comment_id = ANY($1)
        GROUP BY comment_id
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch like counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id domain.CommentId
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[id] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}

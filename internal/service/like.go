package service

import (
	"errors"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

type LikeService interface {
	Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

type Like struct {
	threads  ThreadStore
	comments CommentStore
	likes    LikeStore
}

func NewLike(threads ThreadStore, comments CommentStore, likes LikeStore) *Like {
	return &Like{threads, comments, likes}
}

// Toggle flips the like state of (comment, user): liked rows are removed,
// unliked pairs get a new row. Read-then-act leaves a race window between
// IsLiked and Add; two concurrent likes from the same user can both see
// "not liked" and both insert. The store's uniqueness constraint rejects the
// second insert, which is absorbed here as a no-op.
func (s *Like) Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	like, err := domain.NewLike(commentId, userId)
	if err != nil {
		return err
	}
	if err := s.threads.Exists(threadId); err != nil {
		return err
	}
	if err := s.comments.Exists(commentId); err != nil {
		return err
	}

	liked, err := s.likes.IsLiked(commentId, userId)
	if err != nil {
		return err
	}
	if liked {
		return s.likes.Remove(commentId, userId)
	}

	if err := s.likes.Add(like); err != nil {
		if errors.Is(err, internal_errors.ErrAlreadyLiked) {
			logger.Log.Debug("concurrent duplicate like absorbed", "commentId", commentId, "userId", userId)
			return nil
		}
		return err
	}
	return nil
}

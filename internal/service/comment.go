package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
)

type CommentService interface {
	Create(threadId domain.ThreadId, content string, owner domain.UserId) (domain.AddedComment, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Comment struct {
	threads  ThreadStore
	comments CommentStore
}

func NewComment(threads ThreadStore, comments CommentStore) *Comment {
	return &Comment{threads, comments}
}

func (s *Comment) Create(threadId domain.ThreadId, content string, owner domain.UserId) (domain.AddedComment, error) {
	data, err := domain.NewComment(threadId, content, owner)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threads.Exists(threadId); err != nil {
		return domain.AddedComment{}, err
	}
	return s.comments.Create(data)
}

// Delete soft-deletes: the row stays so replies and likes keep pointing at it.
func (s *Comment) Delete(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := s.threads.Exists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyOwner(commentId, owner); err != nil {
		return err
	}
	return s.comments.SoftDelete(commentId, owner)
}

package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
)

type ReplyService interface {
	Create(threadId domain.ThreadId, commentId domain.CommentId, content string, owner domain.UserId) (domain.AddedReply, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

type Reply struct {
	threads  ThreadStore
	comments CommentStore
	replies  ReplyStore
}

func NewReply(threads ThreadStore, comments CommentStore, replies ReplyStore) *Reply {
	return &Reply{threads, comments, replies}
}

func (s *Reply) Create(threadId domain.ThreadId, commentId domain.CommentId, content string, owner domain.UserId) (domain.AddedReply, error) {
	data, err := domain.NewReply(commentId, content, owner)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.threads.Exists(threadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.comments.Exists(commentId); err != nil {
		return domain.AddedReply{}, err
	}
	return s.replies.Create(data)
}

func (s *Reply) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if err := s.threads.Exists(threadId); err != nil {
		return err
	}
	if err := s.comments.Exists(commentId); err != nil {
		return err
	}
	if err := s.replies.VerifyOwner(replyId, owner); err != nil {
		return err
	}
	return s.replies.SoftDelete(replyId, owner)
}

package handler

import (
	"context"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

type MockAuthService struct {
	RegisterFunc func(username domain.Username, password string) (domain.AddedUser, error)
	LoginFunc    func(username domain.Username, password string) (string, error)
}

func (m *MockAuthService) Register(username domain.Username, password string) (domain.AddedUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(username, password)
	}
	return domain.AddedUser{}, nil
}

func (m *MockAuthService) Login(username domain.Username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(username, password)
	}
	return "", nil
}

type MockThreadService struct {
	CreateFunc func(title, body string, owner domain.UserId) (domain.AddedThread, error)
	DetailFunc func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(title, body string, owner domain.UserId) (domain.AddedThread, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(title, body, owner)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) Detail(id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.DetailFunc != nil {
		return m.DetailFunc(id)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	CreateFunc func(threadId domain.ThreadId, content string, owner domain.UserId) (domain.AddedComment, error)
	DeleteFunc func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentService) Create(threadId domain.ThreadId, content string, owner domain.UserId) (domain.AddedComment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(threadId, content, owner)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(threadId, commentId, owner)
	}
	return nil
}

type MockReplyService struct {
	CreateFunc func(threadId domain.ThreadId, commentId domain.CommentId, content string, owner domain.UserId) (domain.AddedReply, error)
	DeleteFunc func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyService) Create(threadId domain.ThreadId, commentId domain.CommentId, content string, owner domain.UserId) (domain.AddedReply, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(threadId, commentId, content, owner)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(threadId, commentId, replyId, owner)
	}
	return nil
}

type MockLikeService struct {
	ToggleFunc func(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

func (m *MockLikeService) Toggle(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(threadId, commentId, userId)
	}
	return nil
}

type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

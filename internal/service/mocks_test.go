package service

import (
	"sync"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// Hand-rolled mocks: override the function field you care about, defaults
// succeed. Call tracking is mutex-guarded so parallel subtests stay safe.

type MockThreadStore struct {
	existsFunc  func(id domain.ThreadId) error
	getByIdFunc func(id domain.ThreadId) (domain.Thread, error)
	createFunc  func(data domain.ThreadCreationData) (domain.AddedThread, error)

	mu            sync.Mutex
	existsCalled  bool
	getByIdCalled bool
	createCalled  bool
}

func (m *MockThreadStore) Exists(id domain.ThreadId) error {
	m.mu.Lock()
	m.existsCalled = true
	m.mu.Unlock()
	if m.existsFunc != nil {
		return m.existsFunc(id)
	}
	return nil
}

func (m *MockThreadStore) GetById(id domain.ThreadId) (domain.Thread, error) {
	m.mu.Lock()
	m.getByIdCalled = true
	m.mu.Unlock()
	if m.getByIdFunc != nil {
		return m.getByIdFunc(id)
	}
	return domain.Thread{Id: id}, nil
}

func (m *MockThreadStore) Create(data domain.ThreadCreationData) (domain.AddedThread, error) {
	m.mu.Lock()
	m.createCalled = true
	m.mu.Unlock()
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return domain.AddedThread{Id: "thread-1", Title: data.Title, Owner: data.Owner}, nil
}

type MockCommentStore struct {
	existsFunc       func(id domain.CommentId) error
	createFunc       func(data domain.CommentCreationData) (domain.AddedComment, error)
	listByThreadFunc func(threadId domain.ThreadId) ([]domain.Comment, error)
	verifyOwnerFunc  func(id domain.CommentId, owner domain.UserId) error
	softDeleteFunc   func(id domain.CommentId, owner domain.UserId) error

	mu                 sync.Mutex
	existsCalled       bool
	createCalled       bool
	listByThreadCalled bool
	verifyOwnerCalled  bool
	softDeleteCalled   bool
}

func (m *MockCommentStore) Exists(id domain.CommentId) error {
	m.mu.Lock()
	m.existsCalled = true
	m.mu.Unlock()
	if m.existsFunc != nil {
		return m.existsFunc(id)
	}
	return nil
}

func (m *MockCommentStore) Create(data domain.CommentCreationData) (domain.AddedComment, error) {
	m.mu.Lock()
	m.createCalled = true
	m.mu.Unlock()
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return domain.AddedComment{Id: "comment-1", Content: data.Content, Owner: data.Owner}, nil
}

func (m *MockCommentStore) ListByThread(threadId domain.ThreadId) ([]domain.Comment, error) {
	m.mu.Lock()
	m.listByThreadCalled = true
	m.mu.Unlock()
	if m.listByThreadFunc != nil {
		return m.listByThreadFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStore) VerifyOwner(id domain.CommentId, owner domain.UserId) error {
	m.mu.Lock()
	m.verifyOwnerCalled = true
	m.mu.Unlock()
	if m.verifyOwnerFunc != nil {
		return m.verifyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentStore) SoftDelete(id domain.CommentId, owner domain.UserId) error {
	m.mu.Lock()
	m.softDeleteCalled = true
	m.mu.Unlock()
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(id, owner)
	}
	return nil
}

type MockReplyStore struct {
	createFunc           func(data domain.ReplyCreationData) (domain.AddedReply, error)
	listByCommentIdsFunc func(ids []domain.CommentId) ([]domain.Reply, error)
	verifyOwnerFunc      func(id domain.ReplyId, owner domain.UserId) error
	softDeleteFunc       func(id domain.ReplyId, owner domain.UserId) error

	mu                     sync.Mutex
	createCalled           bool
	listByCommentIdsCalled bool
	softDeleteCalled       bool
}

func (m *MockReplyStore) Create(data domain.ReplyCreationData) (domain.AddedReply, error) {
	m.mu.Lock()
	m.createCalled = true
	m.mu.Unlock()
	if m.createFunc != nil {
		return m.createFunc(data)
	}
	return domain.AddedReply{Id: "reply-1", Content: data.Content, Owner: data.Owner}, nil
}

func (m *MockReplyStore) ListByCommentIds(ids []domain.CommentId) ([]domain.Reply, error) {
	m.mu.Lock()
	m.listByCommentIdsCalled = true
	m.mu.Unlock()
	if m.listByCommentIdsFunc != nil {
		return m.listByCommentIdsFunc(ids)
	}
	return nil, nil
}

func (m *MockReplyStore) VerifyOwner(id domain.ReplyId, owner domain.UserId) error {
	if m.verifyOwnerFunc != nil {
		return m.verifyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockReplyStore) SoftDelete(id domain.ReplyId, owner domain.UserId) error {
	m.mu.Lock()
	m.softDeleteCalled = true
	m.mu.Unlock()
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(id, owner)
	}
	return nil
}

type MockLikeStore struct {
	isLikedFunc            func(commentId domain.CommentId, userId domain.UserId) (bool, error)
	addFunc                func(like domain.LikeCreationData) error
	removeFunc             func(commentId domain.CommentId, userId domain.UserId) error
	countsByCommentIdsFunc func(ids []domain.CommentId) (map[domain.CommentId]int, error)

	mu            sync.Mutex
	isLikedCalled bool
	addCalled     bool
	removeCalled  bool
	countsCalled  bool
}

func (m *MockLikeStore) IsLiked(commentId domain.CommentId, userId domain.UserId) (bool, error) {
	m.mu.Lock()
	m.isLikedCalled = true
	m.mu.Unlock()
	if m.isLikedFunc != nil {
		return m.isLikedFunc(commentId, userId)
	}
	return false, nil
}

func (m *MockLikeStore) Add(like domain.LikeCreationData) error {
	m.mu.Lock()
	m.addCalled = true
	m.mu.Unlock()
	if m.addFunc != nil {
		return m.addFunc(like)
	}
	return nil
}

func (m *MockLikeStore) Remove(commentId domain.CommentId, userId domain.UserId) error {
	m.mu.Lock()
	m.removeCalled = true
	m.mu.Unlock()
	if m.removeFunc != nil {
		return m.removeFunc(commentId, userId)
	}
	return nil
}

func (m *MockLikeStore) CountsByCommentIds(ids []domain.CommentId) (map[domain.CommentId]int, error) {
	m.mu.Lock()
	m.countsCalled = true
	m.mu.Unlock()
	if m.countsByCommentIdsFunc != nil {
		return m.countsByCommentIdsFunc(ids)
	}
	counts := make(map[domain.CommentId]int, len(ids))
	for _, id := range ids {
		counts[id] = 0
	}
	return counts, nil
}

type MockUserStore struct {
	saveUserFunc       func(user domain.User) (domain.AddedUser, error)
	userByUsernameFunc func(username domain.Username) (domain.User, error)
}

func (m *MockUserStore) SaveUser(user domain.User) (domain.AddedUser, error) {
	if m.saveUserFunc != nil {
		return m.saveUserFunc(user)
	}
	return domain.AddedUser{Id: "user-1", Username: user.Username}, nil
}

func (m *MockUserStore) UserByUsername(username domain.Username) (domain.User, error) {
	if m.userByUsernameFunc != nil {
		return m.userByUsernameFunc(username)
	}
	return domain.User{Id: "user-1", Username: username}, nil
}

type MockJwt struct {
	newTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(user)
	}
	return "token", nil
}

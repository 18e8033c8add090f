package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
)

// Store contracts consumed by the services. The pg package implements all of
// them; services never see a concrete storage type.

type ThreadStore interface {
	// Exists returns a NotFound error when the thread is absent.
	Exists(id domain.ThreadId) error
	GetById(id domain.ThreadId) (domain.Thread, error)
	Create(data domain.ThreadCreationData) (domain.AddedThread, error)
}

type CommentStore interface {
	Exists(id domain.CommentId) error
	Create(data domain.CommentCreationData) (domain.AddedComment, error)
	// ListByThread returns every comment of the thread in creation order,
	// soft-deleted rows included.
	ListByThread(threadId domain.ThreadId) ([]domain.Comment, error)
	// VerifyOwner fails NotFound when the comment is absent and Forbidden
	// when it belongs to someone else.
	VerifyOwner(id domain.CommentId, owner domain.UserId) error
	SoftDelete(id domain.CommentId, owner domain.UserId) error
}

type ReplyStore interface {
	Create(data domain.ReplyCreationData) (domain.AddedReply, error)
	// ListByCommentIds batch-fetches replies for a set of parent comments.
	// An empty id set yields an empty result without touching the database.
	ListByCommentIds(ids []domain.CommentId) ([]domain.Reply, error)
	VerifyOwner(id domain.ReplyId, owner domain.UserId) error
	SoftDelete(id domain.ReplyId, owner domain.UserId) error
}

type LikeStore interface {
	IsLiked(commentId domain.CommentId, userId domain.UserId) (bool, error)
	// Add returns errors.ErrAlreadyLiked when the (user, comment) uniqueness
	// constraint rejects the insert.
	Add(like domain.LikeCreationData) error
	// Remove fails with an invariant error when no row was removed.
	Remove(commentId domain.CommentId, userId domain.UserId) error
	// CountsByCommentIds maps every requested id to its like count, zero
	// included. Empty input yields an empty map.
	CountsByCommentIds(ids []domain.CommentId) (map[domain.CommentId]int, error)
}

type UserStore interface {
	SaveUser(user domain.User) (domain.AddedUser, error)
	UserByUsername(username domain.Username) (domain.User, error)
}

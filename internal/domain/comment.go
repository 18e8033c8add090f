package domain

import "time"

type CommentCreationData struct {
	ThreadId ThreadId `validate:"required"`
	Content  string   `validate:"required"`
	Owner    UserId   `validate:"required"`
}

func NewComment(threadId ThreadId, content string, owner UserId) (CommentCreationData, error) {
	data := CommentCreationData{
		ThreadId: threadId,
		Content:  sanitizeText(content),
		Owner:    owner,
	}
	if err := validateStruct(data); err != nil {
		return CommentCreationData{}, err
	}
	return data, nil
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// Comment is a row from the comment store, joined with the author's name.
// IsDeleted rows are kept and masked, never filtered out.
type Comment struct {
	Id        CommentId
	Username  Username
	CreatedAt time.Time
	Content   string
	IsDeleted bool
}

// DisplayContent applies the soft-delete mask. Only the content is affected;
// id, author, timestamp and children stay visible.
func (c Comment) DisplayContent() string {
	if c.IsDeleted {
		return CommentDeletedPlaceholder
	}
	return c.Content
}

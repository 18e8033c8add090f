package domain

import "time"

type ReplyCreationData struct {
	CommentId CommentId `validate:"required"`
	Content   string    `validate:"required"`
	Owner     UserId    `validate:"required"`
}

func NewReply(commentId CommentId, content string, owner UserId) (ReplyCreationData, error) {
	data := ReplyCreationData{
		CommentId: commentId,
		Content:   sanitizeText(content),
		Owner:     owner,
	}
	if err := validateStruct(data); err != nil {
		return ReplyCreationData{}, err
	}
	return data, nil
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

// Reply carries its owning comment id so the aggregator can group a batched
// fetch by parent.
type Reply struct {
	Id        ReplyId
	CommentId CommentId
	Username  Username
	CreatedAt time.Time
	Content   string
	IsDeleted bool
}

func (r Reply) DisplayContent() string {
	if r.IsDeleted {
		return ReplyDeletedPlaceholder
	}
	return r.Content
}

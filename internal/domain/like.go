package domain

// LikeCreationData identifies the (comment, user) pair for a like row.
// At most one row may exist per pair; the store's uniqueness constraint is
// the final backstop.
type LikeCreationData struct {
	CommentId CommentId `validate:"required"`
	UserId    UserId    `validate:"required"`
}

func NewLike(commentId CommentId, userId UserId) (LikeCreationData, error) {
	data := LikeCreationData{CommentId: commentId, UserId: userId}
	if err := validateStruct(data); err != nil {
		return LikeCreationData{}, err
	}
	return data, nil
}

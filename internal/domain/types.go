package domain

type (
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string
	UserId    = string
	Username  = string
)

// Placeholders shown instead of soft-deleted content. The rows stay in the
// database so replies and likes keep their referents; only the content is
// masked on the way out.
const (
	CommentDeletedPlaceholder = "**komentar telah dihapus**"
	ReplyDeletedPlaceholder   = "**balasan telah dihapus**"
)

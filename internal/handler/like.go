package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// ToggleCommentLike flips the caller's like on a comment. PUT because the
// operation is state-flipping and carries no body; the client re-reads the
// thread detail to observe the effect.
func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.like.Toggle(threadId, commentId, user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/logger"
	"github.com/diskusi-dev/diskusi/internal/service"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	like    service.LikeService
	health  Pinger
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, reply service.ReplyService, like service.LikeService, health Pinger) *Handler {
	return &Handler{auth, thread, comment, reply, like, health}
}

// successEnvelope is the response shape for every happy path:
// {"status":"success","data":{...}}. Data may be nil for bare acks.
type successEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(successEnvelope{Status: "success", Data: data}); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

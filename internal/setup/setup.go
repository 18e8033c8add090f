package setup

import (
	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/handler"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/service"
	"github.com/diskusi-dev/diskusi/internal/storage/pg"
)

// Dependencies holds every initialized component of the application.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     jwt.JwtService
}

// SetupDependencies initializes the storage, services and handler.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	threads := storage.Threads()
	comments := storage.Comments()
	replies := storage.Replies()
	likes := storage.Likes()

	auth := service.NewAuth(storage.Users(), tokens)
	thread := service.NewThread(threads, comments, replies, likes)
	comment := service.NewComment(threads, comments)
	reply := service.NewReply(threads, comments, replies)
	like := service.NewLike(threads, comments, likes)

	h := handler.New(auth, thread, comment, reply, like, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     tokens,
	}, nil
}

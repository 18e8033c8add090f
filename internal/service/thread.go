package service

import (
	"sort"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"golang.org/x/sync/errgroup"
)

type ThreadService interface {
	Create(title, body string, owner domain.UserId) (domain.AddedThread, error)
	Detail(id domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadStore
	comments CommentStore
	replies  ReplyStore
	likes    LikeStore
}

func NewThread(threads ThreadStore, comments CommentStore, replies ReplyStore, likes LikeStore) *Thread {
	return &Thread{threads, comments, replies, likes}
}

func (s *Thread) Create(title, body string, owner domain.UserId) (domain.AddedThread, error) {
	data, err := domain.NewThread(title, body, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threads.Create(data)
}

// Detail assembles the full nested view of one thread. Steps are strictly
// ordered: existence check, header, comments, then a concurrent fan-out for
// replies and like counts, then merge and masking. If any fetch fails the
// whole aggregation fails.
func (s *Thread) Detail(id domain.ThreadId) (domain.ThreadDetail, error) {
	if err := s.threads.Exists(id); err != nil {
		return domain.ThreadDetail{}, err
	}

	header, err := s.threads.GetById(id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.comments.ListByThread(id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	detail := domain.ThreadDetail{
		Id:       header.Id,
		Title:    header.Title,
		Body:     header.Body,
		Date:     header.CreatedAt,
		Username: header.Username,
		Comments: []domain.CommentDetail{},
	}
	if len(comments) == 0 {
		return detail, nil
	}

	commentIds := make([]domain.CommentId, 0, len(comments))
	for _, c := range comments {
		commentIds = append(commentIds, c.Id)
	}

	// Replies and like counts are independent; fetch them concurrently and
	// join before merging.
	var (
		replies    []domain.Reply
		likeCounts map[domain.CommentId]int
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		replies, err = s.replies.ListByCommentIds(commentIds)
		return err
	})
	g.Go(func() error {
		var err error
		likeCounts, err = s.likes.CountsByCommentIds(commentIds)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	repliesByComment := make(map[domain.CommentId][]domain.Reply, len(commentIds))
	for _, r := range replies {
		repliesByComment[r.CommentId] = append(repliesByComment[r.CommentId], r)
	}

	sortComments(comments)
	for _, c := range comments {
		detail.Comments = append(detail.Comments, domain.CommentDetail{
			Id:        c.Id,
			Username:  c.Username,
			Date:      c.CreatedAt,
			Content:   c.DisplayContent(),
			LikeCount: likeCounts[c.Id],
			Replies:   buildReplyDetails(repliesByComment[c.Id]),
		})
	}
	return detail, nil
}

// buildReplyDetails orders and masks one comment's replies. A comment with no
// replies gets an empty list, never nil, so it serializes as [].
func buildReplyDetails(replies []domain.Reply) []domain.ReplyDetail {
	sortReplies(replies)
	details := make([]domain.ReplyDetail, 0, len(replies))
	for _, r := range replies {
		details = append(details, domain.ReplyDetail{
			Id:       r.Id,
			Content:  r.DisplayContent(),
			Date:     r.CreatedAt,
			Username: r.Username,
		})
	}
	return details
}

// Creation time ascending; id breaks timestamp ties so the order is
// reproducible instead of depending on fetch order.
func sortComments(comments []domain.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].Id < comments[j].Id
	})
}

func sortReplies(replies []domain.Reply) {
	sort.Slice(replies, func(i, j int) bool {
		if !replies[i].CreatedAt.Equal(replies[j].CreatedAt) {
			return replies[i].CreatedAt.Before(replies[j].CreatedAt)
		}
		return replies[i].Id < replies[j].Id
	})
}

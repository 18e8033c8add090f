package domain

import "time"

// ThreadCreationData iterates thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title string `validate:"required,max=255"`
	Body  string `validate:"required"`
	Owner UserId `validate:"required"`
}

// NewThread builds a validated thread creation payload. Content is sanitized
// to plain text before validation, so markup-only input is rejected as empty.
func NewThread(title, body string, owner UserId) (ThreadCreationData, error) {
	data := ThreadCreationData{
		Title: sanitizeText(title),
		Body:  sanitizeText(body),
		Owner: owner,
	}
	if err := validateStruct(data); err != nil {
		return ThreadCreationData{}, err
	}
	return data, nil
}

// AddedThread is what the store returns for a freshly created thread.
type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

// Thread is the thread header joined with its author's display name.
type Thread struct {
	Id        ThreadId
	Title     string
	Body      string
	CreatedAt time.Time
	Username  Username
}

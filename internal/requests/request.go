package requests

import (
	"time"

	"uk.co.dudmesh.convene/internal/model"
	"uk.co.dudmesh.convene/pkg/correspondence"
)

// Request is a user's message to the organizers. It takes at most one
// reply and is resolved once an organizer has answered it.
type Request struct {
	ID          model.RequestID
	Author      model.Username
	Text        string
	SentAt      time.Time
	Reply       string
	ReplyAuthor model.Username
	Resolved    bool
}

func newRequest(text string, author model.Username, sentAt time.Time) *Request {
	return &Request{
		ID:     model.NewRequestID(),
		Author: author,
		Text:   text,
		SentAt: sentAt,
	}
}

func (r *Request) HasReply() bool {
	return r.Reply != ""
}

func (r *Request) String() string {
	return correspondence.RenderWithReply(string(r.Author), r.Text, r.SentAt, r.Reply)
}

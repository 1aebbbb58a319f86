package messaging

import (
	"time"

	"uk.co.dudmesh.convene/internal/model"
	"uk.co.dudmesh.convene/pkg/correspondence"
)

// Message is one unit of correspondence between users. Only the Store
// mutates a Message, and only by appending replies or soft-deleting it.
type Message struct {
	ID         model.MessageID
	Author     model.Username
	Text       string
	SentAt     time.Time
	Recipients []model.Username
	Nesting    int // 0 for thread roots, parent.Nesting+1 for replies
	Replies    []model.MessageID
}

func newMessage(text string, author model.Username, recipients []model.Username, nesting int, sentAt time.Time) *Message {
	return &Message{
		ID:         model.NewMessageID(),
		Author:     author,
		Text:       text,
		SentAt:     sentAt,
		Recipients: append([]model.Username(nil), recipients...),
		Nesting:    nesting,
		Replies:    []model.MessageID{},
	}
}

func (m *Message) HasRecipient(user model.Username) bool {
	for _, recipient := range m.Recipients {
		if recipient == user {
			return true
		}
	}
	return false
}

func (m *Message) String() string {
	return correspondence.Render(string(m.Author), m.Text, m.SentAt)
}

func (m *Message) addReply(id model.MessageID) {
	m.Replies = append(m.Replies, id)
}

func (m *Message) markAsDeleted() {
	m.Text = model.DeletedText
}

func (m *Message) clone() Message {
	c := *m
	c.Recipients = append([]model.Username(nil), m.Recipients...)
	c.Replies = append([]model.MessageID{}, m.Replies...)
	return c
}

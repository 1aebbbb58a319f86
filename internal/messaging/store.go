package messaging

import (
	"fmt"
	"time"

	"github.com/labstack/gommon/log"

	"uk.co.dudmesh.convene/internal/model"
)

// state is everything the Store persists. Messages are kept in insertion
// order, which is also chronological order since nothing is ever removed.
type state struct {
	Messages []*Message
	Archived map[model.Username][]model.MessageID
	Unread   map[model.Username]map[model.MessageID]bool
	Deleted  map[model.MessageID]bool
}

type Store struct {
	state state
	index map[model.MessageID]int
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		state: newState(),
		index: map[model.MessageID]int{},
		now:   time.Now,
	}
}

func newState() state {
	return state{
		Messages: []*Message{},
		Archived: map[model.Username][]model.MessageID{},
		Unread:   map[model.Username]map[model.MessageID]bool{},
		Deleted:  map[model.MessageID]bool{},
	}
}

func (s *Store) Len() int {
	return len(s.state.Messages)
}

func (s *Store) message(id model.MessageID) (*Message, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("message %s: %w", id, model.ErrorMessageNotFound)
	}
	return s.state.Messages[i], nil
}

func (s *Store) append(m *Message) {
	s.index[m.ID] = len(s.state.Messages)
	s.state.Messages = append(s.state.Messages, m)
}

// Message returns a copy of the message with the given id.
func (s *Store) Message(id model.MessageID) (Message, error) {
	m, err := s.message(id)
	if err != nil {
		return Message{}, err
	}
	return m.clone(), nil
}

// AddMessage appends a new message. Recipients must already have been
// validated as non-empty by the caller.
func (s *Store) AddMessage(text string, author model.Username, recipients []model.Username, nesting int) model.MessageID {
	m := newMessage(text, author, recipients, nesting, s.now())
	s.append(m)
	log.Debugf("message %s added by %s for %v", m.ID, author, recipients)
	return m.ID
}

// ReplyToMessage appends a reply addressed to the parent's author and links
// it from the parent.
func (s *Store) ReplyToMessage(text string, author model.Username, parentID model.MessageID) error {
	parent, err := s.message(parentID)
	if err != nil {
		return fmt.Errorf("replying: %w", err)
	}
	reply := newMessage(text, author, []model.Username{parent.Author}, parent.Nesting+1, s.now())
	s.append(reply)
	parent.addReply(reply.ID)
	log.Debugf("message %s added by %s as reply to %s", reply.ID, author, parentID)
	return nil
}

func (s *Store) Replies(id model.MessageID) ([]model.MessageID, error) {
	m, err := s.message(id)
	if err != nil {
		return nil, err
	}
	return append([]model.MessageID{}, m.Replies...), nil
}

func (s *Store) NestingLevel(id model.MessageID) (int, error) {
	m, err := s.message(id)
	if err != nil {
		return 0, err
	}
	return m.Nesting, nil
}

func (s *Store) MessageAsString(id model.MessageID) (string, error) {
	m, err := s.message(id)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func (s *Store) IsRecipient(user model.Username, id model.MessageID) (bool, error) {
	m, err := s.message(id)
	if err != nil {
		return false, err
	}
	return m.HasRecipient(user), nil
}

func (s *Store) IsAuthor(user model.Username, id model.MessageID) (bool, error) {
	m, err := s.message(id)
	if err != nil {
		return false, err
	}
	return m.Author == user, nil
}

// MarkAsDeleted soft-deletes a message: it stays in the store and keeps its
// replies, but displays the deletion marker to everyone.
func (s *Store) MarkAsDeleted(id model.MessageID) error {
	m, err := s.message(id)
	if err != nil {
		return fmt.Errorf("deleting: %w", err)
	}
	s.state.Deleted[id] = true
	m.markAsDeleted()
	log.Debugf("message %s marked as deleted", id)
	return nil
}

func (s *Store) IsDeleted(id model.MessageID) bool {
	return s.state.Deleted[id]
}

// MarkAsUnread does not check that id exists.
func (s *Store) MarkAsUnread(id model.MessageID, user model.Username) {
	unread, ok := s.state.Unread[user]
	if !ok {
		unread = map[model.MessageID]bool{}
		s.state.Unread[user] = unread
	}
	unread[id] = true
}

func (s *Store) UnmarkAsUnread(id model.MessageID, user model.Username) {
	if unread, ok := s.state.Unread[user]; ok {
		delete(unread, id)
	}
}

func (s *Store) DidUserMarkUnread(user model.Username, id model.MessageID) bool {
	return s.state.Unread[user][id]
}

// AddToArchive appends id to the user's archive. It does not check that id
// exists and does not deduplicate: archiving twice lists the message twice.
func (s *Store) AddToArchive(id model.MessageID, user model.Username) {
	s.state.Archived[user] = append(s.state.Archived[user], id)
}

func (s *Store) UserArchivedMessages(user model.Username) []model.MessageID {
	return append([]model.MessageID{}, s.state.Archived[user]...)
}

func (s *Store) isArchived(user model.Username, id model.MessageID) bool {
	for _, archived := range s.state.Archived[user] {
		if archived == id {
			return true
		}
	}
	return false
}

// InboxMessages returns, in insertion order, every message the user wrote or
// received that they have not archived. Soft-deleted messages are included.
func (s *Store) InboxMessages(user model.Username) []model.MessageID {
	ids := []model.MessageID{}
	for _, m := range s.state.Messages {
		if (m.Author == user || m.HasRecipient(user)) && !s.isArchived(user, m.ID) {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

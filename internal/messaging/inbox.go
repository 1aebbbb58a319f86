package messaging

import (
	"fmt"

	"uk.co.dudmesh.convene/internal/model"
)

// Entry is one line of a composed view.
type Entry struct {
	ID       model.MessageID
	Position int // 1-based
	Nesting  int
	Unread   bool
	Deleted  bool
	Text     string
}

// Composer turns the flat store into threaded views for one user at a time.
type Composer struct {
	store *Store
}

func NewComposer(store *Store) *Composer {
	return &Composer{store: store}
}

// InboxIDs lists the user's inbox in display order. Each thread root the
// user can see is followed by its whole reply tree, depth first, replies in
// the order they were added. A reply whose root the user archived does not
// appear, even if it is addressed to them.
func (c *Composer) InboxIDs(user model.Username) ([]model.MessageID, error) {
	visited := map[model.MessageID]bool{}
	ids := []model.MessageID{}
	for _, id := range c.store.InboxMessages(user) {
		nesting, err := c.store.NestingLevel(id)
		if err != nil {
			return nil, err
		}
		if nesting != 0 {
			continue
		}
		ids, err = c.expand(id, visited, ids)
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (c *Composer) expand(id model.MessageID, visited map[model.MessageID]bool, ids []model.MessageID) ([]model.MessageID, error) {
	if visited[id] {
		return ids, nil
	}
	visited[id] = true
	ids = append(ids, id)

	replies, err := c.store.Replies(id)
	if err != nil {
		return nil, fmt.Errorf("expanding thread %s: %w", id, err)
	}
	for _, reply := range replies {
		ids, err = c.expand(reply, visited, ids)
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (c *Composer) Inbox(user model.Username) ([]Entry, error) {
	ids, err := c.InboxIDs(user)
	if err != nil {
		return nil, err
	}
	return c.entries(user, ids, true)
}

// Archive lists the user's archived messages flat, in archive order,
// duplicates included.
func (c *Composer) Archive(user model.Username) ([]Entry, error) {
	return c.entries(user, c.store.UserArchivedMessages(user), false)
}

func (c *Composer) entries(user model.Username, ids []model.MessageID, threaded bool) ([]Entry, error) {
	entries := make([]Entry, 0, len(ids))
	for i, id := range ids {
		m, err := c.store.message(id)
		if err != nil {
			return nil, err
		}
		entry := Entry{
			ID:       id,
			Position: i + 1,
			Deleted:  c.store.IsDeleted(id),
			Text:     m.String(),
		}
		if threaded {
			entry.Nesting = m.Nesting
			entry.Unread = c.store.DidUserMarkUnread(user, id)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

package messaging

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"uk.co.dudmesh.convene/internal/model"
)

// MarshalBinary encodes the messages and every per-user overlay.
func (s *Store) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s.state); err != nil {
		return nil, fmt.Errorf("encoding message store: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the store's contents with a previously marshalled
// snapshot and rebuilds the id index.
func (s *Store) UnmarshalBinary(data []byte) error {
	decoded := newState()
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&decoded); err != nil {
		return fmt.Errorf("decoding message store: %w", err)
	}
	if decoded.Messages == nil {
		decoded.Messages = []*Message{}
	}
	if decoded.Archived == nil {
		decoded.Archived = map[model.Username][]model.MessageID{}
	}
	if decoded.Unread == nil {
		decoded.Unread = map[model.Username]map[model.MessageID]bool{}
	}
	if decoded.Deleted == nil {
		decoded.Deleted = map[model.MessageID]bool{}
	}

	index := make(map[model.MessageID]int, len(decoded.Messages))
	for i, m := range decoded.Messages {
		if m.Replies == nil {
			m.Replies = []model.MessageID{}
		}
		index[m.ID] = i
	}

	s.state = decoded
	s.index = index
	return nil
}

package requests

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"

	"uk.co.dudmesh.convene/internal/model"
)

type snapshot struct {
	Requests []*Request
}

type Store struct {
	requests []*Request
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		requests: []*Request{},
		now:      time.Now,
	}
}

func (s *Store) find(id model.RequestID) (int, *Request) {
	for i, r := range s.requests {
		if r.ID == id {
			return i, r
		}
	}
	return -1, nil
}

func (s *Store) request(id model.RequestID) (*Request, error) {
	_, r := s.find(id)
	if r == nil {
		return nil, fmt.Errorf("request %s: %w", id, model.ErrorRequestNotFound)
	}
	return r, nil
}

func (s *Store) AddRequest(text string, author model.Username) model.RequestID {
	r := newRequest(text, author, s.now())
	s.requests = append(s.requests, r)
	log.Debugf("request %s added by %s", r.ID, author)
	return r.ID
}

// Request returns a copy of the request with the given id.
func (s *Store) Request(id model.RequestID) (Request, error) {
	r, err := s.request(id)
	if err != nil {
		return Request{}, err
	}
	return *r, nil
}

func (s *Store) Requests() []model.RequestID {
	ids := make([]model.RequestID, 0, len(s.requests))
	for _, r := range s.requests {
		ids = append(ids, r.ID)
	}
	return ids
}

func (s *Store) UserRequests(user model.Username) []model.RequestID {
	ids := []model.RequestID{}
	for _, r := range s.requests {
		if r.Author == user {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// DeleteRequest removes a request outright. Unknown ids are ignored.
func (s *Store) DeleteRequest(id model.RequestID) {
	i, r := s.find(id)
	if r == nil {
		return
	}
	s.requests = append(s.requests[:i], s.requests[i+1:]...)
	log.Debugf("request %s deleted", id)
}

func (s *Store) IsAuthor(user model.Username, id model.RequestID) (bool, error) {
	r, err := s.request(id)
	if err != nil {
		return false, err
	}
	return r.Author == user, nil
}

// AddReply records an organizer's answer, replacing any earlier one.
// Guarding against a second reply is up to the caller.
func (s *Store) AddReply(text string, id model.RequestID, author model.Username) error {
	r, err := s.request(id)
	if err != nil {
		return fmt.Errorf("replying: %w", err)
	}
	r.Reply = text
	r.ReplyAuthor = author
	log.Debugf("request %s answered by %s", id, author)
	return nil
}

func (s *Store) HasReply(id model.RequestID) (bool, error) {
	r, err := s.request(id)
	if err != nil {
		return false, err
	}
	return r.HasReply(), nil
}

func (s *Store) UpdateStatus(id model.RequestID) error {
	r, err := s.request(id)
	if err != nil {
		return fmt.Errorf("resolving: %w", err)
	}
	r.Resolved = true
	return nil
}

func (s *Store) RequestAsString(id model.RequestID) (string, error) {
	r, err := s.request(id)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (s *Store) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snapshot{Requests: s.requests}); err != nil {
		return nil, fmt.Errorf("encoding request store: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *Store) UnmarshalBinary(data []byte) error {
	var decoded snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&decoded); err != nil {
		return fmt.Errorf("decoding request store: %w", err)
	}
	if decoded.Requests == nil {
		decoded.Requests = []*Request{}
	}
	s.requests = decoded.Requests
	return nil
}

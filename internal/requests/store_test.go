package requests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uk.co.dudmesh.convene/internal/model"
)

func newTestStore() *Store {
	s := NewStore()
	s.now = func() time.Time { return time.Date(2024, 3, 7, 9, 5, 0, 0, time.UTC) }
	return s
}

func TestRequestLifecycle(t *testing.T) {
	assert := assert.New(t)
	s := newTestStore()

	id := s.AddRequest("Need a projector", "dave")

	t.Run("Pending", func(t *testing.T) {
		hasReply, err := s.HasReply(id)
		assert.Nil(err)
		assert.False(hasReply)

		r, err := s.Request(id)
		assert.Nil(err)
		assert.Equal(model.Username("dave"), r.Author)
		assert.False(r.Resolved)

		rendered, err := s.RequestAsString(id)
		assert.Nil(err)
		assert.Equal("07-03 09:05\ndave said:\n> Need a projector\n \t>\n", rendered)
	})

	t.Run("Reply", func(t *testing.T) {
		assert.Nil(s.AddReply("Sure", id, "orgUser"))
		hasReply, err := s.HasReply(id)
		assert.Nil(err)
		assert.True(hasReply)

		assert.Nil(s.AddReply("Actually no", id, "orgUser"))
		r, _ := s.Request(id)
		assert.Equal("Actually no", r.Reply)
		assert.Equal(model.Username("orgUser"), r.ReplyAuthor)
		assert.False(r.Resolved)

		rendered, err := s.RequestAsString(id)
		assert.Nil(err)
		assert.Equal("07-03 09:05\ndave said:\n> Need a projector\n \t>Actually no\n", rendered)
	})

	t.Run("Resolve", func(t *testing.T) {
		assert.Nil(s.UpdateStatus(id))
		assert.Nil(s.UpdateStatus(id))
		r, _ := s.Request(id)
		assert.True(r.Resolved)
	})

	t.Run("Author", func(t *testing.T) {
		isAuthor, err := s.IsAuthor("dave", id)
		assert.Nil(err)
		assert.True(isAuthor)
		isAuthor, _ = s.IsAuthor("orgUser", id)
		assert.False(isAuthor)
	})
}

func TestListing(t *testing.T) {
	assert := assert.New(t)
	s := newTestStore()

	first := s.AddRequest("one", "dave")
	second := s.AddRequest("two", "erin")
	third := s.AddRequest("three", "dave")

	assert.Equal([]model.RequestID{first, second, third}, s.Requests())
	assert.Equal([]model.RequestID{first, third}, s.UserRequests("dave"))
	assert.Empty(s.UserRequests("nobody"))

	s.DeleteRequest(second)
	s.DeleteRequest(second)
	s.DeleteRequest("missing")
	assert.Equal([]model.RequestID{first, third}, s.Requests())

	_, err := s.Request(second)
	assert.ErrorIs(err, model.ErrorRequestNotFound)
}

func TestNotFound(t *testing.T) {
	assert := assert.New(t)
	s := newTestStore()

	_, err := s.Request("missing")
	assert.ErrorIs(err, model.ErrorRequestNotFound)
	_, err = s.IsAuthor("dave", "missing")
	assert.ErrorIs(err, model.ErrorRequestNotFound)
	_, err = s.HasReply("missing")
	assert.ErrorIs(err, model.ErrorRequestNotFound)
	_, err = s.RequestAsString("missing")
	assert.ErrorIs(err, model.ErrorRequestNotFound)
	assert.ErrorIs(s.AddReply("hi", "missing", "orgUser"), model.ErrorRequestNotFound)
	assert.ErrorIs(s.UpdateStatus("missing"), model.ErrorRequestNotFound)
}

func TestMarshalBinary(t *testing.T) {
	assert := assert.New(t)
	s := newTestStore()

	first := s.AddRequest("one", "dave")
	second := s.AddRequest("two", "erin")
	assert.Nil(s.AddReply("done", first, "orgUser"))
	assert.Nil(s.UpdateStatus(first))

	data, err := s.MarshalBinary()
	require.Nil(t, err)

	restored := NewStore()
	require.Nil(t, restored.UnmarshalBinary(data))
	assert.Equal([]model.RequestID{first, second}, restored.Requests())

	r, err := restored.Request(first)
	assert.Nil(err)
	assert.Equal("done", r.Reply)
	assert.True(r.Resolved)

	t.Run("Empty", func(t *testing.T) {
		data, err := NewStore().MarshalBinary()
		require.Nil(t, err)
		empty := NewStore()
		assert.Nil(empty.UnmarshalBinary(data))
		assert.Empty(empty.Requests())
	})
}

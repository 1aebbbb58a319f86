package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uk.co.dudmesh.convene/internal/messaging"
	"uk.co.dudmesh.convene/internal/model"
	"uk.co.dudmesh.convene/internal/requests"
)

type fakeUsers struct {
	users map[model.Username]*model.User
	order []model.Username
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[model.Username]*model.User{}}
}

func (f *fakeUsers) Create(params *model.CreateUserParams) (*model.User, error) {
	if _, ok := f.users[params.Handle]; ok {
		return nil, model.ErrorUserExists
	}
	user := &model.User{
		ID:       model.NewUserID(),
		Status:   model.UserStatusActive,
		Handle:   params.Handle,
		Type:     params.Type,
		Password: params.Password,
	}
	f.users[params.Handle] = user
	f.order = append(f.order, params.Handle)
	return user, nil
}

func (f *fakeUsers) Authenticate(handle model.Username, password string) (*model.User, error) {
	user, ok := f.users[handle]
	if !ok || user.Password != password {
		return nil, model.ErrorInvalidUsernameOrPassword
	}
	return user, nil
}

func (f *fakeUsers) FilterExisting(handles []model.Username) ([]model.Username, error) {
	existing := []model.Username{}
	for _, handle := range handles {
		if _, ok := f.users[handle]; ok {
			existing = append(existing, handle)
		}
	}
	return existing, nil
}

func (f *fakeUsers) UsernamesOfType(userType model.UserType) ([]model.Username, error) {
	handles := []model.Username{}
	for _, handle := range f.order {
		if f.users[handle].Type == userType {
			handles = append(handles, handle)
		}
	}
	return handles, nil
}

type fixture struct {
	users    *fakeUsers
	messages *messaging.Store
	requests *requests.Store
}

func newFixture(t *testing.T, users ...model.CreateUserParams) *fixture {
	f := &fixture{
		users:    newFakeUsers(),
		messages: messaging.NewStore(),
		requests: requests.NewStore(),
	}
	for _, params := range users {
		params := params
		_, err := f.users.Create(&params)
		require.Nil(t, err)
	}
	return f
}

// run feeds the lines to a fresh console and returns everything it printed.
func (f *fixture) run(t *testing.T, lines ...string) string {
	out := &bytes.Buffer{}
	c := New(strings.NewReader(strings.Join(lines, "\n")+"\n"), out, Deps{
		Users:     f.users,
		Messages:  f.messages,
		Requests:  f.requests,
		LogOutput: io.Discard,
	})
	require.Nil(t, c.Run())
	return out.String()
}

func TestSignUpAndConversation(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t)

	output := f.run(t,
		"1", "alice", "pw",
		"1", "bob", "pw",
		"1", "bob", "other",
		"2", "alice", "pw",
		"4", "bob, ghost", "Hi",
		"1",
		"2", "bob", "wrong", "bob", "pw",
		"2", "2", "1", "1", "Hello",
		"2", "1",
		"1",
		"3",
	)

	alice, _ := f.users.Authenticate("alice", "pw")
	bob, _ := f.users.Authenticate("bob", "pw")
	require.NotNil(t, alice)
	require.NotNil(t, bob)
	assert.Equal(model.UserTypeOrganizer, alice.Type)
	assert.Equal(model.UserTypeAttendee, bob.Type)

	assert.Contains(output, promptOrganizerFirst)
	assert.Equal(1, strings.Count(output, promptOrganizerFirst))
	assert.Contains(output, promptUsernameTaken)
	assert.Contains(output, promptMessageSent+"\nbob\n")
	assert.Contains(output, promptBadLogin)
	assert.Contains(output, "Welcome back, bob!")
	assert.Contains(output, "1 - Reply\n2 - Archive\n3 - Mark as unread\n4 - Cancel")
	assert.Contains(output, promptReplySent)

	require.Equal(t, 2, f.messages.Len())
	inbox, err := messaging.NewComposer(f.messages).InboxIDs("alice")
	assert.Nil(err)
	require.Len(t, inbox, 2)
	isRecipient, err := f.messages.IsRecipient("alice", inbox[1])
	assert.Nil(err)
	assert.True(isRecipient)
	assert.Contains(output, "2: \t")
	assert.Contains(output, "\tbob said:\n\t> Hello\n")
}

func TestMessageInteraction(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t,
		model.CreateUserParams{Handle: "org", Password: "pw", Type: model.UserTypeOrganizer},
		model.CreateUserParams{Handle: "alice", Password: "pw", Type: model.UserTypeAttendee},
		model.CreateUserParams{Handle: "bob", Password: "pw", Type: model.UserTypeAttendee},
	)

	output := f.run(t,
		"2", "org", "pw",
		"6", "attendee", "Welcome all",
		"6", "janitor",
		"6", "vip",
		"2", "2", "1", "1",
		"2", "2", "1", "2",
		"2", "1",
		"3",
		"1",
	)

	require.Equal(t, 1, f.messages.Len())
	ids := f.messages.InboxMessages("alice")
	require.Len(t, ids, 1)
	id := ids[0]
	m, err := f.messages.Message(id)
	assert.Nil(err)
	assert.Equal([]model.Username{"alice", "bob"}, m.Recipients)

	assert.Contains(output, promptMessageSent+"\nalice, bob\n")
	assert.Contains(output, promptBadUserType)
	assert.Contains(output, promptNoRecipients)
	assert.Contains(output, "1 - Delete\n2 - Archive\n3 - Mark as unread\n4 - Cancel")
	assert.Contains(output, "1 - Archive\n2 - Mark as unread\n3 - Cancel")
	assert.Contains(output, promptDeleted)
	assert.Contains(output, promptMarkedUnread)
	assert.Contains(output, "> [DELETED]\n[UNREAD!]\n")
	assert.Contains(output, promptEmptyArchive)

	assert.True(f.messages.IsDeleted(id))
	assert.True(f.messages.DidUserMarkUnread("org", id))
	assert.False(f.messages.DidUserMarkUnread("alice", id))
}

func TestArchiveFromInbox(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t,
		model.CreateUserParams{Handle: "alice", Password: "pw", Type: model.UserTypeAttendee},
		model.CreateUserParams{Handle: "bob", Password: "pw", Type: model.UserTypeAttendee},
	)
	id := f.messages.AddMessage("Hi", "alice", []model.Username{"bob"}, 0)

	output := f.run(t,
		"2", "bob", "pw",
		"2", "2", "9", "1", "7", "2",
		"2",
		"3",
		"1", "3",
	)

	assert.Contains(output, promptBadMessageNumber)
	assert.Contains(output, promptInvalidCommand)
	assert.Contains(output, promptArchived)
	assert.Contains(output, promptEmptyInbox)
	assert.Contains(output, promptArchiveTitle+"\n1: ")
	assert.Equal([]model.MessageID{id}, f.messages.UserArchivedMessages("bob"))
	assert.Empty(f.messages.InboxMessages("bob"))
}

func TestRequests(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t,
		model.CreateUserParams{Handle: "orgUser", Password: "pw", Type: model.UserTypeOrganizer},
		model.CreateUserParams{Handle: "dave", Password: "pw", Type: model.UserTypeAttendee},
	)

	t.Run("Attendee", func(t *testing.T) {
		output := f.run(t,
			"2", "dave", "pw",
			"5", "2", "3", "Need a projector", "2", "4", "1",
			"1", "3",
		)
		assert.Contains(output, promptNoUserRequests)
		assert.Contains(output, promptRequestSent)
		assert.Contains(output, "dave said:\n> Need a projector\n \t>\n [PENDING]\n")
		assert.Contains(output, promptInvalidCommand)
		assert.Len(f.requests.UserRequests("dave"), 1)
	})

	t.Run("Organizer", func(t *testing.T) {
		output := f.run(t,
			"2", "orgUser", "pw",
			"5", "6", "1", "Sure", "6", "1", "5",
			"1", "1", "3",
		)
		assert.Contains(output, promptAlreadyReplied)
		assert.Contains(output, "> Need a projector\n \t>Sure\n [ADDRESSED]\n")

		id := f.requests.Requests()[0]
		r, err := f.requests.Request(id)
		assert.Nil(err)
		assert.Equal("Sure", r.Reply)
		assert.Equal(model.Username("orgUser"), r.ReplyAuthor)
		assert.True(r.Resolved)
	})

	t.Run("Delete", func(t *testing.T) {
		output := f.run(t,
			"2", "orgUser", "pw",
			"5", "4", "1", "4", "5",
			"1", "1", "3",
		)
		assert.Contains(output, promptRequestDeleted)
		assert.Contains(output, promptNoRequests)
		assert.Empty(f.requests.Requests())
	})
}

func TestEndOfInput(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t,
		model.CreateUserParams{Handle: "alice", Password: "pw", Type: model.UserTypeAttendee},
	)

	output := f.run(t, "x", "2", "alice", "pw", "9", "4")
	assert.Contains(output, promptStartError)
	assert.Contains(output, promptInvalidCommand)
	assert.Contains(output, promptRecipients)
	assert.Equal(0, f.messages.Len())
}

func TestParseRecipients(t *testing.T) {
	tests := []struct {
		line     string
		expected []model.Username
	}{
		{"bob", []model.Username{"bob"}},
		{"bob,carol", []model.Username{"bob", "carol"}},
		{" bob ,  carol ,", []model.Username{"bob", "carol"}},
		{"", []model.Username{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRecipients(tt.line))
		})
	}
}

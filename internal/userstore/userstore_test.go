package userstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uk.co.dudmesh.convene/internal/boot"
	"uk.co.dudmesh.convene/internal/model"
)

func testConfig(t *testing.T) *boot.Config {
	return &boot.Config{
		Env:           "test",
		DataDirectory: t.TempDir(),
		DatabaseFile:  "convene.db",
	}
}

func newUser(handle model.Username, userType model.UserType) *model.User {
	return &model.User{
		ID:        model.NewUserID(),
		CreatedAt: time.Now().UTC(),
		Status:    model.UserStatusActive,
		Handle:    handle,
		Type:      userType,
		Password:  "hash",
	}
}

func TestUserstore(t *testing.T) {
	assert := assert.New(t)
	config := testConfig(t)

	store, err := Open(config)
	require.Nil(t, err)
	defer store.Close()

	t.Run("Create", func(t *testing.T) {
		assert.Nil(store.Create(newUser("alice", model.UserTypeAttendee)))
		assert.Nil(store.Create(newUser("orgUser", model.UserTypeOrganizer)))
		assert.Nil(store.Create(newUser("bob", model.UserTypeAttendee)))
		assert.NotNil(store.Create(newUser("alice", model.UserTypeSpeaker)))
	})

	t.Run("FetchByHandle", func(t *testing.T) {
		user, err := store.FetchByHandle("orgUser")
		assert.Nil(err)
		if assert.NotNil(user) {
			assert.Equal(model.UserTypeOrganizer, user.Type)
			assert.Equal(model.UserStatusActive, user.Status)
		}

		_, err = store.FetchByHandle("nobody")
		assert.ErrorIs(err, model.ErrorUserNotFound)
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := store.Exists("bob")
		assert.Nil(err)
		assert.True(exists)
		exists, err = store.Exists("carol")
		assert.Nil(err)
		assert.False(exists)
	})

	t.Run("ListByType", func(t *testing.T) {
		handles, err := store.ListByType(model.UserTypeAttendee)
		assert.Nil(err)
		assert.Equal([]model.Username{"alice", "bob"}, handles)

		handles, err = store.ListByType(model.UserTypeVIP)
		assert.Nil(err)
		assert.Empty(handles)
	})

	t.Run("Reopen", func(t *testing.T) {
		again, err := Open(config)
		require.Nil(t, err)
		defer again.Close()
		exists, err := again.Exists("alice")
		assert.Nil(err)
		assert.True(exists)
	})
}

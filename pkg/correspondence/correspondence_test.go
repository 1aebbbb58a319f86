package correspondence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	assert := assert.New(t)
	sentAt := time.Date(2024, time.March, 7, 9, 5, 0, 0, time.UTC)

	t.Run("Message", func(t *testing.T) {
		assert.Equal("07-03 09:05\nalice said:\n> Hi\n", Render("alice", "Hi", sentAt))
	})

	t.Run("Request with reply", func(t *testing.T) {
		got := RenderWithReply("dave", "Need a projector", sentAt, "Sure")
		assert.Equal("07-03 09:05\ndave said:\n> Need a projector\n \t>Sure\n", got)
	})

	t.Run("Request without reply", func(t *testing.T) {
		got := RenderWithReply("dave", "Need a projector", sentAt, "")
		assert.Equal("07-03 09:05\ndave said:\n> Need a projector\n \t>\n", got)
	})
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		depth int
		want  string
	}{
		{"no depth", "a\nb\n", 0, "a\nb\n"},
		{"one level", "a\nb\n", 1, "\ta\n\tb\n"},
		{"two levels", "a\nb\n", 2, "\t\ta\n\t\tb\n"},
		{"no trailing newline", "a\nb", 1, "\ta\n\tb"},
		{"empty", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Indent(tt.in, tt.depth))
		})
	}
}

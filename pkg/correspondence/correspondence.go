// Package correspondence holds the rendering shared by messages and
// organizer requests: both carry an author, a text and a send time.
package correspondence

import (
	"fmt"
	"strings"
	"time"
)

const TimestampLayout = "02-01 15:04"

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Render returns "<dd-MM HH:mm>\n<author> said:\n> <text>\n".
func Render(author string, text string, sentAt time.Time) string {
	sb := strings.Builder{}
	sb.WriteString(FormatTimestamp(sentAt))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s said:\n> %s\n", author, text))
	return sb.String()
}

// RenderWithReply appends the reply as a quoted sub-line.
func RenderWithReply(author string, text string, sentAt time.Time, reply string) string {
	return Render(author, text, sentAt) + fmt.Sprintf(" \t>%s\n", reply)
}

// Indent prefixes every line of s with depth tabs.
func Indent(s string, depth int) string {
	if depth <= 0 || s == "" {
		return s
	}
	indent := strings.Repeat("\t", depth)
	lines := strings.SplitAfter(s, "\n")
	sb := strings.Builder{}
	for _, line := range lines {
		if line == "" {
			continue
		}
		sb.WriteString(indent)
		sb.WriteString(line)
	}
	return sb.String()
}

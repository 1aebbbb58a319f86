package console

import (
	"fmt"
	"strings"

	"uk.co.dudmesh.convene/internal/messaging"
	"uk.co.dudmesh.convene/internal/model"
	"uk.co.dudmesh.convene/pkg/correspondence"
)

type messageOption int

const (
	optionReply messageOption = iota
	optionDelete
	optionArchive
	optionMarkUnread
	optionUnmarkUnread
	optionCancel
)

var optionLabels = map[messageOption]string{
	optionReply:        "Reply",
	optionDelete:       "Delete",
	optionArchive:      "Archive",
	optionMarkUnread:   "Mark as unread",
	optionUnmarkUnread: "Unmark unread",
	optionCancel:       "Cancel",
}

func (c *Console) printEntry(entry messaging.Entry) {
	text := entry.Text
	if entry.Unread {
		text += unreadSuffix
	}
	fmt.Fprintf(c.out, "%d: %s", entry.Position, correspondence.Indent(text, entry.Nesting))
}

func (c *Console) viewInbox() error {
	entries, err := c.composer.Inbox(c.user)
	if err != nil {
		c.fail(err)
		return nil
	}
	if len(entries) == 0 {
		c.println(promptEmptyInbox)
		return nil
	}

	c.println(promptInboxTitle)
	for _, entry := range entries {
		c.printEntry(entry)
	}
	c.println(promptEndOfInbox)

	for {
		line, err := c.prompt(promptInboxMenu)
		if err != nil {
			return err
		}
		switch strings.TrimSpace(line) {
		case "1":
			return nil
		case "2":
			return c.interact(entries)
		default:
			c.println(promptInvalidCommand)
		}
	}
}

func (c *Console) viewArchive() {
	entries, err := c.composer.Archive(c.user)
	if err != nil {
		c.fail(err)
		return
	}
	if len(entries) == 0 {
		c.println(promptEmptyArchive)
		return
	}

	c.println(promptArchiveTitle)
	for _, entry := range entries {
		c.printEntry(entry)
	}
	c.println(promptEndOfArchive)
}

// messageOptions lists what the user may do with a message: reply when they
// received it, delete when they wrote it and it is not already deleted.
func (c *Console) messageOptions(id model.MessageID) ([]messageOption, error) {
	options := []messageOption{}

	isRecipient, err := c.deps.Messages.IsRecipient(c.user, id)
	if err != nil {
		return nil, err
	}
	if isRecipient {
		options = append(options, optionReply)
	}

	isAuthor, err := c.deps.Messages.IsAuthor(c.user, id)
	if err != nil {
		return nil, err
	}
	if isAuthor && !c.deps.Messages.IsDeleted(id) {
		options = append(options, optionDelete)
	}

	options = append(options, optionArchive)
	if c.deps.Messages.DidUserMarkUnread(c.user, id) {
		options = append(options, optionUnmarkUnread)
	} else {
		options = append(options, optionMarkUnread)
	}
	return append(options, optionCancel), nil
}

func (c *Console) interact(entries []messaging.Entry) error {
	selection, err := c.promptInt(promptMessageSelection, promptBadMessageNumber, len(entries))
	if err != nil {
		return err
	}
	id := entries[selection-1].ID

	options, err := c.messageOptions(id)
	if err != nil {
		c.fail(err)
		return nil
	}
	menu := strings.Builder{}
	menu.WriteString(promptInteractionTitle)
	for i, option := range options {
		menu.WriteString(fmt.Sprintf("\n%d - %s", i+1, optionLabels[option]))
	}
	choice, err := c.promptInt(menu.String(), promptInvalidCommand, len(options))
	if err != nil {
		return err
	}

	switch options[choice-1] {
	case optionReply:
		text, err := c.prompt(promptText)
		if err != nil {
			return err
		}
		if err := c.deps.Messages.ReplyToMessage(text, c.user, id); err != nil {
			c.fail(err)
			return nil
		}
		c.println(promptReplySent)
	case optionDelete:
		if err := c.deps.Messages.MarkAsDeleted(id); err != nil {
			c.fail(err)
			return nil
		}
		c.println(promptDeleted)
	case optionArchive:
		c.deps.Messages.AddToArchive(id, c.user)
		c.println(promptArchived)
	case optionMarkUnread:
		c.deps.Messages.MarkAsUnread(id, c.user)
		c.println(promptMarkedUnread)
	case optionUnmarkUnread:
		c.deps.Messages.UnmarkAsUnread(id, c.user)
		c.println(promptUnmarkedUnread)
	case optionCancel:
	}
	return nil
}

// parseRecipients splits a comma separated list of usernames.
func parseRecipients(line string) []model.Username {
	recipients := []model.Username{}
	for _, part := range strings.Split(line, ",") {
		if handle := strings.TrimSpace(part); handle != "" {
			recipients = append(recipients, model.Username(handle))
		}
	}
	return recipients
}

func (c *Console) sendMessage() error {
	line, err := c.prompt(promptRecipients)
	if err != nil {
		return err
	}
	recipients, err := c.deps.Users.FilterExisting(parseRecipients(line))
	if err != nil {
		return fmt.Errorf("checking recipients: %w", err)
	}
	return c.send(recipients)
}

// broadcast lets an organizer message every user of one type.
func (c *Console) broadcast() error {
	line, err := c.prompt(promptUserType)
	if err != nil {
		return err
	}
	userType, ok := model.ParseUserType(strings.ToLower(strings.TrimSpace(line)))
	if !ok {
		c.println(promptBadUserType)
		return nil
	}

	handles, err := c.deps.Users.UsernamesOfType(userType)
	if err != nil {
		return fmt.Errorf("listing %s users: %w", userType, err)
	}
	recipients := []model.Username{}
	for _, handle := range handles {
		if handle != c.user {
			recipients = append(recipients, handle)
		}
	}
	return c.send(recipients)
}

func (c *Console) send(recipients []model.Username) error {
	if len(recipients) == 0 {
		c.println(promptNoRecipients)
		return nil
	}

	text, err := c.prompt(promptText)
	if err != nil {
		return err
	}
	id := c.deps.Messages.AddMessage(text, c.user, recipients, 0)
	c.log.Debugf("%s sent %s to %d recipients", c.user, id, len(recipients))

	names := make([]string, 0, len(recipients))
	for _, r := range recipients {
		names = append(names, string(r))
	}
	c.println(promptMessageSent)
	c.println(strings.Join(names, ", "))
	return nil
}

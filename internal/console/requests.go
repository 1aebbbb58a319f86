package console

import (
	"fmt"
	"strings"

	"uk.co.dudmesh.convene/internal/model"
)

func (c *Console) requestMenu() error {
	last := 3
	menu := promptRequestMenu
	if c.isOrganizer() {
		last = 6
		menu += "\n" + promptRequestMenuOrganizer
	}

	for {
		choice, err := c.promptInt(menu, promptInvalidCommand, last)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			return nil
		case 2:
			c.listRequests(promptUserRequests, promptNoUserRequests, c.deps.Requests.UserRequests(c.user))
		case 3:
			err = c.makeRequest()
		case 4:
			err = c.deleteRequest()
		case 5:
			c.listRequests(promptAllRequests, promptNoRequests, c.deps.Requests.Requests())
		case 6:
			err = c.replyToRequest()
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) listRequests(title string, empty string, ids []model.RequestID) {
	if len(ids) == 0 {
		c.println(empty)
		return
	}

	c.println(title)
	for i, id := range ids {
		request, err := c.deps.Requests.Request(id)
		if err != nil {
			c.fail(err)
			return
		}
		status := statusPending
		if request.Resolved {
			status = statusAddressed
		}
		fmt.Fprintf(c.out, "%d: %s %s\n", i+1, request.String(), status)
	}
	c.println(promptEndOfRequests)
}

func (c *Console) makeRequest() error {
	text, err := c.prompt(promptText)
	if err != nil {
		return err
	}
	id := c.deps.Requests.AddRequest(text, c.user)
	c.log.Debugf("%s made request %s", c.user, id)
	c.println(promptRequestSent)
	return nil
}

// selectRequest asks for a position in the full request list. It reports
// false when there is nothing to choose from.
func (c *Console) selectRequest() (model.RequestID, bool, error) {
	ids := c.deps.Requests.Requests()
	if len(ids) == 0 {
		c.println(promptNoRequests)
		return "", false, nil
	}
	n, err := c.promptInt(promptRequestSelection, promptBadRequestNumber, len(ids))
	if err != nil {
		return "", false, err
	}
	return ids[n-1], true, nil
}

func (c *Console) deleteRequest() error {
	id, ok, err := c.selectRequest()
	if err != nil || !ok {
		return err
	}
	c.deps.Requests.DeleteRequest(id)
	c.log.Infof("%s deleted request %s", c.user, id)
	c.println(promptRequestDeleted)
	return nil
}

// replyToRequest answers a request once; a request that already has a reply
// is left alone.
func (c *Console) replyToRequest() error {
	id, ok, err := c.selectRequest()
	if err != nil || !ok {
		return err
	}

	hasReply, err := c.deps.Requests.HasReply(id)
	if err != nil {
		c.fail(err)
		return nil
	}
	if hasReply {
		c.println(promptAlreadyReplied)
		return nil
	}

	text, err := c.prompt(promptRequestReply)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		c.println(promptInvalidCommand)
		return nil
	}
	if err := c.deps.Requests.AddReply(text, id, c.user); err != nil {
		c.fail(err)
		return nil
	}
	if err := c.deps.Requests.UpdateStatus(id); err != nil {
		c.fail(err)
		return nil
	}
	c.println(promptReplySent)
	return nil
}

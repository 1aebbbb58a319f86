// Package console is the line-oriented front end of the conference: it
// signs users up, logs them in and drives the messaging and request menus.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"

	"uk.co.dudmesh.convene/internal/messaging"
	"uk.co.dudmesh.convene/internal/model"
	"uk.co.dudmesh.convene/internal/requests"
)

// Users is the account directory the console signs users up and logs them
// in against.
type Users interface {
	Create(params *model.CreateUserParams) (*model.User, error)
	Authenticate(handle model.Username, password string) (*model.User, error)
	FilterExisting(handles []model.Username) ([]model.Username, error)
	UsernamesOfType(userType model.UserType) ([]model.Username, error)
}

type Deps struct {
	Users    Users
	Messages *messaging.Store
	Requests *requests.Store

	// LogOutput receives the session log. Defaults to stderr.
	LogOutput io.Writer
	LogLevel  log.Lvl
}

type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	deps     Deps
	composer *messaging.Composer
	log      *log.Logger

	user     model.Username
	userType model.UserType
}

func New(in io.Reader, out io.Writer, deps Deps) *Console {
	logger := log.New(cuid2.Generate())
	if deps.LogOutput != nil {
		logger.SetOutput(deps.LogOutput)
	} else {
		logger.SetOutput(os.Stderr)
	}
	if deps.LogLevel != 0 {
		logger.SetLevel(deps.LogLevel)
	} else {
		logger.SetLevel(log.INFO)
	}

	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		deps:     deps,
		composer: messaging.NewComposer(deps.Messages),
		log:      logger,
	}
}

// Run serves sessions until the user quits or the input runs out.
func (c *Console) Run() error {
	c.log.Infof("console started")
	for {
		quit, err := c.startMenu()
		if err == nil && !quit {
			err = c.mainMenu()
		}
		if errors.Is(err, io.EOF) {
			quit = true
		} else if err != nil {
			return err
		}
		if quit {
			c.log.Infof("console stopped")
			return nil
		}
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

func (c *Console) prompt(s string) (string, error) {
	c.println(s)
	return c.readLine()
}

// promptInt keeps asking until the answer is a number between 1 and last.
func (c *Console) promptInt(s string, invalid string, last int) (int, error) {
	c.println(s)
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= last {
			return n, nil
		}
		c.println(invalid)
	}
}

// fail reports an unexpected store error to the user as a single line.
func (c *Console) fail(err error) {
	c.log.Errorf("%s: %v", c.user, err)
	c.println(promptFailure)
}

func (c *Console) startMenu() (bool, error) {
	c.println(promptWelcome)
	c.println(promptStartMenu)
	for {
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(line) {
		case "1":
			if err := c.signUp(); err != nil {
				return false, err
			}
			c.println(promptWelcome)
			c.println(promptStartMenu)
		case "2":
			return false, c.login()
		case "3":
			return true, nil
		default:
			c.println(promptStartError)
			c.println(promptStartMenu)
		}
	}
}

// signUp creates an attendee account, or an organizer account while the
// conference has no organizer yet.
func (c *Console) signUp() error {
	userType := model.UserTypeAttendee
	organizers, err := c.deps.Users.UsernamesOfType(model.UserTypeOrganizer)
	if err != nil {
		return fmt.Errorf("listing organizers: %w", err)
	}
	if len(organizers) == 0 {
		c.println(promptOrganizerFirst)
		userType = model.UserTypeOrganizer
	}

	handle, err := c.prompt(promptUsername)
	if err != nil {
		return err
	}
	handle = strings.TrimSpace(handle)
	if handle == "" {
		c.println(promptEmptyUsername)
		return nil
	}
	password, err := c.prompt(promptPassword)
	if err != nil {
		return err
	}

	_, err = c.deps.Users.Create(&model.CreateUserParams{
		Handle:   model.Username(handle),
		Password: password,
		Type:     userType,
	})
	if errors.Is(err, model.ErrorUserExists) {
		c.println(promptUsernameTaken)
		return nil
	} else if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	c.log.Infof("%s signed up as %s", handle, userType)
	c.println(promptAccountMade)
	return nil
}

func (c *Console) login() error {
	for {
		handle, err := c.prompt(promptUsername)
		if err != nil {
			return err
		}
		password, err := c.prompt(promptPassword)
		if err != nil {
			return err
		}

		user, err := c.deps.Users.Authenticate(model.Username(strings.TrimSpace(handle)), password)
		if errors.Is(err, model.ErrorInvalidUsernameOrPassword) {
			c.log.Warnf("failed login for %q", handle)
			c.println(promptBadLogin)
			continue
		} else if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}

		c.user = user.Handle
		c.userType = user.Type
		c.log.Infof("%s logged in", c.user)
		c.println(fmt.Sprintf("Welcome back, %s!", c.user))
		return nil
	}
}

func (c *Console) isOrganizer() bool {
	return c.userType == model.UserTypeOrganizer
}

func (c *Console) mainMenu() error {
	defer func() {
		c.log.Infof("%s logged out", c.user)
		c.user = ""
		c.userType = ""
	}()

	last := 5
	if c.isOrganizer() {
		last = 6
	}

	for {
		c.println(promptMainMenu)
		if c.isOrganizer() {
			c.println(promptMainMenuOrganizer)
		}
		line, err := c.readLine()
		if err != nil {
			return err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < 1 || n > last {
			c.println(promptInvalidCommand)
			continue
		}

		switch n {
		case 1:
			c.println(promptLoggedOut)
			return nil
		case 2:
			err = c.viewInbox()
		case 3:
			c.viewArchive()
		case 4:
			err = c.sendMessage()
		case 5:
			err = c.requestMenu()
		case 6:
			err = c.broadcast()
		}
		if err != nil {
			return err
		}
	}
}

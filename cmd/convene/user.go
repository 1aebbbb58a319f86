package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"uk.co.dudmesh.convene/internal/model"
	"uk.co.dudmesh.convene/internal/service/user"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage conference accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create an account without going through the console",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserAdd,
}

func init() {
	userAddCmd.Flags().StringP("type", "t", string(model.UserTypeAttendee), "account type (attendee, organizer, speaker, vip, admin)")
	userCmd.AddCommand(userAddCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")
	userType, ok := model.ParseUserType(strings.ToLower(typeFlag))
	if !ok {
		return fmt.Errorf("unknown account type %q", typeFlag)
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}

	password, err := readPassword(bufio.NewReader(os.Stdin))
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	users, err := user.New(config)
	if err != nil {
		return err
	}
	defer users.Close()

	created, err := users.Create(&model.CreateUserParams{
		Handle:   model.Username(args[0]),
		Password: password,
		Type:     userType,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s account %s\n", created.Type, created.Handle)
	return nil
}

// readPassword reads without echo from a terminal, and falls back to a
// plain line read when stdin is piped.
func readPassword(reader *bufio.Reader) (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")

	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(password), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

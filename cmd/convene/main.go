package main

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"uk.co.dudmesh.convene/internal/boot"
	"uk.co.dudmesh.convene/internal/console"
	"uk.co.dudmesh.convene/internal/gateway"
	"uk.co.dudmesh.convene/internal/service/user"
)

var rootCmd = &cobra.Command{
	Use:          "convene",
	Short:        "Conference messaging console",
	Long:         `convene runs the interactive conference console: sign up, log in, exchange messages and send requests to the organizers.`,
	SilenceUsage: true,
	RunE:         runConsole,
}

func main() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(userCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*boot.Config, error) {
	config, err := boot.Load()
	if err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(config.Level())
	return config, nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	users, err := user.New(config)
	if err != nil {
		return err
	}
	defer users.Close()

	g, err := gateway.Open(config)
	if err != nil {
		return err
	}
	defer g.Close()

	stores := g.LoadAll()
	log.Infof("loaded %d messages and %d requests", stores.Messages.Len(), len(stores.Requests.Requests()))

	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.Deps{
		Users:    users,
		Messages: stores.Messages,
		Requests: stores.Requests,
		LogLevel: config.Level(),
	})
	runErr := c.Run()

	if err := g.SaveAll(stores); err != nil {
		log.Errorf("saving stores: %v", err)
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}

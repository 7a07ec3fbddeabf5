package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
)

func newAskCmd(setup func(*cobra.Command) (*env, error)) *cobra.Command {
	var (
		user   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Send one message to the assistant",
		Long: `Runs a single message through classification, action resolution and execution
and prints the reply. Cart changes persist only with a sqlite backend or a remote store.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			if user == "" {
				user = e.cfg.DefaultUserID
			}
			res := e.assistant.Handle(cmd.Context(), user, strings.Join(args, " "))
			return printResponse(cmd, res, asJSON)
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "user id (default: configured default user)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full response as JSON")
	return cmd
}

func newChatCmd(setup func(*cobra.Command) (*env, error)) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant line by line",
		Long:  `Reads one message per line from stdin until EOF or "exit". Without --user each session gets a fresh cart.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			if user == "" {
				user = "cli-" + uuid.NewString()
			}
			cmd.Printf("Chatting as %s. Type \"exit\" to quit.\n", user)

			sc := bufio.NewScanner(cmd.InOrStdin())
			for {
				cmd.Print("> ")
				if !sc.Scan() {
					cmd.Println()
					return sc.Err()
				}
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				if err := printResponse(cmd, e.assistant.Handle(cmd.Context(), user, line), false); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "user id (default: a new session id)")
	return cmd
}

func printResponse(cmd *cobra.Command, res domain.Response, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(res.Message)
	if res.Navigation != nil {
		cmd.Printf("  [%s %s]\n", res.Navigation.Action, res.Navigation.Path)
	}
	return nil
}
